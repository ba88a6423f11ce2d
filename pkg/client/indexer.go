package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/assetnote/assetnote/pkg/proto"
)

const (
	addressRoleSender = "sender"
	maxSearchPages    = 16
)

var defaultIndexerOptions = Options{
	BaseUrl:      "http://127.0.0.1:8980",
	Client:       newHTTPClient(10 * time.Second),
	ApiKeyHeader: IndexerTokenHeader,
}

// Indexer is a client of the transaction indexer REST API.
type Indexer struct {
	options Options
}

// NewIndexer creates new indexer client instance.
// If no options provided will use default.
func NewIndexer(options ...Options) (*Indexer, error) {
	opts, err := applyOptions(defaultIndexerOptions, options...)
	if err != nil {
		return nil, err
	}
	return &Indexer{options: opts}, nil
}

func (a *Indexer) GetOptions() Options {
	return a.options
}

type IndexerHealth struct {
	Round       proto.Round `json:"round"`
	DBAvailable bool        `json:"db-available"`
	IsMigrating bool        `json:"is-migrating"`
	Message     string      `json:"message"`
}

// Health reports whether the indexer is serving queries and which round it has caught up to.
func (a *Indexer) Health(ctx context.Context) (*IndexerHealth, *Response, error) {
	req, err := newRequest(ctx, a.options, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, nil, err
	}
	out := new(IndexerHealth)
	response, err := doHTTP(ctx, a.options, req, out)
	if err != nil {
		return nil, response, err
	}
	return out, response, nil
}

type IndexedTransaction struct {
	ID                string        `json:"id"`
	Sender            string        `json:"sender"`
	TxType            string        `json:"tx-type"`
	ConfirmedRound    proto.Round   `json:"confirmed-round"`
	Note              []byte        `json:"note"`
	CreatedAssetIndex proto.AssetID `json:"created-asset-index"`
}

type TransactionsResponse struct {
	CurrentRound proto.Round          `json:"current-round"`
	NextToken    string               `json:"next-token"`
	Transactions []IndexedTransaction `json:"transactions"`
}

// SearchAssetConfigTransactions returns every asset configuration transaction sent by address for the asset,
// following pagination.
func (a *Indexer) SearchAssetConfigTransactions(
	ctx context.Context, address proto.Address, assetID proto.AssetID,
) (*TransactionsResponse, *Response, error) {
	out := new(TransactionsResponse)
	var (
		response *Response
		next     string
	)
	for page := 0; ; page++ {
		if page == maxSearchPages {
			return nil, response, errors.Errorf("search exceeded %d pages", maxSearchPages)
		}
		q := url.Values{}
		q.Set("address", address.String())
		q.Set("address-role", addressRoleSender)
		q.Set("asset-id", strconv.FormatUint(uint64(assetID), 10))
		q.Set("tx-type", proto.AssetConfigTxType)
		if next != "" {
			q.Set("next", next)
		}
		req, err := newRequest(ctx, a.options, http.MethodGet, "/v2/transactions?"+q.Encode(), nil)
		if err != nil {
			return nil, nil, err
		}
		pageOut := new(TransactionsResponse)
		response, err = doHTTP(ctx, a.options, req, pageOut)
		if err != nil {
			return nil, response, err
		}
		out.CurrentRound = pageOut.CurrentRound
		out.Transactions = append(out.Transactions, pageOut.Transactions...)
		if pageOut.NextToken == "" || len(pageOut.Transactions) == 0 {
			return out, response, nil
		}
		next = pageOut.NextToken
	}
}
