package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/assetnote/assetnote/pkg/crypto"
	"github.com/assetnote/assetnote/pkg/proto"
)

// The node holds wait-for-block requests for up to a minute.
const nodeRequestTimeout = 70 * time.Second

var defaultNodeOptions = Options{
	BaseUrl:      "http://127.0.0.1:4001",
	Client:       newHTTPClient(nodeRequestTimeout),
	ApiKeyHeader: NodeTokenHeader,
}

// Node is a client of the ledger node REST API.
type Node struct {
	options Options
}

// NewNode creates new node client instance.
// If no options provided will use default.
func NewNode(options ...Options) (*Node, error) {
	opts, err := applyOptions(defaultNodeOptions, options...)
	if err != nil {
		return nil, err
	}
	return &Node{options: opts}, nil
}

func (a *Node) GetOptions() Options {
	return a.options
}

type NodeStatus struct {
	LastRound            proto.Round `json:"last-round"`
	TimeSinceLastRound   uint64      `json:"time-since-last-round"`
	CatchupTime          uint64      `json:"catchup-time"`
	LastVersion          string      `json:"last-version"`
	StoppedAtUnsupported bool        `json:"stopped-at-unsupported-round"`
}

// Status returns the last committed round of the node.
func (a *Node) Status(ctx context.Context) (*NodeStatus, *Response, error) {
	req, err := newRequest(ctx, a.options, http.MethodGet, "/v2/status", nil)
	if err != nil {
		return nil, nil, err
	}
	out := new(NodeStatus)
	response, err := doHTTP(ctx, a.options, req, out)
	if err != nil {
		return nil, response, err
	}
	return out, response, nil
}

// WaitForBlock blocks until the round after the given one is committed.
func (a *Node) WaitForBlock(ctx context.Context, round proto.Round) (*NodeStatus, *Response, error) {
	req, err := newRequest(ctx, a.options, http.MethodGet, fmt.Sprintf("/v2/status/wait-for-block-after/%d", round), nil)
	if err != nil {
		return nil, nil, err
	}
	out := new(NodeStatus)
	response, err := doHTTP(ctx, a.options, req, out)
	if err != nil {
		return nil, response, err
	}
	return out, response, nil
}

type TransactionParams struct {
	ConsensusVersion string      `json:"consensus-version"`
	Fee              uint64      `json:"fee"`
	GenesisHash      string      `json:"genesis-hash"`
	GenesisID        string      `json:"genesis-id"`
	LastRound        proto.Round `json:"last-round"`
	MinFee           uint64      `json:"min-fee"`
}

// ToSuggestedParams converts the response. Genesis hash comes base64 encoded.
func (p *TransactionParams) ToSuggestedParams() (proto.SuggestedParams, error) {
	var sp proto.SuggestedParams
	gh, err := base64.StdEncoding.DecodeString(p.GenesisHash)
	if err != nil {
		return sp, errors.Wrap(err, "invalid genesis hash")
	}
	if l := len(gh); l != crypto.DigestSize {
		return sp, errors.Errorf("incorrect genesis hash length %d, expected %d", l, crypto.DigestSize)
	}
	sp = proto.SuggestedParams{
		ConsensusVersion: p.ConsensusVersion,
		FeePerByte:       p.Fee,
		MinFee:           p.MinFee,
		GenesisID:        p.GenesisID,
		LastRound:        p.LastRound,
	}
	copy(sp.GenesisHash[:], gh)
	return sp, nil
}

// SuggestedParams returns the parameters for building a new transaction.
func (a *Node) SuggestedParams(ctx context.Context) (*TransactionParams, *Response, error) {
	req, err := newRequest(ctx, a.options, http.MethodGet, "/v2/transactions/params", nil)
	if err != nil {
		return nil, nil, err
	}
	out := new(TransactionParams)
	response, err := doHTTP(ctx, a.options, req, out)
	if err != nil {
		return nil, response, err
	}
	return out, response, nil
}

type PostTransactionsResponse struct {
	TxID string `json:"txId"`
}

// SendRawTransaction submits signed transaction bytes.
func (a *Node) SendRawTransaction(ctx context.Context, raw []byte) (*PostTransactionsResponse, *Response, error) {
	req, err := newRequest(ctx, a.options, http.MethodPost, "/v2/transactions", bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/x-binary")
	out := new(PostTransactionsResponse)
	response, err := doHTTP(ctx, a.options, req, out)
	if err != nil {
		return nil, response, err
	}
	return out, response, nil
}

type PendingTransactionResponse struct {
	ConfirmedRound proto.Round   `json:"confirmed-round"`
	PoolError      string        `json:"pool-error"`
	AssetIndex     proto.AssetID `json:"asset-index"`
}

// PendingTransaction returns the pool status of a transaction. ConfirmedRound is zero while the
// transaction is still pending.
func (a *Node) PendingTransaction(ctx context.Context, txID string) (*PendingTransactionResponse, *Response, error) {
	req, err := newRequest(ctx, a.options, http.MethodGet, "/v2/transactions/pending/"+url.PathEscape(txID), nil)
	if err != nil {
		return nil, nil, err
	}
	out := new(PendingTransactionResponse)
	response, err := doHTTP(ctx, a.options, req, out)
	if err != nil {
		return nil, response, err
	}
	return out, response, nil
}
