package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/client"
	"github.com/assetnote/assetnote/pkg/confirm"
	"github.com/assetnote/assetnote/pkg/crypto"
	"github.com/assetnote/assetnote/pkg/issuance"
	"github.com/assetnote/assetnote/pkg/metadata"
	"github.com/assetnote/assetnote/pkg/proto"
	"github.com/assetnote/assetnote/pkg/resolver"
	"github.com/assetnote/assetnote/pkg/wallet"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// fakeLedger commits every pending transaction when a block is awaited and indexes created assets.
type fakeLedger struct {
	mu        sync.Mutex
	round     proto.Round
	genesis   crypto.Digest
	nextAsset proto.AssetID
	pending   map[string]*proto.SignedTx
	confirmed map[string]client.PendingTransactionResponse
	indexed   map[proto.AssetID][]client.IndexedTransaction
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		round:     1000,
		genesis:   crypto.Hash([]byte("fake genesis")),
		nextAsset: 500,
		pending:   make(map[string]*proto.SignedTx),
		confirmed: make(map[string]client.PendingTransactionResponse),
		indexed:   make(map[proto.AssetID][]client.IndexedTransaction),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (l *fakeLedger) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/v2/status", func(w http.ResponseWriter, _ *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		writeJSON(w, client.NodeStatus{LastRound: l.round})
	})
	r.Get("/v2/status/wait-for-block-after/{round}", func(w http.ResponseWriter, _ *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.round++
		for id, stx := range l.pending {
			l.nextAsset++
			l.confirmed[id] = client.PendingTransactionResponse{ConfirmedRound: l.round, AssetIndex: l.nextAsset}
			l.indexed[l.nextAsset] = append(l.indexed[l.nextAsset], client.IndexedTransaction{
				ID: id, ConfirmedRound: l.round, Note: stx.Tx.Note, CreatedAssetIndex: l.nextAsset,
			})
			delete(l.pending, id)
		}
		writeJSON(w, client.NodeStatus{LastRound: l.round})
	})
	r.Get("/v2/transactions/params", func(w http.ResponseWriter, _ *http.Request) {
		l.mu.Lock()
		defer l.mu.Unlock()
		writeJSON(w, client.TransactionParams{
			ConsensusVersion: "fake",
			Fee:              1,
			GenesisHash:      base64.StdEncoding.EncodeToString(l.genesis[:]),
			GenesisID:        "fake-v1",
			LastRound:        l.round,
			MinFee:           1000,
		})
	})
	r.Post("/v2/transactions", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stx := new(proto.SignedTx)
		if err := stx.UnmarshalBinary(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !stx.Verify() {
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}
		id := stx.ID()
		l.mu.Lock()
		l.pending[id] = stx
		l.mu.Unlock()
		writeJSON(w, client.PostTransactionsResponse{TxID: id})
	})
	r.Get("/v2/transactions/pending/{txid}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "txid")
		l.mu.Lock()
		defer l.mu.Unlock()
		if c, ok := l.confirmed[id]; ok {
			writeJSON(w, c)
			return
		}
		if _, ok := l.pending[id]; ok {
			writeJSON(w, client.PendingTransactionResponse{})
			return
		}
		http.Error(w, "unknown transaction", http.StatusNotFound)
	})
	r.Get("/v2/transactions", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(r.URL.Query().Get("asset-id"), 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		writeJSON(w, client.TransactionsResponse{
			CurrentRound: l.round,
			Transactions: l.indexed[proto.AssetID(id)],
		})
	})
	return r
}

func TestService_EndToEnd(t *testing.T) {
	ledger := newFakeLedger()
	srv := httptest.NewServer(ledger.routes())
	defer srv.Close()

	cred, err := wallet.NewCredentialFromMnemonic(testMnemonic)
	require.NoError(t, err)
	node, err := client.NewNode(client.Options{BaseUrl: srv.URL, Client: srv.Client()})
	require.NoError(t, err)
	indexer, err := client.NewIndexer(client.Options{BaseUrl: srv.URL, Client: srv.Client()})
	require.NoError(t, err)

	logger := zap.NewNop()
	s := NewService(
		issuance.NewBuilder(node, cred, logger),
		confirm.NewEngine(node, logger),
		resolver.NewResolver(indexer, cred.Address(), resolver.DefaultCacheSize, logger),
		confirm.DefaultTimeoutRounds,
		logger,
	)

	model := &issuance.AssetModel{
		AssetTotal:    1000,
		AssetDecimals: 0,
		UnitName:      "TKN",
		DefaultFrozen: false,
		Metadata:      metadata.Metadata{"desc": "demo"},
	}
	res, err := s.CreateAsset(context.Background(), model)
	require.NoError(t, err)
	require.NotEmpty(t, res.TxID)
	require.NotZero(t, res.AssetID)

	md, err := s.GetAssetMetadata(context.Background(), res.AssetID)
	require.NoError(t, err)
	assert.Equal(t, metadata.Metadata{"desc": "demo"}, md)

	_, err = s.GetAssetMetadata(context.Background(), res.AssetID+1000)
	assert.ErrorIs(t, err, ErrMetadataNotFound)
}
