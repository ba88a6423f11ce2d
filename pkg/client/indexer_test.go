package client

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetnote/assetnote/pkg/crypto"
	"github.com/assetnote/assetnote/pkg/proto"
)

func testAddress(t *testing.T) proto.Address {
	_, pk, err := crypto.GenerateKeyPair(make([]byte, crypto.SeedSize))
	require.NoError(t, err)
	return proto.NewAddressFromPublicKey(pk)
}

func TestIndexer_SearchAssetConfigTransactions(t *testing.T) {
	addr := testAddress(t)
	note := base64.StdEncoding.EncodeToString([]byte{0xa1, 0x61, 0x61, 0x01})
	seq := &MockHttpSequence{Bodies: []string{
		`{"current-round": 90, "next-token": "page2", "transactions": [{"id": "A", "confirmed-round": 50, "note": "` + note + `"}]}`,
		`{"current-round": 91, "next-token": "page3", "transactions": [{"id": "B", "confirmed-round": 30, "created-asset-index": 7}]}`,
		`{"current-round": 91, "next-token": "page4", "transactions": []}`,
	}}
	indexer, err := NewIndexer(Options{BaseUrl: "https://indexer.example.com", Client: seq, ApiKey: "key"})
	require.NoError(t, err)

	body, _, err := indexer.SearchAssetConfigTransactions(context.Background(), addr, 7)
	require.NoError(t, err)
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, proto.Round(91), body.CurrentRound)
	assert.Equal(t, []byte{0xa1, 0x61, 0x61, 0x01}, body.Transactions[0].Note)
	assert.Equal(t, proto.AssetID(7), body.Transactions[1].CreatedAssetIndex)
	assert.Nil(t, body.Transactions[1].Note)

	require.Len(t, seq.Requests, 3)
	q := seq.Requests[0].URL.Query()
	assert.Equal(t, "/v2/transactions", seq.Requests[0].URL.Path)
	assert.Equal(t, addr.String(), q.Get("address"))
	assert.Equal(t, "sender", q.Get("address-role"))
	assert.Equal(t, "7", q.Get("asset-id"))
	assert.Equal(t, "acfg", q.Get("tx-type"))
	assert.Empty(t, q.Get("next"))
	assert.Equal(t, "page2", seq.Requests[1].URL.Query().Get("next"))
	assert.Equal(t, "page3", seq.Requests[2].URL.Query().Get("next"))
	assert.Equal(t, "key", seq.Requests[0].Header.Get(IndexerTokenHeader))
}

func TestIndexer_SearchError(t *testing.T) {
	indexer, err := NewIndexer(Options{
		BaseUrl: "https://indexer.example.com",
		Client:  NewMockHttpRequestFromString(`{"message":"bad query"}`, 400),
	})
	require.NoError(t, err)
	_, _, err = indexer.SearchAssetConfigTransactions(context.Background(), testAddress(t), 7)
	assert.Error(t, err)
}

func TestIndexer_SearchPageLimit(t *testing.T) {
	bodies := make([]string, maxSearchPages+1)
	for i := range bodies {
		bodies[i] = `{"next-token": "more", "transactions": [{"id": "X", "confirmed-round": 1}]}`
	}
	indexer, err := NewIndexer(Options{BaseUrl: "https://indexer.example.com", Client: &MockHttpSequence{Bodies: bodies}})
	require.NoError(t, err)
	_, _, err = indexer.SearchAssetConfigTransactions(context.Background(), testAddress(t), 7)
	assert.Error(t, err)
}

func TestIndexer_Health(t *testing.T) {
	mock := NewMockHttpRequestFromString(`{"round": 1200, "db-available": true, "is-migrating": false, "message": "1200"}`, 200)
	indexer, err := NewIndexer(Options{BaseUrl: "https://indexer.example.com", Client: mock})
	require.NoError(t, err)

	health, resp, err := indexer.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, proto.Round(1200), health.Round)
	assert.True(t, health.DBAvailable)
	assert.False(t, health.IsMigrating)
	assert.Equal(t, "https://indexer.example.com/health", resp.Request.URL.String())
}
