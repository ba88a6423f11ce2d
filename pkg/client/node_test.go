package client

import (
	"context"
	"encoding/base64"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetnote/assetnote/pkg/crypto"
	"github.com/assetnote/assetnote/pkg/proto"
)

const nodeURL = "https://node.example.com"

func testNode(t *testing.T, doer Doer) *Node {
	node, err := NewNode(Options{BaseUrl: nodeURL, Client: doer, ApiKey: "secret"})
	require.NoError(t, err)
	return node
}

func TestNode_Status(t *testing.T) {
	node := testNode(t, NewMockHttpRequestFromString(`{"last-round": 4521, "time-since-last-round": 1200}`, 200))
	body, resp, err := node.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, proto.Round(4521), body.LastRound)
	assert.Equal(t, nodeURL+"/v2/status", resp.Request.URL.String())
	assert.Equal(t, "secret", resp.Request.Header.Get(NodeTokenHeader))
}

func TestNode_WaitForBlock(t *testing.T) {
	node := testNode(t, NewMockHttpRequestFromString(`{"last-round": 101}`, 200))
	body, resp, err := node.WaitForBlock(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, proto.Round(101), body.LastRound)
	assert.Equal(t, nodeURL+"/v2/status/wait-for-block-after/100", resp.Request.URL.String())
}

func TestNode_SuggestedParams(t *testing.T) {
	gh := crypto.Hash([]byte("genesis"))
	js := `{"consensus-version":"v1","fee":10,"genesis-hash":"` + base64.StdEncoding.EncodeToString(gh[:]) +
		`","genesis-id":"testnet-v1.0","last-round":200,"min-fee":1000}`
	node := testNode(t, NewMockHttpRequestFromString(js, 200))
	body, resp, err := node.SuggestedParams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nodeURL+"/v2/transactions/params", resp.Request.URL.String())

	sp, err := body.ToSuggestedParams()
	require.NoError(t, err)
	assert.Equal(t, proto.SuggestedParams{
		ConsensusVersion: "v1",
		FeePerByte:       10,
		MinFee:           1000,
		GenesisID:        "testnet-v1.0",
		GenesisHash:      gh,
		LastRound:        200,
	}, sp)
}

func TestTransactionParams_ToSuggestedParamsErrors(t *testing.T) {
	_, err := (&TransactionParams{GenesisHash: "%%%"}).ToSuggestedParams()
	assert.Error(t, err)
	_, err = (&TransactionParams{GenesisHash: base64.StdEncoding.EncodeToString([]byte{1, 2})}).ToSuggestedParams()
	assert.Error(t, err)
}

func TestNode_SendRawTransaction(t *testing.T) {
	node := testNode(t, NewMockHttpRequestFromString(`{"txId":"TXID"}`, 200))
	body, resp, err := node.SendRawTransaction(context.Background(), []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "TXID", body.TxID)
	assert.Equal(t, "POST", resp.Request.Method)
	assert.Equal(t, "application/x-binary", resp.Request.Header.Get("Content-Type"))
	assert.Equal(t, nodeURL+"/v2/transactions", resp.Request.URL.String())
	sent, err := io.ReadAll(resp.Request.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, sent)
}

func TestNode_SendRawTransactionRejected(t *testing.T) {
	node := testNode(t, NewMockHttpRequestFromString(`{"message":"overspend"}`, 400))
	_, resp, err := node.SendRawTransaction(context.Background(), []byte{1})
	require.Error(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, err.Error(), "overspend")
}

func TestNode_PendingTransaction(t *testing.T) {
	node := testNode(t, NewMockHttpRequestFromString(`{"confirmed-round": 77, "pool-error": "", "asset-index": 9001}`, 200))
	body, resp, err := node.PendingTransaction(context.Background(), "TXID")
	require.NoError(t, err)
	assert.Equal(t, proto.Round(77), body.ConfirmedRound)
	assert.Equal(t, proto.AssetID(9001), body.AssetIndex)
	assert.Empty(t, body.PoolError)
	assert.Equal(t, nodeURL+"/v2/transactions/pending/TXID", resp.Request.URL.String())

	node = testNode(t, NewMockHttpRequestFromString(`{"pool-error": ""}`, 200))
	body, _, err = node.PendingTransaction(context.Background(), "TXID")
	require.NoError(t, err)
	assert.Zero(t, body.ConfirmedRound)
}
