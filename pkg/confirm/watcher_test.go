package confirm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/client"
	"github.com/assetnote/assetnote/pkg/proto"
)

// fakeNode confirms the transaction after the configured number of rounds.
type fakeNode struct {
	round       *atomic.Uint64
	confirmAt   proto.Round
	pendingHits *atomic.Uint64
}

func newFakeNode(last, confirmAt proto.Round) *fakeNode {
	return &fakeNode{
		round:       atomic.NewUint64(uint64(last)),
		confirmAt:   confirmAt,
		pendingHits: atomic.NewUint64(0),
	}
}

func (n *fakeNode) Status(context.Context) (*client.NodeStatus, *client.Response, error) {
	return &client.NodeStatus{LastRound: proto.Round(n.round.Load())}, nil, nil
}

func (n *fakeNode) SendRawTransaction(context.Context, []byte) (*client.PostTransactionsResponse, *client.Response, error) {
	return &client.PostTransactionsResponse{}, nil, nil
}

func (n *fakeNode) PendingTransaction(context.Context, string) (*client.PendingTransactionResponse, *client.Response, error) {
	n.pendingHits.Inc()
	if r := proto.Round(n.round.Load()); n.confirmAt != 0 && r >= n.confirmAt {
		return &client.PendingTransactionResponse{ConfirmedRound: n.confirmAt}, nil, nil
	}
	return &client.PendingTransactionResponse{}, nil, nil
}

func (n *fakeNode) WaitForBlock(_ context.Context, r proto.Round) (*client.NodeStatus, *client.Response, error) {
	next := uint64(r) + 1
	n.round.Store(next)
	return &client.NodeStatus{LastRound: proto.Round(next)}, nil, nil
}

func TestWatcher_TerminalStateIsFinal(t *testing.T) {
	node := newFakeNode(10, 12)
	w := newWatcher(node, zap.NewNop(), "TX", 10, 6)
	require.NoError(t, w.run(context.Background()))
	assert.Equal(t, StateConfirmed, w.state)
	assert.Equal(t, uint64(3), node.pendingHits.Load())

	for _, trigger := range []string{triggerStillPending, triggerConfirmed, triggerRejected, triggerExpired} {
		assert.Error(t, w.fsm.Fire(trigger))
	}
	assert.Equal(t, StateConfirmed, w.state)

	c, err := w.result()
	require.NoError(t, err)
	assert.Equal(t, proto.Round(12), c.ConfirmedRound)
}

func TestWatcher_NeverPollsPastDeadline(t *testing.T) {
	for _, budget := range []uint64{1, 2, 6, 10} {
		node := newFakeNode(50, 0)
		w := newWatcher(node, zap.NewNop(), "TX", 50, budget)
		require.NoError(t, w.run(context.Background()))
		assert.Equal(t, StateTimedOut, w.state)
		assert.Equal(t, budget, node.pendingHits.Load())
		assert.Equal(t, proto.Round(50+budget), w.current)
		_, err := w.result()
		assert.Error(t, err)
	}
}

func TestWatcher_ConfirmedOnLastAllowedPoll(t *testing.T) {
	node := newFakeNode(20, 25)
	w := newWatcher(node, zap.NewNop(), "TX", 20, 6)
	require.NoError(t, w.run(context.Background()))
	assert.Equal(t, StateConfirmed, w.state)
	assert.Equal(t, uint64(6), node.pendingHits.Load())
}
