// Package confirm submits signed transactions and waits for them to be committed within a round budget.
package confirm

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/client"
	"github.com/assetnote/assetnote/pkg/errs"
	"github.com/assetnote/assetnote/pkg/proto"
)

// DefaultTimeoutRounds is the round budget for asset creation.
const DefaultTimeoutRounds = 6

//go:generate mockgen -destination=../mock/node_client.go -package=mock github.com/assetnote/assetnote/pkg/confirm NodeClient

type NodeClient interface {
	Status(ctx context.Context) (*client.NodeStatus, *client.Response, error)
	SendRawTransaction(ctx context.Context, raw []byte) (*client.PostTransactionsResponse, *client.Response, error)
	PendingTransaction(ctx context.Context, txID string) (*client.PendingTransactionResponse, *client.Response, error)
	WaitForBlock(ctx context.Context, round proto.Round) (*client.NodeStatus, *client.Response, error)
}

type Confirmation struct {
	TxID           string
	ConfirmedRound proto.Round
	AssetIndex     proto.AssetID
	// Polls is the number of pending transaction queries made.
	Polls uint64
}

type Engine struct {
	node   NodeClient
	logger *zap.Logger
}

func NewEngine(node NodeClient, logger *zap.Logger) *Engine {
	return &Engine{node: node, logger: logger.Named("confirm")}
}

// SubmitAndConfirm submits the signed transaction bytes once and waits at most timeoutRounds rounds for
// txID. Nothing is retried.
func (e *Engine) SubmitAndConfirm(ctx context.Context, raw []byte, txID string, timeoutRounds uint64) (Confirmation, error) {
	sent, _, err := e.node.SendRawTransaction(ctx, raw)
	switch code := client.StatusCode(err); {
	case err == nil:
		if sent.TxID != "" && sent.TxID != txID {
			e.logger.Warn("Node reported a different transaction id",
				zap.String("local", txID), zap.String("node", sent.TxID))
			txID = sent.TxID
		}
	case code == http.StatusOK:
		// The node took the transaction, only its answer is unreadable.
		e.logger.Warn("Unreadable submission response, tracking local transaction id",
			zap.String("tx_id", txID), zap.Error(err))
	case code != 0:
		return Confirmation{}, errs.NewSubmissionRejected(err.Error())
	default:
		return Confirmation{}, errs.NewNetworkUnavailable("submit transaction: " + err.Error())
	}
	e.logger.Debug("Transaction submitted", zap.String("tx_id", txID))
	return e.Confirm(ctx, txID, timeoutRounds)
}

// Confirm polls the pending status of an already submitted transaction once per round until it is
// committed, dropped, or the deadline round is reached.
func (e *Engine) Confirm(ctx context.Context, txID string, timeoutRounds uint64) (Confirmation, error) {
	status, _, err := e.node.Status(ctx)
	if err != nil {
		return Confirmation{}, errs.NewNetworkUnavailable("node status: " + err.Error())
	}
	w := newWatcher(e.node, e.logger, txID, status.LastRound, timeoutRounds)
	if err := w.run(ctx); err != nil {
		return Confirmation{}, errors.Wrap(err, "confirmation state machine")
	}
	return w.result()
}
