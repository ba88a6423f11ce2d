package confirm

import (
	"context"

	"github.com/pkg/errors"
	"github.com/qmuntal/stateless"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/errs"
	"github.com/assetnote/assetnote/pkg/proto"
)

const (
	StatePending   = "Pending"
	StateConfirmed = "Confirmed"
	StateRejected  = "Rejected"
	StateTimedOut  = "TimedOut"
)

const (
	triggerStillPending = "StillPending"
	triggerConfirmed    = "Confirmed"
	triggerRejected     = "Rejected"
	triggerExpired      = "Expired"
)

// watcher is the state of one confirmation. It is discarded once a terminal state is reached.
type watcher struct {
	node   NodeClient
	logger *zap.Logger
	fsm    *stateless.StateMachine

	txID     string
	start    proto.Round
	current  proto.Round
	deadline proto.Round
	state    stateless.State

	confirmation Confirmation
	err          error
}

func newWatcher(node NodeClient, logger *zap.Logger, txID string, lastRound proto.Round, timeoutRounds uint64) *watcher {
	w := &watcher{
		node:     node,
		logger:   logger,
		txID:     txID,
		start:    lastRound,
		current:  lastRound,
		deadline: lastRound + proto.Round(timeoutRounds),
		state:    StatePending,
	}
	w.fsm = stateless.NewStateMachineWithExternalStorage(func(_ context.Context) (stateless.State, error) {
		return w.state, nil
	}, func(_ context.Context, s stateless.State) error {
		w.state = s
		return nil
	}, stateless.FiringQueued)

	w.fsm.Configure(StatePending).
		PermitReentry(triggerStillPending).
		Permit(triggerConfirmed, StateConfirmed).
		Permit(triggerRejected, StateRejected).
		Permit(triggerExpired, StateTimedOut)
	w.fsm.Configure(StateConfirmed).
		OnEntry(func(_ context.Context, _ ...any) error {
			w.logger.Debug("Transaction confirmed",
				zap.String("tx_id", w.txID),
				zap.Stringer("round", w.confirmation.ConfirmedRound),
				zap.Uint64("polls", w.confirmation.Polls))
			return nil
		})
	w.fsm.Configure(StateRejected).
		OnEntry(func(_ context.Context, _ ...any) error {
			w.logger.Debug("Transaction rejected", zap.String("tx_id", w.txID), zap.Error(w.err))
			return nil
		})
	w.fsm.Configure(StateTimedOut).
		OnEntry(func(_ context.Context, _ ...any) error {
			w.logger.Debug("Transaction not confirmed in time",
				zap.String("tx_id", w.txID), zap.Stringer("deadline", w.deadline))
			return nil
		})
	return w
}

func (w *watcher) terminal() bool {
	return w.state != StatePending
}

func (w *watcher) run(ctx context.Context) error {
	for !w.terminal() {
		if err := w.fsm.FireCtx(ctx, w.poll(ctx)); err != nil {
			return err
		}
	}
	return nil
}

// poll performs one check of the transaction and returns the trigger describing its outcome.
func (w *watcher) poll(ctx context.Context) string {
	if w.current >= w.deadline {
		w.err = errs.NewConfirmationTimeout(w.txID, uint64(w.current-w.start))
		return triggerExpired
	}
	w.confirmation.Polls++
	p, _, err := w.node.PendingTransaction(ctx, w.txID)
	if err != nil {
		w.err = errs.NewConfirmationQueryFailed("pending transaction: " + err.Error())
		return triggerRejected
	}
	if p.ConfirmedRound > 0 {
		w.confirmation.TxID = w.txID
		w.confirmation.ConfirmedRound = p.ConfirmedRound
		w.confirmation.AssetIndex = p.AssetIndex
		return triggerConfirmed
	}
	if p.PoolError != "" {
		w.err = errs.NewSubmissionRejected("transaction dropped from pool: " + p.PoolError)
		return triggerRejected
	}
	if _, _, err := w.node.WaitForBlock(ctx, w.current); err != nil {
		w.err = errs.NewConfirmationQueryFailed("wait for block: " + err.Error())
		return triggerRejected
	}
	w.current++
	return triggerStillPending
}

func (w *watcher) result() (Confirmation, error) {
	switch w.state {
	case StateConfirmed:
		return w.confirmation, nil
	case StateRejected, StateTimedOut:
		return Confirmation{}, w.err
	default:
		return Confirmation{}, errors.Errorf("unexpected confirmation state %v", w.state)
	}
}
