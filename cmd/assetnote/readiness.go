package main

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/client"
)

type statusReader interface {
	Status(ctx context.Context) (*client.NodeStatus, *client.Response, error)
}

type healthReader interface {
	Health(ctx context.Context) (*client.IndexerHealth, *client.Response, error)
}

// waitForLedger retries until both the node and the indexer answer or timeout elapses.
func waitForLedger(
	ctx context.Context, node statusReader, indexer healthReader, timeout time.Duration, logger *zap.Logger,
) error {
	bo := backoff.WithContext(
		backoff.NewExponentialBackOff(
			backoff.WithMaxInterval(time.Second*2),
			backoff.WithMaxElapsedTime(timeout),
		), ctx,
	)
	probe := func() error {
		status, _, err := node.Status(ctx)
		if err != nil {
			logger.Debug("Node is not ready", zap.Error(err))
			return errors.Wrap(err, "node")
		}
		health, _, err := indexer.Health(ctx)
		if err != nil {
			logger.Debug("Indexer is not ready", zap.Error(err))
			return errors.Wrap(err, "indexer")
		}
		if !health.DBAvailable {
			return errors.New("indexer database is not available")
		}
		logger.Info("Ledger is available",
			zap.Stringer("node_round", status.LastRound), zap.Stringer("indexer_round", health.Round))
		return nil
	}
	if err := backoff.Retry(probe, bo); err != nil {
		if bo.NextBackOff() == backoff.Stop {
			return errors.Wrap(err, "reached retry deadline")
		}
		return err
	}
	return nil
}
