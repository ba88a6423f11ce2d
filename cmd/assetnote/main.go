package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/assetnote/assetnote/pkg/api"
	"github.com/assetnote/assetnote/pkg/client"
	"github.com/assetnote/assetnote/pkg/confirm"
	"github.com/assetnote/assetnote/pkg/issuance"
	"github.com/assetnote/assetnote/pkg/logging"
	"github.com/assetnote/assetnote/pkg/resolver"
	"github.com/assetnote/assetnote/pkg/service"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	c, err := parseConfiguration(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Failed to parse configuration: %v\n", err)
		return 2
	}
	logger, err := logging.SetupLogger(c.lp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	if err := run(c, logger); err != nil {
		logger.Error("Failed to run service", zap.Error(err))
		return 1
	}
	return 0
}

func run(c *config, logger *zap.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Debug("Starting with parameters", zap.Stringer("config", c))

	cred, err := loadCredential(afero.NewOsFs(), c, os.Getenv)
	if err != nil {
		return errors.Wrap(err, "failed to load issuer credential")
	}
	logger.Info("Issuer credential loaded", zap.Stringer("address", cred.Address()))

	node, err := client.NewNode(client.Options{BaseUrl: c.nodeURL, ApiKey: c.nodeToken})
	if err != nil {
		return errors.Wrap(err, "failed to create node client")
	}
	indexer, err := client.NewIndexer(client.Options{BaseUrl: c.indexerURL, ApiKey: c.indexerToken})
	if err != nil {
		return errors.Wrap(err, "failed to create indexer client")
	}
	if err := waitForLedger(ctx, node, indexer, c.startupTimeout, logger); err != nil {
		return errors.Wrap(err, "ledger is not available")
	}

	svc := service.NewService(
		issuance.NewBuilder(node, cred, logger),
		confirm.NewEngine(node, logger),
		resolver.NewResolver(indexer, cred.Address(), c.metadataCacheSize, logger),
		c.confirmRounds,
		logger,
	)
	router, err := api.NewAssetApi(svc).Routes(c.apiRunOptions(), logger)
	if err != nil {
		return errors.Wrap(err, "failed to build API routes")
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return api.Run(ctx, c.apiAddress, router, logger)
	})
	eg.Go(func() error {
		<-ctx.Done()
		logger.Info("User termination in progress...")
		return nil
	})
	return eg.Wait()
}
