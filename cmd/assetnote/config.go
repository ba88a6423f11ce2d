package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/assetnote/assetnote/pkg/api"
	"github.com/assetnote/assetnote/pkg/confirm"
	"github.com/assetnote/assetnote/pkg/logging"
	"github.com/assetnote/assetnote/pkg/resolver"
)

const mnemonicEnv = "ASSETNOTE_MNEMONIC"

type config struct {
	apiAddress         string
	nodeURL            string
	nodeToken          string
	indexerURL         string
	indexerToken       string
	mnemonicFile       string
	walletPath         string
	walletPasswordFile string
	address            string
	confirmRounds      uint64
	rateLimit          int
	rateBurst          int
	createLimit        int
	createBurst        int
	maxConnections     int
	metadataCacheSize  int
	startupTimeout     time.Duration
	lp                 logging.Parameters
}

func parseConfiguration(args []string) (*config, error) {
	c := new(config)
	fs := pflag.NewFlagSet("assetnote", pflag.ContinueOnError)
	fs.StringVar(&c.apiAddress, "api-address", "127.0.0.1:8080", "Local network address to bind the HTTP API.")
	fs.StringVar(&c.nodeURL, "node-url", "http://127.0.0.1:4001", "URL of the ledger node REST API.")
	fs.StringVar(&c.nodeToken, "node-token", "", "Ledger node API token.")
	fs.StringVar(&c.indexerURL, "indexer-url", "http://127.0.0.1:8980", "URL of the indexer REST API.")
	fs.StringVar(&c.indexerToken, "indexer-token", "", "Indexer API token.")
	fs.StringVar(&c.mnemonicFile, "mnemonic-file", "",
		"Path to a file with the issuer mnemonic. Takes precedence over --wallet and "+mnemonicEnv+".")
	fs.StringVar(&c.walletPath, "wallet", "", "Path to an encrypted wallet created by the wallet tool.")
	fs.StringVar(&c.walletPasswordFile, "wallet-password-file", "", "Path to a file with the wallet password.")
	fs.StringVar(&c.address, "address", "", "Expected issuer address. Startup fails if the credential derives another one.")
	fs.Uint64Var(&c.confirmRounds, "confirm-rounds", confirm.DefaultTimeoutRounds,
		"Number of ledger rounds to wait for a transaction confirmation.")
	fs.IntVar(&c.rateLimit, "rate-limit", 10, "Allowed API requests per second per remote address. 0 disables the limiter.")
	fs.IntVar(&c.rateBurst, "rate-burst", 20, "API requests burst per remote address.")
	fs.IntVar(&c.createLimit, "create-rate-limit", api.DefaultMaxCreatesPerMinute,
		"Allowed asset creations per minute per remote address. 0 leaves creation under --rate-limit only.")
	fs.IntVar(&c.createBurst, "create-rate-burst", api.DefaultMaxCreateBurst, "Asset creations burst per remote address.")
	fs.IntVar(&c.maxConnections, "api-max-connections", api.DefaultMaxConnections, "Max number of in-flight API requests.")
	fs.IntVar(&c.metadataCacheSize, "metadata-cache-size", resolver.DefaultCacheSize,
		"Size in bytes of the resolved metadata cache. 0 disables caching.")
	fs.DurationVar(&c.startupTimeout, "startup-timeout", time.Minute,
		"How long to wait for the node and indexer to become available.")
	c.lp.Initialize(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "failed to parse flags")
	}
	if err := c.lp.Parse(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *config) validate() error {
	for name, raw := range map[string]string{"node-url": c.nodeURL, "indexer-url": c.indexerURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid --%s", name)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("invalid --%s %q: expected http or https URL", name, raw)
		}
	}
	if c.confirmRounds == 0 {
		return errors.New("--confirm-rounds must be positive")
	}
	if c.rateLimit < 0 || c.rateBurst < 0 || c.createLimit < 0 || c.createBurst < 0 {
		return errors.New("rate limiter settings must not be negative")
	}
	if c.metadataCacheSize < 0 {
		return errors.New("--metadata-cache-size must not be negative")
	}
	if c.walletPath != "" && c.walletPasswordFile == "" {
		return errors.New("--wallet requires --wallet-password-file")
	}
	return nil
}

func (c *config) apiRunOptions() *api.RunOptions {
	opts := api.DefaultRunOptions()
	opts.MaxConnections = c.maxConnections
	if c.rateLimit == 0 {
		opts.RateLimiterOpts = nil
	} else {
		opts.RateLimiterOpts.MaxRequestsPerSecond = c.rateLimit
		opts.RateLimiterOpts.MaxBurst = c.rateBurst
		opts.RateLimiterOpts.MaxCreatesPerMinute = c.createLimit
		opts.RateLimiterOpts.MaxCreateBurst = c.createBurst
	}
	return opts
}

func (c *config) String() string {
	return fmt.Sprintf("{api: %s, node: %s, indexer: %s, confirm-rounds: %d, rate: %d/%d, create-rate: %d/%d, cache: %d, log: %s/%s}",
		c.apiAddress, c.nodeURL, c.indexerURL, c.confirmRounds, c.rateLimit, c.rateBurst, c.createLimit, c.createBurst,
		c.metadataCacheSize,
		c.lp.Level, c.lp.Type)
}
