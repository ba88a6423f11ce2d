package api

import (
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"
)

const (
	queryQuota  = "query"
	createQuota = "create"
)

// clientQuota keys a rate limit by quota name and client host. Once the real-ip middleware has run,
// RemoteAddr is the forwarded client address without a port.
type clientQuota string

func (q clientQuota) Key(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return string(q) + ":" + host
}

// assetLimiters throttle the /asa routes. Every call counts against the query quota. Asset creation spends
// ledger fees and keeps its request open for several rounds, so it also has a per-minute quota of its own.
type assetLimiters struct {
	query  func(http.Handler) http.Handler
	create func(http.Handler) http.Handler
}

func createRateLimiters(opts *RateLimiterOptions) (assetLimiters, error) {
	store, err := memstore.New(opts.MemoryCacheSize)
	if err != nil {
		return assetLimiters{}, errors.Wrapf(err, "failed to create rate limiter store with capacity %d",
			opts.MemoryCacheSize)
	}
	newLimiter := func(quota throttled.RateQuota, key clientQuota) (func(http.Handler) http.Handler, error) {
		rl, err := throttled.NewGCRARateLimiter(store, quota)
		if err != nil {
			return nil, errors.Wrapf(err, "can't create %s rate limiter", key)
		}
		return (&throttled.HTTPRateLimiter{RateLimiter: rl, VaryBy: key}).RateLimit, nil
	}

	var limiters assetLimiters
	limiters.query, err = newLimiter(throttled.RateQuota{
		MaxRate:  throttled.PerSec(opts.MaxRequestsPerSecond),
		MaxBurst: opts.MaxBurst,
	}, queryQuota)
	if err != nil {
		return assetLimiters{}, err
	}
	if opts.MaxCreatesPerMinute > 0 {
		limiters.create, err = newLimiter(throttled.RateQuota{
			MaxRate:  throttled.PerMin(opts.MaxCreatesPerMinute),
			MaxBurst: opts.MaxCreateBurst,
		}, createQuota)
		if err != nil {
			return assetLimiters{}, err
		}
	}
	return limiters, nil
}
