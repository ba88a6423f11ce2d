// Package resolver finds the metadata attached to an asset at creation.
package resolver

import (
	"context"
	"encoding/binary"

	"github.com/coocood/freecache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/client"
	"github.com/assetnote/assetnote/pkg/metadata"
	"github.com/assetnote/assetnote/pkg/proto"
)

// DefaultCacheSize is the size in bytes of the note cache.
const DefaultCacheSize = 8 * 1024 * 1024

//go:generate mockgen -destination=../mock/indexer_client.go -package=mock github.com/assetnote/assetnote/pkg/resolver IndexerClient

type IndexerClient interface {
	SearchAssetConfigTransactions(
		ctx context.Context, address proto.Address, assetID proto.AssetID,
	) (*client.TransactionsResponse, *client.Response, error)
}

// Resolver is a best effort lookup. Indexer failures, missing notes and undecodable notes all
// resolve to "not found".
type Resolver struct {
	indexer IndexerClient
	issuer  proto.Address
	cache   *freecache.Cache
	logger  *zap.Logger
}

// NewResolver creates a resolver for assets created by issuer. Zero cacheSize disables caching.
func NewResolver(indexer IndexerClient, issuer proto.Address, cacheSize int, logger *zap.Logger) *Resolver {
	r := &Resolver{indexer: indexer, issuer: issuer, logger: logger.Named("resolver")}
	if cacheSize > 0 {
		r.cache = freecache.NewCache(cacheSize)
	}
	return r
}

func (r *Resolver) Resolve(ctx context.Context, assetID proto.AssetID) (metadata.Metadata, bool) {
	note, err := r.note(ctx, assetID)
	if err != nil {
		r.logger.Warn("Asset lookup failed", zap.Stringer("asset_id", assetID), zap.Error(err))
		return nil, false
	}
	if len(note) == 0 {
		return nil, false
	}
	md, err := metadata.Decode(note)
	if err != nil {
		r.logger.Warn("Failed to decode asset note", zap.Stringer("asset_id", assetID), zap.Error(err))
		return nil, false
	}
	r.store(assetID, note)
	return md, true
}

func (r *Resolver) note(ctx context.Context, assetID proto.AssetID) ([]byte, error) {
	if note, ok := r.load(assetID); ok {
		return note, nil
	}
	out, _, err := r.indexer.SearchAssetConfigTransactions(ctx, r.issuer, assetID)
	if err != nil {
		return nil, errors.Wrap(err, "indexer search")
	}
	origin, ok := Earliest(out.Transactions)
	if !ok {
		return nil, nil
	}
	return origin.Note, nil
}

// Earliest returns the transaction with the smallest confirmed round. The first one wins a tie.
func Earliest(txs []client.IndexedTransaction) (client.IndexedTransaction, bool) {
	if len(txs) == 0 {
		return client.IndexedTransaction{}, false
	}
	earliest := txs[0]
	for _, tx := range txs[1:] {
		if tx.ConfirmedRound < earliest.ConfirmedRound {
			earliest = tx
		}
	}
	return earliest, true
}

func cacheKey(assetID proto.AssetID) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], uint64(assetID))
	return k[:]
}

func (r *Resolver) load(assetID proto.AssetID) ([]byte, bool) {
	if r.cache == nil {
		return nil, false
	}
	note, err := r.cache.Get(cacheKey(assetID))
	if err != nil {
		return nil, false
	}
	return note, true
}

func (r *Resolver) store(assetID proto.AssetID, note []byte) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(cacheKey(assetID), note, 0); err != nil {
		r.logger.Debug("Failed to cache asset note", zap.Stringer("asset_id", assetID), zap.Error(err))
	}
}
