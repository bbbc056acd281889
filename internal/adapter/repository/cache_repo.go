package repository

import (
	"context"
	"fmt"
	"strconv"

	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/imstevez/blocks-mcp/internal/config"
	"github.com/imstevez/blocks-mcp/internal/entity"
	"github.com/imstevez/blocks-mcp/internal/usecase"
)

// Compile-time check
var _ usecase.ChainCache = (*goCacheRepo)(nil)

// Cache keys
const chainKeyPrefix = "chain_"

type goCacheRepo struct {
	cache  *cache.Cache
	logger *zap.Logger
}

// NewGoCacheRepo creates the in-memory chain cache. Records never expire for
// the process lifetime; go-cache guards its map with a reader/writer lock, so
// concurrent resolutions for different chain ids do not serialize on fetches.
func NewGoCacheRepo(cfg config.CacheConfig, logger *zap.Logger) usecase.ChainCache {
	c := cache.New(cache.NoExpiration, cfg.GetCleanupInterval())
	logger.Info("Initialized go-cache",
		zap.Duration("cleanupInterval", cfg.GetCleanupInterval()))

	return &goCacheRepo{
		cache:  c,
		logger: logger.Named("GoCacheRepo"),
	}
}

func (r *goCacheRepo) GetChain(ctx context.Context, chainID int64) (entity.Chain, bool) {
	key := r.chainKey(chainID)
	if x, found := r.cache.Get(key); found {
		if chain, ok := x.(entity.Chain); ok {
			r.logger.Debug("Cache hit", zap.String("key", key))
			return chain, true
		}
		r.logger.Warn("Cache data type mismatch for key",
			zap.String("key", key), zap.Any("type", fmt.Sprintf("%T", x)))
		// Treat type mismatch as cache miss
	}
	r.logger.Debug("Cache miss", zap.String("key", key))
	return entity.Chain{}, false
}

func (r *goCacheRepo) SetChain(ctx context.Context, chainID int64, chain entity.Chain) {
	key := r.chainKey(chainID)
	r.cache.Set(key, chain, cache.NoExpiration)
	r.logger.Debug("Cache set", zap.String("key", key))
}

// Helper to generate consistent cache keys
func (r *goCacheRepo) chainKey(chainID int64) string {
	return chainKeyPrefix + strconv.FormatInt(chainID, 10)
}
