package resultcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/db"
	"github.com/kailas-cloud/designdex/internal/domain"
)

// store is the consumer interface for the Redis cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	DelPrefix(ctx context.Context, prefix string) error
}

// Redis caches responses in a key-value store. Store failures degrade
// to cache misses; they never fail a search.
type Redis struct {
	store     store
	keyPrefix string
	logger    *zap.Logger
}

// NewRedis creates a Redis-backed cache. keyPrefix namespaces the keys
// so Clear cannot touch unrelated data.
func NewRedis(s store, keyPrefix string, logger *zap.Logger) *Redis {
	return &Redis{
		store:     s,
		keyPrefix: keyPrefix + "results:",
		logger:    logger,
	}
}

// redisKey hashes the (domain, raw query) pair into a fixed-width key.
// Hashing changes only the key encoding, not equality semantics.
func (r *Redis) redisKey(domainName, query string) string {
	h := sha256.Sum256([]byte(cacheKey(domainName, query)))
	return r.keyPrefix + hex.EncodeToString(h[:])
}

// Get returns the cached response for (domain, query), if present.
func (r *Redis) Get(ctx context.Context, domainName, query string) (domain.SearchResponse, bool) {
	key := r.redisKey(domainName, query)

	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			r.logger.Warn("Failed to get cached response", zap.String("key", key), zap.Error(err))
		}
		return domain.SearchResponse{}, false
	}

	var resp domain.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		r.logger.Warn("Failed to parse cached response", zap.String("key", key), zap.Error(err))
		return domain.SearchResponse{}, false
	}
	return resp, true
}

// Put stores a response.
func (r *Redis) Put(ctx context.Context, domainName, query string, resp domain.SearchResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		r.logger.Warn("Failed to encode response for cache", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, r.redisKey(domainName, query), data); err != nil {
		r.logger.Warn("Failed to cache response", zap.Error(err))
	}
}

// Clear removes every cached response under this cache's prefix.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.store.DelPrefix(ctx, r.keyPrefix); err != nil {
		return fmt.Errorf("clear result cache: %w", err)
	}
	return nil
}
