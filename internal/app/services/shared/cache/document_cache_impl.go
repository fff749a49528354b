package cache

import (
	"context"
	"fmt"
	"time"

	"patient-registry-service/internal/app/contracts"
	"patient-registry-service/internal/pkg/constvars"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cachedDocumentEngine is a read-through decorator over a DocumentEngine.
// Only Get is cached; cached bytes are the stored form, so normalization
// behaves identically for cached and uncached reads. Cache failures degrade
// to the inner engine and never fail the request.
type cachedDocumentEngine struct {
	Engine contracts.DocumentEngine
	Redis  contracts.RedisRepository
	TTL    time.Duration
	Log    *zap.Logger
}

func NewCachedDocumentEngine(
	documentEngine contracts.DocumentEngine,
	redisRepository contracts.RedisRepository,
	ttl time.Duration,
	logger *zap.Logger,
) contracts.DocumentEngine {
	return &cachedDocumentEngine{
		Engine: documentEngine,
		Redis:  redisRepository,
		TTL:    ttl,
		Log:    logger,
	}
}

func (c *cachedDocumentEngine) Put(ctx context.Context, kind string, document []byte) (uuid.UUID, error) {
	return c.Engine.Put(ctx, kind, document)
}

func (c *cachedDocumentEngine) Get(ctx context.Context, kind string, id uuid.UUID) ([]byte, error) {
	key := cacheKey(kind, id)

	cached, err := c.Redis.Get(ctx, key)
	if err != nil {
		c.Log.Warn("document cache read failed",
			zap.String(constvars.LoggingCacheKeyKey, key),
			zap.Error(err),
		)
	} else if cached != nil {
		return cached, nil
	}

	document, err := c.Engine.Get(ctx, kind, id)
	if err != nil || document == nil {
		return document, err
	}

	if err := c.Redis.Set(ctx, key, document, c.TTL); err != nil {
		c.Log.Warn("document cache write failed",
			zap.String(constvars.LoggingCacheKeyKey, key),
			zap.Error(err),
		)
	}
	return document, nil
}

func (c *cachedDocumentEngine) Search(ctx context.Context, kind string, filter []byte) ([]uuid.UUID, error) {
	return c.Engine.Search(ctx, kind, filter)
}

func (c *cachedDocumentEngine) Count(ctx context.Context, kind string, filter []byte) (int, error) {
	return c.Engine.Count(ctx, kind, filter)
}

func cacheKey(kind string, id uuid.UUID) string {
	return fmt.Sprintf("document:%s:%s", kind, id.String())
}
