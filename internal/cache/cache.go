package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"agratem/internal/pricing"
)

const tableKey = "pricing:table"

// KV is the key-value substrate backing the cache. Redis in production,
// an in-memory fake in tests.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// envelope wraps a table snapshot with its capture time. Validity is
// checked against CapturedAt rather than trusting the substrate's TTL.
type envelope struct {
	CapturedAt time.Time          `json:"captured_at"`
	Rows       []pricing.PriceRow `json:"rows"`
}

// TableCache memoizes one price-table snapshot for a fixed window.
// Every operation is fail-soft: substrate errors read as a miss and
// write as a no-op, never as a caller-visible failure.
type TableCache struct {
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func New(kv KV, ttl time.Duration, logger *zap.Logger) *TableCache {
	return &TableCache{
		kv:     kv,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the cached snapshot, or a miss when the entry is absent,
// unreadable, or past its validity window. A stale entry is purged.
func (c *TableCache) Get(ctx context.Context) ([]pricing.PriceRow, bool) {
	data, err := c.kv.Get(ctx, tableKey)
	if err != nil {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.logger.Warn("dropping unreadable price table cache entry", zap.Error(err))
		_ = c.kv.Del(ctx, tableKey)
		return nil, false
	}

	if c.now().Sub(env.CapturedAt) > c.ttl {
		_ = c.kv.Del(ctx, tableKey)
		return nil, false
	}

	return env.Rows, true
}

// Put stores a fresh snapshot stamped with the current time.
func (c *TableCache) Put(ctx context.Context, rows []pricing.PriceRow) {
	data, err := json.Marshal(envelope{
		CapturedAt: c.now(),
		Rows:       rows,
	})
	if err != nil {
		c.logger.Warn("failed to marshal price table for cache", zap.Error(err))
		return
	}

	if err := c.kv.Set(ctx, tableKey, data, c.ttl); err != nil {
		c.logger.Warn("failed to write price table cache", zap.Error(err))
	}
}

// Invalidate drops the cached snapshot.
func (c *TableCache) Invalidate(ctx context.Context) {
	if err := c.kv.Del(ctx, tableKey); err != nil {
		c.logger.Warn("failed to invalidate price table cache", zap.Error(err))
	}
}
