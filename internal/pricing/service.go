package pricing

import (
	"context"

	"go.uber.org/zap"
)

// Store is the backend price table. Rows come back ordered by id ascending.
type Store interface {
	ListPriceRows(ctx context.Context) ([]PriceRow, error)
}

// TableCache memoizes one loaded table snapshot. Implementations must be
// fail-soft: a substrate error is a miss on read and a no-op on write.
type TableCache interface {
	Get(ctx context.Context) ([]PriceRow, bool)
	Put(ctx context.Context, rows []PriceRow)
	Invalidate(ctx context.Context)
}

// Service is the pricing engine. Construct one per dependency set; it
// holds no mutable state of its own beyond the injected cache.
type Service struct {
	store  Store
	cache  TableCache
	logger *zap.Logger
}

func NewService(store Store, cache TableCache, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// loadRows returns the current price table: cache first, then the store,
// then the built-in default table. A store failure is degraded, not fatal,
// and is not retried.
func (s *Service) loadRows(ctx context.Context) []PriceRow {
	if rows, ok := s.cache.Get(ctx); ok {
		return rows
	}

	rows, err := s.store.ListPriceRows(ctx)
	if err != nil {
		s.logger.Warn("price table fetch failed, using built-in defaults",
			zap.Error(err))
		return DefaultPriceRows()
	}

	s.cache.Put(ctx, rows)
	return rows
}

// Resolve returns the price at durationKey for the first row matching
// (size, level, customerType) exactly. A missing row or an unconfigured
// duration resolves to 0; Resolve never fails.
func (s *Service) Resolve(ctx context.Context, size, level, customerType, durationKey string) float64 {
	for _, row := range s.loadRows(ctx) {
		if row.Size == size && row.Level == level && row.CustomerType == customerType {
			return row.Price(durationKey)
		}
	}
	return 0
}

// Rows returns an independent copy of the current table.
func (s *Service) Rows(ctx context.Context) []PriceRow {
	rows := s.loadRows(ctx)
	out := make([]PriceRow, len(rows))
	for i, r := range rows {
		out[i] = r.clone()
	}
	return out
}
