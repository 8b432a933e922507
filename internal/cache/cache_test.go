package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"agratem/internal/pricing"
)

// fakeKV is an in-memory substrate. failing makes every call error to
// exercise the fail-soft paths.
type fakeKV struct {
	data    map[string][]byte
	failing bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failing {
		return nil, errors.New("kv down")
	}
	data, ok := f.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if f.failing {
		return errors.New("kv down")
	}
	f.data[key] = data
	return nil
}

func (f *fakeKV) Del(ctx context.Context, key string) error {
	if f.failing {
		return errors.New("kv down")
	}
	delete(f.data, key)
	return nil
}

func sampleRows() []pricing.PriceRow {
	return []pricing.PriceRow{
		{Size: "13x5", Level: "A", CustomerType: pricing.CustomerStandard,
			Prices: map[string]float64{pricing.DurationOneDay: 800}},
	}
}

func TestPutThenGetWithinTTL(t *testing.T) {
	kv := newFakeKV()
	c := New(kv, 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	c.Put(ctx, sampleRows())

	rows, ok := c.Get(ctx)
	if !ok {
		t.Fatal("expected a cache hit within the TTL")
	}
	if len(rows) != 1 || rows[0].Size != "13x5" {
		t.Errorf("unexpected cached rows: %+v", rows)
	}
	if rows[0].Prices[pricing.DurationOneDay] != 800 {
		t.Errorf("cached price = %v, want 800", rows[0].Prices[pricing.DurationOneDay])
	}
}

func TestGetAfterExpiryMissesAndPurges(t *testing.T) {
	kv := newFakeKV()
	c := New(kv, 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	c.Put(ctx, sampleRows())

	// Move the clock past the validity window.
	c.now = func() time.Time { return time.Now().Add(6 * time.Minute) }

	if _, ok := c.Get(ctx); ok {
		t.Fatal("expected a miss after the TTL")
	}
	if _, exists := kv.data[tableKey]; exists {
		t.Error("stale entry must be purged on an expired read")
	}
}

func TestGetMissesOnEmptyCache(t *testing.T) {
	c := New(newFakeKV(), 5*time.Minute, zap.NewNop())

	if _, ok := c.Get(context.Background()); ok {
		t.Error("expected a miss on an empty cache")
	}
}

func TestInvalidateDropsEntry(t *testing.T) {
	kv := newFakeKV()
	c := New(kv, 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	c.Put(ctx, sampleRows())
	c.Invalidate(ctx)

	if _, ok := c.Get(ctx); ok {
		t.Error("expected a miss after Invalidate")
	}
}

func TestSubstrateErrorsFailSoft(t *testing.T) {
	kv := newFakeKV()
	kv.failing = true
	c := New(kv, 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	// None of these may panic or surface an error.
	c.Put(ctx, sampleRows())
	if _, ok := c.Get(ctx); ok {
		t.Error("expected a miss when the substrate is down")
	}
	c.Invalidate(ctx)
}

func TestUnreadableEntryIsDropped(t *testing.T) {
	kv := newFakeKV()
	kv.data[tableKey] = []byte("{not json")
	c := New(kv, 5*time.Minute, zap.NewNop())

	if _, ok := c.Get(context.Background()); ok {
		t.Fatal("expected a miss on a corrupt entry")
	}
	if _, exists := kv.data[tableKey]; exists {
		t.Error("corrupt entry must be purged")
	}
}
