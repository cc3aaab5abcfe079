package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/catalog"
	"weighbridge/internal/domain"
	"weighbridge/internal/logic"
)

func truckStore() *logic.MemoryRecordStore {
	return logic.NewMemoryRecordStore(catalog.FieldID, catalog.Trucks()...)
}

func instant() []RemoteOption {
	return []RemoteOption{
		WithSearchLatency(Latency{}),
		WithDetailLatency(Latency{}),
	}
}

func TestStaticProviderFiltersSynchronously(t *testing.T) {
	t.Parallel()
	cfg := catalog.Config(domain.SlotCustomer)
	p := NewStatic(cfg, logic.NewMemoryRecordStore(cfg.ValueField, catalog.Customers()...), 0.3)

	assert.False(t, p.Async())
	assert.Len(t, p.All(), 10)

	got, err := p.Search(context.Background(), "blue buildrs")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "Blue Builders", got[0][catalog.FieldName])

	r, ok := p.Lookup("Lake LLC")
	require.True(t, ok)
	assert.Equal(t, "CUST-1003", r[catalog.FieldID])
}

func TestStaticProviderDetailNotFound(t *testing.T) {
	t.Parallel()
	cfg := catalog.Config(domain.SlotProduct)
	p := NewStatic(cfg, logic.NewMemoryRecordStore(cfg.ValueField, catalog.Products()...), 0.3)

	_, err := p.Detail(context.Background(), "Granite #1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStaticProviderReindexesWhenStoreChanges(t *testing.T) {
	t.Parallel()
	cfg := catalog.Config(domain.SlotProduct)
	store := logic.NewMemoryRecordStore(cfg.ValueField, catalog.Products()...)
	p := NewStatic(cfg, store, 0.3)

	assert.Empty(t, p.Filter("Granite"))
	store.PutRecord(domain.Record{catalog.FieldName: "Granite #1", catalog.FieldID: "PROD-0099"})
	got := p.Filter("Granite")
	require.NotEmpty(t, got)
	assert.Equal(t, "Granite #1", got[0][catalog.FieldName])
}

func TestRemoteBlankSearchIsImmediate(t *testing.T) {
	t.Parallel()
	p := NewRemote(catalog.Config(domain.SlotTruck), truckStore(),
		WithSearchLatency(Latency{Min: time.Hour, Max: time.Hour}))

	start := time.Now()
	got, err := p.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, got, 60)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "TRK-1000", got[0][catalog.FieldID], "blank search keeps original order")
}

func TestRemoteSearchAppliesLatency(t *testing.T) {
	t.Parallel()
	l := Latency{Min: 20 * time.Millisecond, Max: 30 * time.Millisecond}
	p := NewRemote(catalog.Config(domain.SlotTruck), truckStore(), WithSearchLatency(l))

	start := time.Now()
	got, err := p.Search(context.Background(), "TRK-1057")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), l.Min)
	require.NotEmpty(t, got)
	assert.Equal(t, "TRK-1057", got[0][catalog.FieldID])
}

func TestRemoteSearchIsCachedPerQuery(t *testing.T) {
	t.Parallel()
	p := NewRemote(catalog.Config(domain.SlotTruck), truckStore(), instant()...)

	first, err := p.Search(context.Background(), "Matt Moore")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// a cancelled context fails on a miss, so only a cache hit succeeds
	done, cancel := context.WithCancel(context.Background())
	cancel()
	again, err := p.Search(done, "matt moore ")
	require.NoError(t, err, "normalised repeat query is served from cache")
	assert.Equal(t, first, again)
}

func TestRemoteCachesFollowStoreChanges(t *testing.T) {
	t.Parallel()
	store := truckStore()
	p := NewRemote(catalog.Config(domain.SlotTruck), store, instant()...)
	ctx := context.Background()

	found, err := p.Search(ctx, "TRK-1000")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	require.Equal(t, "TRK-1000", found[0][catalog.FieldID])
	_, err = p.Detail(ctx, "TRK-1000")
	require.NoError(t, err)

	store.RemoveRecord("TRK-1000")

	found, err = p.Search(ctx, "TRK-1000")
	require.NoError(t, err)
	for _, r := range found {
		assert.NotEqual(t, "TRK-1000", r[catalog.FieldID], "removed record must not come back from cache")
	}
	_, err = p.Detail(ctx, "TRK-1000")
	assert.ErrorIs(t, err, ErrNotFound)

	store.PutRecord(domain.Record{catalog.FieldID: "TRK-2000", catalog.FieldDriver: "Ana Ruiz"})
	found, err = p.Search(ctx, "TRK-2000")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, "TRK-2000", found[0][catalog.FieldID])
}

func TestRemoteSearchHonoursCancellation(t *testing.T) {
	t.Parallel()
	p := NewRemote(catalog.Config(domain.SlotTruck), truckStore(),
		WithSearchLatency(Latency{Min: time.Hour, Max: time.Hour}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Search(ctx, "TRK")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoteDetailEnrichesAndCaches(t *testing.T) {
	t.Parallel()
	store := truckStore()
	p := NewRemote(catalog.Config(domain.SlotTruck), store,
		append(instant(), WithEnricher(TruckLoads(catalog.FieldLoads)))...)

	r, err := p.Detail(context.Background(), "TRK-1001")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", r[catalog.FieldDriver])
	assert.NotEmpty(t, r[catalog.FieldLoads])

	light, _ := p.Lookup("TRK-1001")
	assert.NotContains(t, light, catalog.FieldLoads, "lightweight records have no heavy fields")

	cached, err := p.Detail(context.Background(), "TRK-1001")
	require.NoError(t, err)
	assert.Equal(t, r[catalog.FieldLoads], cached[catalog.FieldLoads], "repeat fetch is served from cache")
}

func TestRemoteDetailNotFound(t *testing.T) {
	t.Parallel()
	p := NewRemote(catalog.Config(domain.SlotTruck), truckStore(), instant()...)

	_, err := p.Detail(context.Background(), "TRK-9999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "TRK-9999")
}

func TestLatencyDrawStaysInWindow(t *testing.T) {
	t.Parallel()
	l := Latency{Min: 50 * time.Millisecond, Max: 100 * time.Millisecond}
	for i := 0; i < 200; i++ {
		d := l.draw()
		assert.GreaterOrEqual(t, d, l.Min)
		assert.LessOrEqual(t, d, l.Max)
	}
	assert.Equal(t, time.Duration(0), Latency{}.draw())
}
