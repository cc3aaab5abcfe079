package search

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/patrickmn/go-cache"

	"weighbridge/internal/domain"
	"weighbridge/internal/logic"
)

// Latency is a uniformly distributed delay window.
type Latency struct {
	Min time.Duration
	Max time.Duration
}

func (l Latency) draw() time.Duration {
	if l.Max <= l.Min {
		return l.Min
	}
	return l.Min + rand.N(l.Max-l.Min+1)
}

// Defaults for the simulated remote API.
var (
	DefaultSearchLatency = Latency{Min: 50 * time.Millisecond, Max: 100 * time.Millisecond}
	DefaultDetailLatency = Latency{Min: 100 * time.Millisecond, Max: 200 * time.Millisecond}
	DefaultCacheTTL      = 5 * time.Minute
)

const detailCacheSize = 128

// Enricher adds the heavyweight fields that only a detail fetch returns.
type Enricher func(domain.Record) domain.Record

// RemoteOption configures a RemoteProvider.
type RemoteOption func(*RemoteProvider)

// WithSearchLatency sets the delay applied to non-empty searches.
func WithSearchLatency(l Latency) RemoteOption {
	return func(p *RemoteProvider) { p.searchLatency = l }
}

// WithDetailLatency sets the delay applied to detail fetches.
func WithDetailLatency(l Latency) RemoteOption {
	return func(p *RemoteProvider) { p.detailLatency = l }
}

// WithCacheTTL sets how long search results and details stay fresh.
func WithCacheTTL(ttl time.Duration) RemoteOption {
	return func(p *RemoteProvider) { p.ttl = ttl }
}

// WithThreshold sets the fuzzy tolerance.
func WithThreshold(t float64) RemoteOption {
	return func(p *RemoteProvider) { p.idx.threshold = t }
}

// WithEnricher sets the function producing full detail records.
func WithEnricher(fn Enricher) RemoteOption {
	return func(p *RemoteProvider) { p.enrich = fn }
}

// RemoteProvider simulates a slow remote API for one slot. Searches return
// lightweight records; Detail returns the full record.
type RemoteProvider struct {
	cfg           domain.EntityConfig
	store         logic.RecordStore
	idx           *indexer
	searchLatency Latency
	detailLatency Latency
	ttl           time.Duration
	enrich        Enricher

	// Cache keys carry the store version, so a mutation never serves
	// stale records. seen is the last version the caches were used with.
	results *cache.Cache
	details *expirable.LRU[string, domain.Record]
	seen    atomic.Uint64
}

// NewRemote creates a provider over store.
func NewRemote(cfg domain.EntityConfig, store logic.RecordStore, opts ...RemoteOption) *RemoteProvider {
	p := &RemoteProvider{
		cfg:           cfg,
		store:         store,
		idx:           &indexer{store: store, fields: cfg.SearchableFields, threshold: 0.3},
		searchLatency: DefaultSearchLatency,
		detailLatency: DefaultDetailLatency,
		ttl:           DefaultCacheTTL,
		enrich:        func(r domain.Record) domain.Record { return r },
	}
	for _, opt := range opts {
		opt(p)
	}
	p.results = cache.New(p.ttl, 2*p.ttl)
	p.details = expirable.NewLRU[string, domain.Record](detailCacheSize, nil, p.ttl)
	return p
}

func (p *RemoteProvider) Slot() domain.Slot           { return p.cfg.Slot }
func (p *RemoteProvider) Config() domain.EntityConfig { return p.cfg }
func (p *RemoteProvider) Async() bool                 { return true }

func (p *RemoteProvider) All() []domain.Record {
	return p.idx.current().Records()
}

func (p *RemoteProvider) Lookup(id string) (domain.Record, bool) {
	return p.store.GetRecord(id)
}

// Search resolves a blank query immediately with the full collection.
// Other queries are answered after the search latency, or from cache.
func (p *RemoteProvider) Search(ctx context.Context, query string) ([]domain.Record, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return p.All(), nil
	}

	key := p.cacheKey(strings.ToLower(q))
	if hit, ok := p.results.Get(key); ok {
		return hit.([]domain.Record), nil
	}

	if err := sleep(ctx, p.searchLatency.draw()); err != nil {
		return nil, err
	}

	found := p.idx.current().Search(q)
	p.results.Set(key, found, cache.DefaultExpiration)
	log.Debug("search: remote query", "slot", p.cfg.Slot, "query", q, "results", len(found))
	return found, nil
}

// Detail fetches the full record for id. It returns an error wrapping
// ErrNotFound when the id is unknown.
func (p *RemoteProvider) Detail(ctx context.Context, id string) (domain.Record, error) {
	key := p.cacheKey(id)
	if r, ok := p.details.Get(key); ok {
		return r.Clone(), nil
	}

	if err := sleep(ctx, p.detailLatency.draw()); err != nil {
		return nil, err
	}

	r, ok := p.store.GetRecord(id)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", p.cfg.Slot, id, ErrNotFound)
	}
	full := p.enrich(r)
	p.details.Add(key, full)
	return full.Clone(), nil
}

// Invalidate drops every cached search result and detail.
func (p *RemoteProvider) Invalidate() {
	p.results.Flush()
	p.details.Purge()
}

// cacheKey scopes s to the current store version. Entries of older
// versions are dropped the first time a newer version is seen.
func (p *RemoteProvider) cacheKey(s string) string {
	v := p.store.Version()
	if old := p.seen.Swap(v); old != v {
		p.Invalidate()
		log.Debug("search: store changed, caches flushed", "slot", p.cfg.Slot, "version", v)
	}
	return strconv.FormatUint(v, 10) + "/" + s
}

// TruckLoads adds the simulated load count that only truck details carry.
func TruckLoads(field string) Enricher {
	return func(r domain.Record) domain.Record {
		full := r.Clone()
		full[field] = strconv.Itoa(5 + rand.IntN(46))
		return full
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
