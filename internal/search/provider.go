// Package search supplies the records of each entity slot, either from
// memory or through a simulated remote API.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"weighbridge/internal/domain"
	"weighbridge/internal/fuzzy"
	"weighbridge/internal/logic"
)

// ErrNotFound is returned by Detail when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Provider is the data source of one entity slot.
type Provider interface {
	Slot() domain.Slot
	Config() domain.EntityConfig
	// Async reports whether Search and Detail may block.
	Async() bool
	// All returns the full unfiltered collection without blocking.
	All() []domain.Record
	// Lookup finds a record of the collection by id without blocking.
	Lookup(id string) (domain.Record, bool)
	Search(ctx context.Context, query string) ([]domain.Record, error)
	Detail(ctx context.Context, id string) (domain.Record, error)
}

// indexer keeps a fuzzy index in step with a record store.
type indexer struct {
	mu        sync.Mutex
	store     logic.RecordStore
	fields    []string
	threshold float64
	version   uint64
	index     *fuzzy.Index
}

func (ix *indexer) current() *fuzzy.Index {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	v := ix.store.Version()
	if ix.index == nil || v != ix.version {
		ix.index = fuzzy.Build(ix.store.GetAllRecords(), ix.fields, fuzzy.WithThreshold(ix.threshold))
		ix.version = v
	}
	return ix.index
}

// StaticProvider filters an in-memory collection synchronously.
type StaticProvider struct {
	cfg   domain.EntityConfig
	store logic.RecordStore
	idx   *indexer
}

// NewStatic creates a provider over store using the fuzzy threshold given.
func NewStatic(cfg domain.EntityConfig, store logic.RecordStore, threshold float64) *StaticProvider {
	return &StaticProvider{
		cfg:   cfg,
		store: store,
		idx:   &indexer{store: store, fields: cfg.SearchableFields, threshold: threshold},
	}
}

func (p *StaticProvider) Slot() domain.Slot           { return p.cfg.Slot }
func (p *StaticProvider) Config() domain.EntityConfig { return p.cfg }
func (p *StaticProvider) Async() bool                 { return false }

func (p *StaticProvider) All() []domain.Record {
	return p.idx.current().Records()
}

func (p *StaticProvider) Lookup(id string) (domain.Record, bool) {
	return p.store.GetRecord(id)
}

// Filter runs the fuzzy search directly.
func (p *StaticProvider) Filter(query string) []domain.Record {
	return p.idx.current().Search(query)
}

func (p *StaticProvider) Search(_ context.Context, query string) ([]domain.Record, error) {
	return p.Filter(query), nil
}

func (p *StaticProvider) Detail(_ context.Context, id string) (domain.Record, error) {
	r, ok := p.store.GetRecord(id)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", p.cfg.Slot, id, ErrNotFound)
	}
	return r, nil
}
