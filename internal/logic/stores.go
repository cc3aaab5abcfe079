package logic

import (
	"sync"

	"weighbridge/internal/domain"
)

// MemoryRecordStore is an in-memory implementation of RecordStore that keeps
// insertion order
type MemoryRecordStore struct {
	mu      sync.RWMutex
	key     string
	order   []string
	records map[string]domain.Record
	version uint64
}

// NewMemoryRecordStore creates a store keyed by the given field
func NewMemoryRecordStore(keyField string, records ...domain.Record) *MemoryRecordStore {
	s := &MemoryRecordStore{
		key:     keyField,
		records: make(map[string]domain.Record, len(records)),
	}
	for _, r := range records {
		s.put(r)
	}
	return s
}

func (s *MemoryRecordStore) GetRecord(id string) (domain.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// GetAllRecords returns the records in insertion order. The slice is rebuilt
// on every call; compare Version to detect changes.
func (s *MemoryRecordStore) GetAllRecords() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Record, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result
}

func (s *MemoryRecordStore) PutRecord(r domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(r)
}

func (s *MemoryRecordStore) RemoveRecord(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.version++
}

// Version increases on every mutation
func (s *MemoryRecordStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *MemoryRecordStore) put(r domain.Record) {
	id := r.Get(s.key)
	if id == "" {
		return
	}
	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}
	s.records[id] = r.Clone()
	s.version++
}
