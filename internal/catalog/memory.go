package catalog

import (
	"context"
	"sort"
	"sync"
)

type MemoryStore struct {
	mu        sync.RWMutex
	eventSets map[string]EventSet
	fieldSets map[string]FieldSet
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eventSets == nil {
		s.eventSets = make(map[string]EventSet)
		s.fieldSets = make(map[string]FieldSet)
	}
	return nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventSets = make(map[string]EventSet)
	s.fieldSets = make(map[string]FieldSet)
	return nil
}

func (s *MemoryStore) SaveEventSet(_ context.Context, set EventSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := set
	copied.Events = append([]Event(nil), set.Events...)
	s.eventSets[set.ID] = copied
	return nil
}

func (s *MemoryStore) GetEventSet(_ context.Context, id string) (EventSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.eventSets[id]
	if !ok {
		return EventSet{}, false, nil
	}
	copied := set
	copied.Events = append([]Event(nil), set.Events...)
	return copied, true, nil
}

func (s *MemoryStore) ListEventSets(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.eventSets))
	for id := range s.eventSets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) SaveFieldSet(_ context.Context, fields FieldSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := fields
	copied.Values = copyValues(fields.Values)
	s.fieldSets[fields.ID] = copied
	return nil
}

func (s *MemoryStore) GetFieldSet(_ context.Context, id string) (FieldSet, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.fieldSets[id]
	if !ok {
		return FieldSet{}, false, nil
	}
	copied := fields
	copied.Values = copyValues(fields.Values)
	return copied, true, nil
}

func (s *MemoryStore) ListFieldSets(_ context.Context, eventSetID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, fields := range s.fieldSets {
		if fields.EventSetID == eventSetID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func copyValues(values [][]float64) [][]float64 {
	if values == nil {
		return nil
	}
	copied := make([][]float64, len(values))
	for i, row := range values {
		copied[i] = append([]float64(nil), row...)
	}
	return copied
}
