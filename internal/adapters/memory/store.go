// Package memory implements ports.CounterStore with in-process maps. It backs
// ephemeral runs and tests; nothing survives the process. The contract is
// identical to the bbolt adapter's, including per-key atomicity under
// concurrent use.
package memory

import (
	"sync"

	"github.com/corey/tally/internal/ports"
)

// Store implements ports.CounterStore in memory.
type Store struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]int64
}

// NewStore creates an empty in-memory counter store.
func NewStore() *Store {
	return &Store{namespaces: make(map[string]map[string]int64)}
}

// nsKey flattens a namespace into a map key. The "tok:" prefix keeps
// per-category namespaces from colliding with the fixed ones.
func nsKey(ns ports.Namespace) string {
	switch ns.Kind {
	case ports.KindVocabulary:
		return "vocab"
	case ports.KindCategories:
		return "cats"
	default:
		return "tok:" + ns.Category
	}
}

// Increment adjusts the counter by delta and returns the new value.
func (s *Store) Increment(key ports.CounterKey, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	nk := nsKey(key.Namespace)
	m := s.namespaces[nk]
	if m == nil {
		m = make(map[string]int64)
		s.namespaces[nk] = m
	}
	m[key.Member] += delta
	return m[key.Member], nil
}

// Get returns the counter value. Missing keys read as 0.
func (s *Store) Get(key ports.CounterKey) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.namespaces[nsKey(key.Namespace)][key.Member], nil
}

// Delete removes the counter. Returns true iff a value was present.
func (s *Store) Delete(key ports.CounterKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.namespaces[nsKey(key.Namespace)]
	if m == nil {
		return false, nil
	}
	if _, ok := m[key.Member]; !ok {
		return false, nil
	}
	delete(m, key.Member)
	return true, nil
}

// Keys enumerates the members of a namespace.
func (s *Store) Keys(ns ports.Namespace) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.namespaces[nsKey(ns)]
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys, nil
}

// Len returns the number of members in a namespace.
func (s *Store) Len(ns ports.Namespace) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespaces[nsKey(ns)]), nil
}

// Wipe discards all counters.
func (s *Store) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespaces = make(map[string]map[string]int64)
	return nil
}
