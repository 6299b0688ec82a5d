// Package memory implements an in-memory Store backend. It backs the
// "memory" config backend for ephemeral runs and substitutes for
// SQLite in domain-layer tests.
package memory

import (
	"encoding/json"
	"sync"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Store is an in-memory implementation of types.Store. The zero value
// is not usable; call NewStore and Attach first.
type Store struct {
	mu       sync.RWMutex
	attached bool
	values   map[string]json.RawMessage
}

var _ types.Store = (*Store)(nil)

// NewStore creates a new detached in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store. The config backend must be "memory";
// DataDir is ignored. Returns ErrAlreadyAttached on a second call.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.values = make(map[string]json.RawMessage)
	s.attached = true
	return nil
}

// Detach discards all stored values. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = nil
	s.attached = false
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	v, ok := s.values[key]
	if !ok {
		return nil, types.ErrKeyNotFound
	}
	cp := make(json.RawMessage, len(v))
	copy(cp, v)
	return cp, nil
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

// Delete removes key. Absent keys are not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}
	delete(s.values, key)
	return nil
}

// Keys returns every stored key in unspecified order.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys, nil
}

// Attached creates an attached in-memory store for tests.
func Attached() *Store {
	s := NewStore()
	_ = s.Attach(types.Config{Backend: types.BackendMemory})
	return s
}
