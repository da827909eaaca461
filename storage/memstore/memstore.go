// Package memstore provides a map-backed Storage implementation for tests,
// examples, and ephemeral runs. Values are copied on the way in and out so
// callers cannot alias the store's internal state.
package memstore

import (
	"github.com/confio/mask/errors"
)

// Store is an in-memory key-value store
type Store struct {
	data map[string][]byte
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get implements storage.Storage
func (s *Store) Get(key []byte) ([]byte, error) {
	value, ok := s.data[string(key)]
	if !ok {
		return nil, errors.NotFound(errors.PhaseStorage, string(key))
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set implements storage.Storage
func (s *Store) Set(key, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[string(key)] = stored
	return nil
}

// Remove implements storage.Storage
func (s *Store) Remove(key []byte) error {
	delete(s.data, string(key))
	return nil
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	return len(s.data)
}
