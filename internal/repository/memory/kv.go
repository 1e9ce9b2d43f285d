// Package memory provides an in-memory key-value store used by tests and
// by the -memory run mode, where nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/msomdec/jobtracker/internal/domain"
)

// KV is a concurrency-safe map-backed domain.KVStore. Values are copied on
// the way in and out.
type KV struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ domain.KVStore = (*KV)(nil)

// NewKV creates an empty KV.
func NewKV() *KV {
	return &KV{entries: map[string][]byte{}}
}

func (s *KV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *KV) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.entries[key] = slices.Clone(value)
	s.mu.Unlock()
	return nil
}

func (s *KV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (s *KV) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
