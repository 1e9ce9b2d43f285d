// Package persist connects the in-memory store to durable storage: the
// typed JSON bridge, the one-time hydration at startup, the write-through of
// every state change, and the account registry that shares the bridge.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msomdec/jobtracker/internal/domain"
)

// Bridge keys. Every key is stored with keyPrefix in front of it.
const (
	KeyAuth         = "auth"
	KeyApplications = "applications"
	KeyJobs         = "jobs"
	KeyTheme        = "theme"
	KeyUsers        = "users"
)

const keyPrefix = "jat_"

// Bridge stores JSON values under named keys in a domain.KVStore.
type Bridge struct {
	kv domain.KVStore
}

// NewBridge creates a new Bridge over kv.
func NewBridge(kv domain.KVStore) *Bridge {
	return &Bridge{kv: kv}
}

// Load decodes the value stored under key. It reports false when the key is
// absent, unreadable, or holds malformed JSON; those failures are logged and
// never returned.
func Load[T any](ctx context.Context, b *Bridge, key string) (T, bool) {
	var zero T
	data, err := b.kv.Get(ctx, keyPrefix+key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("read persisted value", "key", key, "error", err)
		}
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("discard malformed persisted value", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

// Save replaces the value stored under key with the JSON encoding of v.
func (b *Bridge) Save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.kv.Put(ctx, keyPrefix+key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
