package domain

import "context"

// KVStore is a durable store of named blobs. Get returns ErrNotFound for a
// key that was never written. Put replaces the whole value atomically: a
// subsequent Get observes either the old value or the new one, never a mix.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}
