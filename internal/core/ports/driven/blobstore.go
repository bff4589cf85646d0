package driven

import "context"

// BlobStore is an opaque durable key-value blob store.
//
// The store service writes the full index snapshot under a single fixed key
// after every mutating operation and reads it back once at startup. The
// substrate only needs whole-value reads and overwrites; there is no
// incremental or partial update.
type BlobStore interface {
	// Get returns the blob stored under key.
	// Returns domain.ErrNotFound if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores data under key, overwriting any previous value.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes the blob under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}
