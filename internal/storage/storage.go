// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO,
// Cloudflare R2, AWS S3), and the in-memory implementation backs tests.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when no object exists at the requested key.
var ErrNotFound = errors.New("object not found")

// ObjectInfo describes a stored object without its payload.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Object is a stored object's payload plus its metadata. Callers own Body
// and must close it.
type Object struct {
	Info ObjectInfo
	Body io.ReadCloser
}

// PutOptions carries the HTTP metadata persisted alongside an object.
type PutOptions struct {
	ContentType  string
	CacheControl string
}

// ListPage is one page of a paginated key listing.
type ListPage struct {
	Objects []ObjectInfo
	// NextToken is non-empty when more results remain; pass it to the next
	// List call to continue.
	NextToken string
}

// Store is the capability interface over the underlying blob store. The
// backend offers no transactions and no locks; multi-step operations built
// on top of it must tolerate interleaving.
type Store interface {
	// Get returns the object at key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Object, error)
	// Put streams data to the store under the given key, overwriting any
	// existing object. size must be the exact byte count (pass -1 only if
	// genuinely unknown).
	Put(ctx context.Context, key string, reader io.Reader, size int64, opts PutOptions) error
	// Delete removes an object identified by key. Deleting an absent key is
	// not an error.
	Delete(ctx context.Context, key string) error
	// Head returns metadata for the object at key, or ErrNotFound.
	Head(ctx context.Context, key string) (ObjectInfo, error)
	// List returns up to limit keys starting at token (empty for the first
	// page), restricted to the given prefix.
	List(ctx context.Context, prefix, token string, limit int) (ListPage, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
