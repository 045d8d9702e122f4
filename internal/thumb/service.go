package thumb

import (
	"context"
	"fmt"
	"io"
	"regexp"

	"github.com/iconhub/service/internal/keys"
	"github.com/iconhub/service/internal/metrics"
	"github.com/iconhub/service/internal/resize"
	"github.com/iconhub/service/internal/storage"
	"github.com/iconhub/service/internal/task"
)

// freshness directives attached to every rendered variant: a day of positive
// freshness plus an hour-long background-revalidate window.
const cacheControl = "public, max-age=86400, stale-while-revalidate=3600"

// Request identifies one thumbnail variant.
type Request struct {
	// Identity is the edge-cache lookup key: request path plus the full raw
	// query, since every parameter participates in variant identity.
	Identity string
	// SourceKey is the raw `file` parameter; it is normalized before the
	// store lookup.
	SourceKey string
	Options   resize.Options
}

// Rendered is a variant ready to be written to the client.
type Rendered struct {
	Body         []byte
	ContentType  string
	CacheControl string
	CacheTag     string
	// Hit is true when the response was replayed from the edge cache.
	Hit bool
}

// Service renders thumbnail variants, caching them by request identity.
type Service struct {
	store   storage.Store
	resizer resize.Resizer
	cache   *Cache
	runner  *task.Runner
}

// NewService creates a thumbnail Service.
func NewService(store storage.Store, resizer resize.Resizer, cache *Cache, runner *task.Runner) *Service {
	return &Service{store: store, resizer: resizer, cache: cache, runner: runner}
}

// GetOrRender returns the cached variant for req, or fetches the source,
// renders, and returns the fresh bytes. The cache store happens on a
// background task so it never delays the response; the task runner
// guarantees it still completes before shutdown.
func (s *Service) GetOrRender(ctx context.Context, req Request) (*Rendered, error) {
	if cached, ok := s.cache.Get(req.Identity); ok {
		metrics.ThumbRequests.WithLabelValues("hit").Inc()
		return &Rendered{
			Body:         cached.Body,
			ContentType:  cached.ContentType,
			CacheControl: cached.CacheControl,
			CacheTag:     cached.CacheTag,
			Hit:          true,
		}, nil
	}

	key := keys.Normalize(req.SourceKey)
	obj, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	src, err := io.ReadAll(obj.Body)
	obj.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read source %q: %w", key, err)
	}

	body, err := s.resizer.Resize(ctx, src, req.Options)
	if err != nil {
		return nil, err
	}

	rendered := &Rendered{
		Body:         body,
		ContentType:  "image/" + req.Options.Format,
		CacheControl: cacheControl,
		CacheTag:     SourceTag(key),
	}

	identity := req.Identity
	cached := CachedResponse{
		Body:         rendered.Body,
		ContentType:  rendered.ContentType,
		CacheControl: rendered.CacheControl,
		CacheTag:     rendered.CacheTag,
	}
	s.runner.Go(func() { s.cache.Put(identity, cached) })

	metrics.ThumbRequests.WithLabelValues("miss").Inc()
	return rendered, nil
}

// PurgeSource evicts every cached variant of the given source key. It is the
// invalidation hook mutations call after a rename or delete.
func (s *Service) PurgeSource(rawKey string) int {
	return s.cache.PurgeTag(SourceTag(keys.Normalize(rawKey)))
}

var tagUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SourceTag derives the cache tag for a source key: the key with every
// non-alphanumeric character replaced, namespaced under "source::".
func SourceTag(key string) string {
	return "source::" + tagUnsafe.ReplaceAllString(key, "-")
}
