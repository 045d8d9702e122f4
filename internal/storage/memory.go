package storage

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process Store implementation useful for tests and
// single-process prototypes. It keeps all objects in a map guarded by an
// RWMutex; payloads are copied on write and read so callers cannot mutate
// internal buffers. Listing is lexicographic with start-after pagination,
// matching S3 semantics.
type MemoryStore struct {
	mu         sync.RWMutex
	objects    map[string]memObject
	publicBase string
}

type memObject struct {
	data         []byte
	contentType  string
	cacheControl string
	lastModified time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store deriving public URLs from
// publicBase.
func NewMemoryStore(publicBase string) *MemoryStore {
	return &MemoryStore{
		objects:    make(map[string]memObject),
		publicBase: strings.TrimRight(publicBase, "/"),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(obj.data))
	copy(cp, obj.data)
	return &Object{
		Info: ObjectInfo{
			Key:          key,
			Size:         int64(len(cp)),
			ContentType:  obj.contentType,
			LastModified: obj.lastModified,
		},
		Body: io.NopCloser(bytes.NewReader(cp)),
	}, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, reader io.Reader, size int64, opts PutOptions) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memObject{
		data:         data,
		contentType:  opts.ContentType,
		cacheControl: opts.CacheControl,
		lastModified: time.Now().UTC(),
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStore) Head(ctx context.Context, key string) (ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return ObjectInfo{}, ErrNotFound
	}
	return ObjectInfo{
		Key:          key,
		Size:         int64(len(obj.data)),
		ContentType:  obj.contentType,
		LastModified: obj.lastModified,
	}, nil
}

func (s *MemoryStore) List(ctx context.Context, prefix, token string, limit int) (ListPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) && k > token {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var page ListPage
	for _, k := range keys {
		obj := s.objects[k]
		page.Objects = append(page.Objects, ObjectInfo{
			Key:          k,
			Size:         int64(len(obj.data)),
			ContentType:  obj.contentType,
			LastModified: obj.lastModified,
		})
		if len(page.Objects) == limit {
			if k != keys[len(keys)-1] {
				page.NextToken = k
			}
			break
		}
	}
	return page, nil
}

func (s *MemoryStore) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// CacheControl reports the cache-control metadata stored for key; empty when
// the key is absent. Test helper.
func (s *MemoryStore) CacheControl(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[key].cacheControl
}
