package catalog

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconhub/service/internal/keys"
	"github.com/iconhub/service/internal/storage"
)

const manifestKey = "icons.json"

var allowed = keys.NewExtSet("png", "jpg", "jpeg", "gif", "webp", "svg", "ico", "bmp")

func put(t *testing.T, s storage.Store, key string) {
	t.Helper()
	err := s.Put(context.Background(), key, bytes.NewReader([]byte("data")), 4, storage.PutOptions{ContentType: "image/png"})
	require.NoError(t, err)
}

func TestRebuildFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore("https://images.example.com")
	for _, k := range []string{"z.png", "a.png", "notes.txt", "m/n.GIF", manifestKey, "noext"} {
		put(t, mem, k)
	}

	b := NewBuilder(mem, manifestKey, allowed, 1000, 100)
	entries, err := b.Rebuild(ctx)
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"a.png", "m/n.GIF", "z.png"}, names)
	assert.Equal(t, "https://images.example.com/a.png", entries[0].URL)
}

func TestRebuildPaginates(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore("https://images.example.com")
	for i := 0; i < 25; i++ {
		put(t, mem, fmt.Sprintf("icon-%02d.png", i))
	}

	b := NewBuilder(mem, manifestKey, allowed, 10, 100)
	entries, err := b.Rebuild(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 25)
}

func TestRebuildBoundsPageCount(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore("https://images.example.com")
	for i := 0; i < 10; i++ {
		put(t, mem, fmt.Sprintf("icon-%02d.png", i))
	}

	b := NewBuilder(mem, manifestKey, allowed, 2, 3)
	_, err := b.Rebuild(ctx)
	assert.ErrorContains(t, err, "exceeded 3 pages")
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore("https://images.example.com")
	s := NewStore(mem, manifestKey, "Icons", "test icons")
	s.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	doc, err := s.Save(ctx, []Entry{
		{Name: "a.png", URL: "https://images.example.com/a.png"},
		{Name: "b.png", URL: "https://images.example.com/b.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, "2026-05-01T12:00:00Z", doc.UpdatedAt)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	// the manifest itself is never cacheable
	assert.Equal(t, "no-store", mem.CacheControl(manifestKey))
	info, err := mem.Head(ctx, manifestKey)
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", info.ContentType)
}

func TestSaveEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore("https://images.example.com")
	s := NewStore(mem, manifestKey, "Icons", "")

	doc, err := s.Save(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Count)
	assert.NotNil(t, doc.Icons)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Count)
	assert.Empty(t, loaded.Icons)
}

func TestLoadMissing(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	s := NewStore(mem, manifestKey, "Icons", "")
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
