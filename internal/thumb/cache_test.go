package thumb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	resp := CachedResponse{Body: []byte("img"), ContentType: "image/webp", CacheTag: "source::a-png"}
	c.Put("/thumb?file=a.png&w=100", resp)

	got, ok := c.Get("/thumb?file=a.png&w=100")
	require.True(t, ok)
	assert.Equal(t, resp, got)

	_, ok = c.Get("/thumb?file=a.png&w=200")
	assert.False(t, ok)
}

func TestCachePurgeTag(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	tag := "source::a-png"
	c.Put("id1", CachedResponse{Body: []byte("1"), CacheTag: tag})
	c.Put("id2", CachedResponse{Body: []byte("2"), CacheTag: tag})
	c.Put("id3", CachedResponse{Body: []byte("3"), CacheTag: "source::b-png"})

	assert.Equal(t, 2, c.PurgeTag(tag))
	_, ok := c.Get("id1")
	assert.False(t, ok)
	_, ok = c.Get("id2")
	assert.False(t, ok)
	_, ok = c.Get("id3")
	assert.True(t, ok)

	// purging again is a no-op
	assert.Equal(t, 0, c.PurgeTag(tag))
}

func TestCacheEvictionUnindexesTags(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("id%d", i), CachedResponse{Body: []byte{byte(i)}, CacheTag: fmt.Sprintf("source::k%d", i)})
	}
	assert.Equal(t, 2, c.Len())
	// evicted entries must not linger in the tag index
	assert.Equal(t, 0, c.PurgeTag("source::k0"))
	assert.Equal(t, 1, c.PurgeTag("source::k4"))
}
