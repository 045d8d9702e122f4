package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/iconhub/service/internal/keys"
	"github.com/iconhub/service/internal/storage"
)

// Builder derives manifest entries from a full scan of the object store.
type Builder struct {
	store       storage.Store
	manifestKey string
	allowed     keys.ExtSet
	pageSize    int
	maxPages    int
}

// NewBuilder creates a Builder. pageSize and maxPages bound each rebuild's
// listing work; a store larger than pageSize*maxPages objects fails the
// rebuild instead of scanning forever.
func NewBuilder(store storage.Store, manifestKey string, allowed keys.ExtSet, pageSize, maxPages int) *Builder {
	return &Builder{
		store:       store,
		manifestKey: manifestKey,
		allowed:     allowed,
		pageSize:    pageSize,
		maxPages:    maxPages,
	}
}

// Rebuild lists the entire key space, filters to allowed image keys, and
// returns the sorted manifest entries.
func (b *Builder) Rebuild(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	token := ""
	for pages := 0; ; pages++ {
		if pages >= b.maxPages {
			return nil, fmt.Errorf("catalog rebuild: listing exceeded %d pages, refusing unbounded scan", b.maxPages)
		}
		page, err := b.store.List(ctx, "", token, b.pageSize)
		if err != nil {
			return nil, fmt.Errorf("catalog rebuild: %w", err)
		}
		for _, obj := range page.Objects {
			if !b.isImageKey(obj.Key) {
				continue
			}
			entries = append(entries, Entry{
				Name: obj.Key,
				URL:  b.store.PublicURL(obj.Key),
			})
		}
		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// isImageKey reports whether key belongs in the manifest: not the manifest
// itself and carrying an allowed image extension.
func (b *Builder) isImageKey(key string) bool {
	return key != b.manifestKey && b.allowed.Contains(keys.Ext(key))
}
