package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/iconhub/service/internal/storage"
)

// Store persists the manifest as a single JSON object at a reserved key.
//
// Saves are last-writer-wins: there is no conditional write, so two
// concurrent rebuild+save pairs can race and the later save sticks. Each
// saved manifest still reflects a real listing of the store, just possibly
// not the most recent one.
type Store struct {
	store       storage.Store
	manifestKey string
	title       string
	description string
	now         func() time.Time
}

// NewStore creates a manifest Store writing to manifestKey, stamping each
// save with title and description.
func NewStore(store storage.Store, manifestKey, title, description string) *Store {
	return &Store{
		store:       store,
		manifestKey: manifestKey,
		title:       title,
		description: description,
		now:         time.Now,
	}
}

// Key returns the reserved manifest key.
func (s *Store) Key() string {
	return s.manifestKey
}

// Save stamps and persists the manifest built from entries, returning the
// document that was written. The object carries a no-store cache directive:
// the manifest is the consistency anchor for the UI and must never be served
// stale by any cache layer.
func (s *Store) Save(ctx context.Context, entries []Entry) (*Catalog, error) {
	if entries == nil {
		entries = []Entry{}
	}
	doc := &Catalog{
		Title:       s.title,
		Description: s.description,
		UpdatedAt:   s.now().UTC().Format(time.RFC3339),
		Count:       len(entries),
		Icons:       entries,
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	err = s.store.Put(ctx, s.manifestKey, bytes.NewReader(payload), int64(len(payload)), storage.PutOptions{
		ContentType:  "application/json; charset=utf-8",
		CacheControl: "no-store",
	})
	if err != nil {
		return nil, fmt.Errorf("save manifest: %w", err)
	}
	return doc, nil
}

// Load reads the persisted manifest back, or storage.ErrNotFound when it has
// never been saved.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	obj, err := s.store.Get(ctx, s.manifestKey)
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var doc Catalog
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &doc, nil
}
