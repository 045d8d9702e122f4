// Package icon orchestrates mutations of the icon store: every successful
// upload, rename, or delete ends with a full manifest rebuild so the
// persisted catalog always reflects a real snapshot of the store.
package icon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/iconhub/service/internal/catalog"
	"github.com/iconhub/service/internal/keys"
	"github.com/iconhub/service/internal/metrics"
	"github.com/iconhub/service/internal/storage"
)

// Service contains the mutation logic for the icon store.
//
// Each operation is atomic only with respect to the single object it
// targets. The catalog step always re-derives the manifest from a fresh
// store listing, never by patching the previous manifest. If the object
// step fails the catalog is left untouched.
type Service struct {
	store       storage.Store
	builder     *catalog.Builder
	catalog     *catalog.Store
	manifestKey string
	allowed     keys.ExtSet
	// purge, when set, evicts cached thumbnail variants of a source key
	// after the object at that key changes or disappears.
	purge func(key string)
}

// NewService creates the mutation Service.
func NewService(store storage.Store, builder *catalog.Builder, cat *catalog.Store, allowed keys.ExtSet) *Service {
	return &Service{
		store:       store,
		builder:     builder,
		catalog:     cat,
		manifestKey: cat.Key(),
		allowed:     allowed,
	}
}

// SetInvalidator registers the thumbnail-cache purge hook. fn receives the
// source key whose derived variants are now stale.
func (s *Service) SetInvalidator(fn func(key string)) {
	s.purge = fn
}

func (s *Service) invalidate(key string) {
	if s.purge != nil {
		s.purge(key)
	}
}

// UploadInput is one upload request.
type UploadInput struct {
	// Key is the requested target key; when empty Filename is used.
	Key      string
	Filename string
	// Overwrite allows replacing an existing object at the key. When false
	// and the key is taken, a disambiguated key is synthesized instead of
	// failing or overwriting.
	Overwrite   bool
	ContentType string
	Body        io.Reader
	Size        int64
}

// UploadResult reports the key actually written and the new manifest total.
type UploadResult struct {
	KeyUsed string
	URL     string
	Total   int
}

// Upload stores an image object and rebuilds the manifest.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	key := keys.Normalize(in.Key)
	if key == "" {
		key = keys.Normalize(in.Filename)
	}
	if key == "" {
		return nil, validationf("missing key")
	}
	if !s.isImageKey(key) {
		return nil, validationf("unsupported file type (allow: %s)", strings.Join(s.allowed.List(), ", "))
	}

	if !in.Overwrite {
		_, err := s.store.Head(ctx, key)
		switch {
		case err == nil:
			key = disambiguate(key)
		case !errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("probe %q: %w", key, err)
		}
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.store.Put(ctx, key, in.Body, in.Size, storage.PutOptions{ContentType: contentType}); err != nil {
		return nil, err
	}
	// An overwrite changes the bytes behind every derived variant.
	s.invalidate(key)
	metrics.Uploads.Inc()

	count, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &UploadResult{KeyUsed: key, URL: s.store.PublicURL(key), Total: count}, nil
}

// RenameResult reports a completed rename and the new manifest count.
type RenameResult struct {
	From  string
	To    string
	Count int
}

// Rename moves an object to a new key as copy-then-delete; the store offers
// no atomic move. A crash between the two halves leaves both keys present
// until the next rebuild, reconciled manually via Refresh.
func (s *Service) Rename(ctx context.Context, oldRaw, newRaw string) (*RenameResult, error) {
	oldKey := keys.Normalize(oldRaw)
	newKey := keys.Normalize(newRaw)
	if oldKey == "" || newKey == "" {
		return nil, validationf("missing oldKey/key")
	}
	if oldKey == s.manifestKey || newKey == s.manifestKey {
		return nil, validationf("%s cannot be renamed", s.manifestKey)
	}

	obj, err := s.store.Get(ctx, oldKey)
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()

	contentType := obj.Info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.store.Put(ctx, newKey, obj.Body, obj.Info.Size, storage.PutOptions{ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("copy to %q: %w", newKey, err)
	}
	if err := s.store.Delete(ctx, oldKey); err != nil {
		return nil, fmt.Errorf("delete %q after copy: %w", oldKey, err)
	}
	s.invalidate(oldKey)
	metrics.Renames.Inc()

	count, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &RenameResult{From: oldKey, To: newKey, Count: count}, nil
}

// DeleteResult reports a completed delete and the remaining manifest count.
type DeleteResult struct {
	Deleted   string
	Remaining int
}

// Delete removes an object. A metadata probe runs first so "already absent"
// surfaces as not-found instead of a silent no-op.
func (s *Service) Delete(ctx context.Context, raw string) (*DeleteResult, error) {
	key := keys.Normalize(raw)
	if key == "" {
		return nil, validationf("missing key")
	}
	if key == s.manifestKey {
		return nil, validationf("%s cannot be deleted", s.manifestKey)
	}

	if _, err := s.store.Head(ctx, key); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return nil, err
	}
	s.invalidate(key)
	metrics.Deletes.Inc()

	count, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Deleted: key, Remaining: count}, nil
}

// Refresh rebuilds and saves the manifest without mutating any object. It is
// the manual compensating action after a partial failure.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	count, err := s.refresh(ctx)
	if err == nil {
		metrics.Refreshes.Inc()
	}
	return count, err
}

func (s *Service) refresh(ctx context.Context) (int, error) {
	entries, err := s.builder.Rebuild(ctx)
	if err != nil {
		return 0, err
	}
	doc, err := s.catalog.Save(ctx, entries)
	if err != nil {
		return 0, err
	}
	return doc.Count, nil
}

func (s *Service) isImageKey(key string) bool {
	return key != s.manifestKey && s.allowed.Contains(keys.Ext(key))
}

// disambiguate inserts a short random suffix before the extension:
// "a/b.png" -> "a/b_3f9c1.png".
func disambiguate(key string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	if dot := strings.LastIndex(key, "."); dot > -1 {
		return key[:dot] + "_" + suffix + key[dot:]
	}
	return key + "_" + suffix
}
