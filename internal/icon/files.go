package icon

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iconhub/service/internal/keys"
	"github.com/iconhub/service/internal/storage"
)

// notFoundFallbackKey is served in place of missing objects when present,
// so broken icon references render a placeholder instead of a 404 page.
const notFoundFallbackKey = "not-found.png"

// FileHandler is the pass-through front door: it streams raw objects out of
// the store and serves the manifest at the root path. It performs no
// mutation and no catalog work.
type FileHandler struct {
	store       storage.Store
	manifestKey string
}

// NewFileHandler creates a FileHandler serving objects from store.
func NewFileHandler(store storage.Store, manifestKey string) *FileHandler {
	return &FileHandler{store: store, manifestKey: manifestKey}
}

// Serve godoc
//
//	@Summary	Fetch a raw stored object
//	@Tags		files
//	@Produce	octet-stream
//	@Param		path	path		string	true	"object key"
//	@Success	200		{file}		binary
//	@Failure	404		{string}	string	"not found"
//	@Router		/{path} [get]
func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := keys.Normalize(chi.URLParam(r, "*"))
	// The bare root serves the manifest, handy for subscribing by domain.
	if key == "" {
		key = h.manifestKey
	}
	if key == "favicon.ico" {
		http.NotFound(w, r)
		return
	}

	obj, err := h.store.Get(r.Context(), key)
	if errors.Is(err, storage.ErrNotFound) && key != h.manifestKey {
		obj, err = h.store.Get(r.Context(), notFoundFallbackKey)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer obj.Body.Close()

	contentType := obj.Info.ContentType
	if contentType == "" {
		contentType = detectContentType(obj.Info.Key)
	}
	w.Header().Set("Content-Type", contentType)
	if obj.Info.Key == h.manifestKey || key == h.manifestKey {
		// The manifest anchors UI consistency and must never be cached.
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=31536000")
	}
	_, _ = io.Copy(w, obj.Body)
}

// detectContentType maps a key's extension to a content type when the store
// recorded none at upload time.
func detectContentType(key string) string {
	switch keys.Ext(key) {
	case ".json":
		return "application/json; charset=utf-8"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".ico":
		return "image/x-icon"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
