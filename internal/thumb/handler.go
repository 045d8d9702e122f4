package thumb

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/iconhub/service/internal/resize"
	"github.com/iconhub/service/internal/response"
	"github.com/iconhub/service/internal/storage"
)

const (
	defaultWidth   = 200
	defaultFit     = "cover"
	defaultQuality = 80
	defaultFormat  = "webp"
)

// Handler holds the HTTP handler for thumbnail retrieval.
type Handler struct {
	svc *Service
}

// NewHandler creates a thumbnail Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Render godoc
//
//	@Summary		Fetch a resized variant of a stored image
//	@Tags			thumbnails
//	@Produce		png
//	@Param			file	query		string	true	"source object key"
//	@Param			w		query		int		false	"width (default 200)"
//	@Param			h		query		int		false	"height (default = width)"
//	@Param			fit		query		string	false	"cover | contain | fill | scale-down"
//	@Param			quality	query		int		false	"10-100, default 80"
//	@Param			format	query		string	false	"webp | png | jpeg | gif | bmp (default webp)"
//	@Success		200		{file}		binary
//	@Failure		400		{object}	response.Envelope
//	@Failure		404		{object}	response.Envelope
//	@Failure		500		{object}	response.Envelope
//	@Router			/thumb [get]
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	file := q.Get("file")
	if file == "" {
		response.BadRequest(w, "missing file param")
		return
	}

	req := Request{
		Identity:  r.URL.Path + "?" + r.URL.RawQuery,
		SourceKey: file,
		Options:   optionsFromQuery(q),
	}

	rendered, err := h.svc.GetOrRender(r.Context(), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, "file not found", file)
			return
		}
		response.UpstreamError(w, err)
		return
	}

	w.Header().Set("Content-Type", rendered.ContentType)
	w.Header().Set("Cache-Control", rendered.CacheControl)
	w.Header().Set("Cache-Tag", rendered.CacheTag)
	if rendered.Hit {
		w.Header().Set("X-Thumb-Cache", "HIT")
	} else {
		w.Header().Set("X-Thumb-Cache", "MISS")
	}
	_, _ = w.Write(rendered.Body)
}

func optionsFromQuery(q map[string][]string) resize.Options {
	get := func(names ...string) string {
		for _, n := range names {
			if v, ok := q[n]; ok && len(v) > 0 && v[0] != "" {
				return v[0]
			}
		}
		return ""
	}

	width := atoiDefault(get("w", "width"), defaultWidth)
	height := atoiDefault(get("h", "height"), width)

	fit := get("fit")
	if fit == "" {
		fit = defaultFit
	}

	quality := atoiDefault(get("quality"), defaultQuality)
	if quality < 10 {
		quality = 10
	}
	if quality > 100 {
		quality = 100
	}

	format := get("format", "f")
	switch format {
	case "", "auto":
		format = defaultFormat
	case "jpg":
		format = "jpeg"
	}

	return resize.Options{
		Width:   width,
		Height:  height,
		Fit:     fit,
		Quality: quality,
		Format:  format,
	}
}

func atoiDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
