package icon

import (
	"net/http"
	"strings"

	"github.com/iconhub/service/internal/response"
)

// Handler holds HTTP handlers for the icon mutation endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new icon Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadResponse struct {
	OK         bool   `json:"ok"`
	KeyUsed    string `json:"keyUsed"`
	URL        string `json:"url"`
	TotalIcons int    `json:"totalIcons"`
}

type renamePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type renameResponse struct {
	OK      bool       `json:"ok"`
	Renamed renamePair `json:"renamed"`
	Count   int        `json:"count"`
}

type refreshResponse struct {
	OK        bool `json:"ok"`
	Refreshed bool `json:"refreshed"`
	Count     int  `json:"count"`
}

type deleteResponse struct {
	OK        bool   `json:"ok"`
	Deleted   string `json:"deleted"`
	Remaining int    `json:"remaining"`
}

// Mutate godoc
//
//	@Summary		Upload an icon or run a form action
//	@Description	Multipart requests upload the `file` field (optional `key`, `overwrite`). URL-encoded requests dispatch on `action`: `rename` (fields `oldKey`, `key`) or `refresh-icons`.
//	@Tags			icons
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	false	"image payload (multipart upload)"
//	@Param			key		formData	string	false	"target key; defaults to the uploaded filename"
//	@Param			overwrite	formData	string	false	"replace an existing object (default true)"
//	@Success		200	{object}	icon.uploadResponse
//	@Failure		400	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/api/icons [post]
func (h *Handler) Mutate(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "multipart/form-data") {
		h.upload(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		response.BadRequest(w, "malformed form body")
		return
	}
	switch r.PostFormValue("action") {
	case "rename":
		h.rename(w, r)
	case "refresh-icons":
		h.refresh(w, r)
	default:
		response.BadRequest(w, "unknown POST action")
	}
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "malformed multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "missing file")
		return
	}
	defer file.Close()

	// overwrite defaults to true; the UI sends overwrite=false to request a
	// disambiguated key instead of replacement.
	overwrite := r.FormValue("overwrite") != "false"

	res, err := h.svc.Upload(r.Context(), UploadInput{
		Key:         r.FormValue("key"),
		Filename:    header.Filename,
		Overwrite:   overwrite,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
		Size:        header.Size,
	})
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	response.OK(w, uploadResponse{OK: true, KeyUsed: res.KeyUsed, URL: res.URL, TotalIcons: res.Total})
}

// rename handles action=rename form posts.
func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Rename(r.Context(), r.PostFormValue("oldKey"), r.PostFormValue("key"))
	if err != nil {
		h.writeError(w, err, r.PostFormValue("oldKey"))
		return
	}
	response.OK(w, renameResponse{OK: true, Renamed: renamePair{From: res.From, To: res.To}, Count: res.Count})
}

// refresh handles action=refresh-icons form posts.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Refresh(r.Context())
	if err != nil {
		h.writeError(w, err, "")
		return
	}
	response.OK(w, refreshResponse{OK: true, Refreshed: true, Count: count})
}

// Remove godoc
//
//	@Summary		Delete an icon
//	@Tags			icons
//	@Produce		json
//	@Param			key	query		string	true	"object key or public URL"
//	@Success		200	{object}	icon.deleteResponse
//	@Failure		400	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/api/icons [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	res, err := h.svc.Delete(r.Context(), key)
	if err != nil {
		h.writeError(w, err, key)
		return
	}
	response.OK(w, deleteResponse{OK: true, Deleted: res.Deleted, Remaining: res.Remaining})
}

func (h *Handler) writeError(w http.ResponseWriter, err error, key string) {
	switch {
	case IsValidation(err):
		response.BadRequest(w, err.Error())
	case IsNotFound(err):
		response.NotFound(w, "file not found", key)
	default:
		response.UpstreamError(w, err)
	}
}
