package icon

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconhub/service/internal/storage"
)

func newHandler(mem *storage.MemoryStore) *Handler {
	return NewHandler(newService(mem))
}

func multipartUpload(t *testing.T, fields map[string]string, filename, contentType, data string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte(data))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/icons", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func formPost(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/icons", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestUploadEndpoint(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, multipartUpload(t, nil, "icon.png", "image/png", strings.Repeat("x", 50<<10)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "icon.png", body["keyUsed"])
	assert.Equal(t, "https://images.example.com/icon.png", body["url"])
	assert.Equal(t, float64(1), body["totalIcons"])
}

func TestUploadEndpointMissingFile(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, multipartUpload(t, map[string]string{"key": "icon.png"}, "", "", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadEndpointBadExtension(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, multipartUpload(t, nil, "script.sh", "text/x-sh", "#!/bin/sh"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestRenameEndpoint(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, multipartUpload(t, map[string]string{"key": "old/a.png"}, "a.png", "image/png", "DATA"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Mutate(rec, formPost(url.Values{"action": {"rename"}, "oldKey": {"old/a.png"}, "key": {"new/a.png"}}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	renamed := body["renamed"].(map[string]interface{})
	assert.Equal(t, "old/a.png", renamed["from"])
	assert.Equal(t, "new/a.png", renamed["to"])
	assert.Equal(t, float64(1), body["count"])
}

func TestRenameEndpointMissingFields(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, formPost(url.Values{"action": {"rename"}, "key": {"new.png"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenameEndpointSourceAbsent(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, formPost(url.Values{"action": {"rename"}, "oldKey": {"absent.png"}, "key": {"new.png"}}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshEndpoint(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)
	require.NoError(t, mem.Put(context.Background(), "a.png", bytes.NewReader([]byte("x")), 1, storage.PutOptions{}))

	rec := httptest.NewRecorder()
	h.Mutate(rec, formPost(url.Values{"action": {"refresh-icons"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["refreshed"])
	assert.Equal(t, float64(1), body["count"])
}

func TestUnknownAction(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, formPost(url.Values{"action": {"explode"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Mutate(rec, multipartUpload(t, nil, "a.png", "image/png", "DATA"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Remove(rec, httptest.NewRequest(http.MethodDelete, "/api/icons?key=a.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "a.png", body["deleted"])
	assert.Equal(t, float64(0), body["remaining"])
}

func TestDeleteEndpointManifestKey(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Remove(rec, httptest.NewRequest(http.MethodDelete, "/api/icons?key=icons.json", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEndpointMissingKey(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Remove(rec, httptest.NewRequest(http.MethodDelete, "/api/icons", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEndpointAbsent(t *testing.T) {
	mem := storage.NewMemoryStore("https://images.example.com")
	h := newHandler(mem)

	rec := httptest.NewRecorder()
	h.Remove(rec, httptest.NewRequest(http.MethodDelete, "/api/icons?key=absent.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
