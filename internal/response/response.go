// Package response provides shared JSON response helpers for HTTP handlers.
//
// All payloads use the flat {"ok": true, ...} shape the browser UI consumes;
// errors are {"ok": false, "error": "..."}. CORS headers are applied by
// router middleware and survive every path through this package.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the error response body.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

// OK writes a 200 response with the given payload. The payload carries its
// own "ok" field.
func OK(w http.ResponseWriter, payload interface{}) {
	JSON(w, http.StatusOK, payload)
}

// Error writes an error response with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{OK: false, Error: message})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound writes a 404 response naming the missing key.
func NotFound(w http.ResponseWriter, message, key string) {
	JSON(w, http.StatusNotFound, Envelope{OK: false, Error: message, Key: key})
}

// UpstreamError writes a 500 response surfacing the upstream message. This is
// an internal tool, so verbose errors beat opaque ones.
func UpstreamError(w http.ResponseWriter, err error) {
	Error(w, http.StatusInternalServerError, err.Error())
}
