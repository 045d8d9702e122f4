// Package keys canonicalizes user-supplied keys and URLs into object-store keys.
package keys

import (
	"net/url"
	"sort"
	"strings"
)

// Normalize turns a raw key or full URL into the canonical store key.
// Accepts either a bare key ("icons/app.png"), an absolute URL
// ("https://cdn.example.com/icons/app.png"), or a percent-encoded form of
// either. The result has no leading slash, no backslashes, and no duplicate
// slashes. Normalize is idempotent for already-canonical keys.
func Normalize(raw string) string {
	k := strings.TrimSpace(raw)
	if k == "" {
		return ""
	}

	// Absolute URLs contribute only their path.
	if u, err := url.Parse(k); err == nil && u.IsAbs() && u.Path != "" {
		k = u.Path
	}

	k = strings.TrimLeft(k, "/")

	// Decode once; an undecodable key is used as-is.
	if dec, err := url.PathUnescape(k); err == nil {
		k = dec
	}

	k = strings.ReplaceAll(k, "\\", "/")
	for strings.Contains(k, "//") {
		k = strings.ReplaceAll(k, "//", "/")
	}
	return strings.TrimLeft(k, "/")
}

// Ext returns the lowercased extension of key including the dot
// ("Icon.PNG" -> ".png"), or "" when the key has none.
func Ext(key string) string {
	i := strings.LastIndex(key, ".")
	if i < 0 || i == len(key)-1 {
		return ""
	}
	// A dot inside a directory component is not an extension.
	if strings.Contains(key[i:], "/") {
		return ""
	}
	return strings.ToLower(key[i:])
}

// ExtSet is a set of allowed extensions, each lowercased with a leading dot.
type ExtSet map[string]struct{}

// NewExtSet builds an ExtSet from extension names with or without dots.
func NewExtSet(exts ...string) ExtSet {
	s := make(ExtSet, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether ext (with leading dot) is in the set.
func (s ExtSet) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// List returns the extensions in sorted order, suitable for error messages.
func (s ExtSet) List() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
