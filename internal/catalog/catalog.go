// Package catalog maintains the derived JSON manifest of all image objects.
//
// The manifest is never patched incrementally: after every mutation the
// entire key space is re-scanned and the manifest regenerated from ground
// truth. The store offers no change feed, so recomputing from a full listing
// is what keeps the manifest eventually consistent.
package catalog

// Entry is one manifest line: an object key and its derived public URL.
type Entry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Catalog is the persisted manifest document.
type Catalog struct {
	Title       string  `json:"title"`
	Description string  `json:"desc"`
	UpdatedAt   string  `json:"updatedAt"`
	Count       int     `json:"count"`
	Icons       []Entry `json:"icons"`
}
