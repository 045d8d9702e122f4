// Package resize defines the image transformation capability and its default
// implementation.
package resize

import "context"

// Options selects one output variant of a source image.
type Options struct {
	Width   int
	Height  int
	Fit     string // cover | contain | fill | scale-down
	Quality int    // 1..100, meaningful for lossy formats
	Format  string // webp | png | jpeg | jpg | gif | bmp
}

// Resizer transforms source image bytes into a resized, re-encoded variant.
type Resizer interface {
	Resize(ctx context.Context, src []byte, opts Options) ([]byte, error)
}
