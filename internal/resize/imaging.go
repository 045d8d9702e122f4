package resize

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"

	// register webp decoding for stored .webp sources
	_ "golang.org/x/image/webp"
)

// ImagingResizer is the default Resizer built on disintegration/imaging,
// with nativewebp providing the WebP encoder imaging lacks.
type ImagingResizer struct{}

var _ Resizer = (*ImagingResizer)(nil)

// NewImagingResizer returns the default resizer.
func NewImagingResizer() *ImagingResizer {
	return &ImagingResizer{}
}

// Resize decodes src, applies the fit strategy, and re-encodes into the
// requested format. Vector and icon container formats (svg, ico) are not
// decodable and fail as upstream errors.
func (r *ImagingResizer) Resize(ctx context.Context, src []byte, opts Options) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}

	out := applyFit(img, opts)

	var buf bytes.Buffer
	switch opts.Format {
	case "webp":
		if err := nativewebp.Encode(&buf, out, nil); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
	case "png":
		err = imaging.Encode(&buf, out, imaging.PNG)
	case "jpeg", "jpg":
		err = imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
	case "gif":
		err = imaging.Encode(&buf, out, imaging.GIF)
	case "bmp":
		err = imaging.Encode(&buf, out, imaging.BMP)
	default:
		return nil, fmt.Errorf("unsupported output format %q", opts.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	return buf.Bytes(), nil
}

func applyFit(img image.Image, opts Options) image.Image {
	w, h := opts.Width, opts.Height
	switch opts.Fit {
	case "contain":
		return imaging.Fit(img, w, h, imaging.Lanczos)
	case "fill":
		return imaging.Resize(img, w, h, imaging.Lanczos)
	case "scale-down":
		b := img.Bounds()
		if b.Dx() <= w && b.Dy() <= h {
			return img
		}
		return imaging.Fit(img, w, h, imaging.Lanczos)
	default: // cover
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	}
}
