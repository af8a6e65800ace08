// Package imaging decodes Base64-encoded submission images and scales them
// down to renderable sizes. Failures stay inside this package boundary:
// callers receive an error and substitute a placeholder, never a panic.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
)

// ErrNoData marks an absent payload (empty or missing string). Callers show
// an "unsigned" / "no photo" placeholder for this, distinct from the
// placeholder used for a corrupt payload.
var ErrNoData = errors.New("no image data")

const jpegQuality = 85

// Image is a decoded, possibly downscaled picture ready for embedding.
type Image struct {
	Data   []byte
	Format string // "png", "jpeg", ...
	Width  int
	Height int
}

// Extension returns the file extension (with dot) for the image format.
func (i *Image) Extension() string {
	if i.Format == "png" {
		return ".png"
	}
	return ".jpeg"
}

// Decode decodes a bare Base64 string or a data URL ("<meta>,<data>",
// split on the first comma) without resizing.
func Decode(encoded string) (*Image, error) {
	return DecodeBounded(encoded, 0, 0)
}

// DecodeBounded decodes like Decode and, when positive bounds are given,
// scales the image down so neither dimension exceeds its bound. Aspect ratio
// is preserved and images are never upscaled.
func DecodeBounded(encoded string, maxWidth, maxHeight int) (*Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrNoData
	}

	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	transformed := false
	if orientation := readOrientation(raw); orientation != 1 {
		img = correctOrientation(img, orientation)
		transformed = true
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if scale := fitScale(width, height, maxWidth, maxHeight); scale < 1 {
		newWidth := int(float64(width) * scale)
		newHeight := int(float64(height) * scale)
		if newWidth < 1 {
			newWidth = 1
		}
		if newHeight < 1 {
			newHeight = 1
		}
		scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
		img = scaled
		width, height = newWidth, newHeight
		transformed = true
	}

	if !transformed {
		return &Image{Data: raw, Format: format, Width: width, Height: height}, nil
	}

	data, format, err := encode(img, format)
	if err != nil {
		return nil, err
	}
	return &Image{Data: data, Format: format, Width: width, Height: height}, nil
}

// fitScale returns the factor that fits w×h inside the given bounds, or 1
// when no downscaling is needed. Zero bounds are unconstrained.
func fitScale(w, h, maxW, maxH int) float64 {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		if s := float64(maxH) / float64(h); s < scale {
			scale = s
		}
	}
	return scale
}

func encode(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "jpeg", nil
}

// readOrientation extracts the EXIF orientation tag, defaulting to 1
// (upright) when the data carries no usable EXIF block.
func readOrientation(raw []byte) int {
	x, err := exif.Decode(bytes.NewReader(raw))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return v
}

// correctOrientation rewrites the pixels upright for the eight EXIF
// orientation values.
func correctOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return transformPixels(img, true, func(w, h, x, y int) (int, int) { return w - 1 - x, y })
	case 3:
		return transformPixels(img, true, func(w, h, x, y int) (int, int) { return w - 1 - x, h - 1 - y })
	case 4:
		return transformPixels(img, true, func(w, h, x, y int) (int, int) { return x, h - 1 - y })
	case 5:
		return transformPixels(img, false, func(w, h, x, y int) (int, int) { return y, x })
	case 6:
		return transformPixels(img, false, func(w, h, x, y int) (int, int) { return h - 1 - y, x })
	case 7:
		return transformPixels(img, false, func(w, h, x, y int) (int, int) { return h - 1 - y, w - 1 - x })
	case 8:
		return transformPixels(img, false, func(w, h, x, y int) (int, int) { return y, w - 1 - x })
	default:
		return img
	}
}

// transformPixels maps each source pixel through move. When sameAxes is
// false the output image has swapped width and height.
func transformPixels(img image.Image, sameAxes bool, move func(w, h, x, y int) (int, int)) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var out *image.RGBA
	if sameAxes {
		out = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		out = image.NewRGBA(image.Rect(0, 0, h, w))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx, ny := move(w, h, x, y)
			out.Set(nx, ny, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return out
}
