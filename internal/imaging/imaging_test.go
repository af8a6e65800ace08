package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a solid-color test image and Base64-encodes it the way a
// browser form submission would.
func encodePNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 18, G: 84, B: 53, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecode_EmptyInputIsErrNoData(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := Decode(input)
		if !errors.Is(err, ErrNoData) {
			t.Fatalf("Decode(%q) error = %v, want ErrNoData", input, err)
		}
	}
}

func TestDecode_MalformedBase64ReturnsError(t *testing.T) {
	_, err := Decode("!!!not-base64!!!")
	if err == nil {
		t.Fatal("expected error for malformed base64")
	}
	if errors.Is(err, ErrNoData) {
		t.Fatal("malformed payload must not be classified as missing data")
	}
}

func TestDecode_ValidBase64ButNotAnImage(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("plain text payload"))
	if _, err := Decode(encoded); err == nil {
		t.Fatal("expected error for non-image payload")
	}
}

func TestDecode_PlainBase64PNG(t *testing.T) {
	img, err := Decode(encodePNG(t, 40, 30))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Format != "png" {
		t.Fatalf("expected format png, got %q", img.Format)
	}
	if img.Width != 40 || img.Height != 30 {
		t.Fatalf("expected 40x30, got %dx%d", img.Width, img.Height)
	}
	if img.Extension() != ".png" {
		t.Fatalf("expected .png extension, got %q", img.Extension())
	}
}

func TestDecode_DataURLPrefixIsStripped(t *testing.T) {
	encoded := "data:image/png;base64," + encodePNG(t, 10, 10)
	img, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if img.Width != 10 || img.Height != 10 {
		t.Fatalf("expected 10x10, got %dx%d", img.Width, img.Height)
	}
}

func TestDecodeBounded_DownscalesPreservingAspectRatio(t *testing.T) {
	img, err := DecodeBounded(encodePNG(t, 400, 200), 100, 100)
	if err != nil {
		t.Fatalf("DecodeBounded failed: %v", err)
	}
	if img.Width != 100 || img.Height != 50 {
		t.Fatalf("expected 100x50, got %dx%d", img.Width, img.Height)
	}
	if img.Format != "png" {
		t.Fatalf("expected png to stay png after resize, got %q", img.Format)
	}
}

func TestDecodeBounded_NeverUpscales(t *testing.T) {
	img, err := DecodeBounded(encodePNG(t, 20, 20), 1000, 1000)
	if err != nil {
		t.Fatalf("DecodeBounded failed: %v", err)
	}
	if img.Width != 20 || img.Height != 20 {
		t.Fatalf("expected 20x20 untouched, got %dx%d", img.Width, img.Height)
	}
}

func TestDecodeBounded_HeightBoundDominatesWhenTighter(t *testing.T) {
	img, err := DecodeBounded(encodePNG(t, 200, 400), 150, 100)
	if err != nil {
		t.Fatalf("DecodeBounded failed: %v", err)
	}
	if img.Width != 50 || img.Height != 100 {
		t.Fatalf("expected 50x100, got %dx%d", img.Width, img.Height)
	}
}

func TestDecode_RawBase64WithoutPadding(t *testing.T) {
	padded := encodePNG(t, 8, 8)
	unpadded := bytes.TrimRight([]byte(padded), "=")
	if _, err := Decode(string(unpadded)); err != nil {
		t.Fatalf("Decode of unpadded base64 failed: %v", err)
	}
}
