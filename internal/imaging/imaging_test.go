package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func createGray(w, h int, v uint8) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, w, h))
	for i := range gray.Pix {
		gray.Pix[i] = v
	}
	return gray
}

func TestGrayscale(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			rgba.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	gray := Grayscale(rgba)
	if got := gray.GrayAt(2, 2).Y; got < 250 {
		t.Errorf("white pixel converted to %d; want near 255", got)
	}

	// Already-gray images pass through unchanged.
	src := createGray(3, 3, 42)
	if Grayscale(src) != src {
		t.Error("Grayscale copied an image that was already gray")
	}
}

func TestCrop(t *testing.T) {
	tests := []struct {
		name         string
		region       image.Rectangle
		wantW, wantH int
	}{
		{"interior region", image.Rect(2, 2, 6, 8), 4, 6},
		{"overhanging region clamped", image.Rect(8, 8, 20, 20), 2, 2},
		{"fully outside", image.Rect(50, 50, 60, 60), 0, 0},
	}

	src := createGray(10, 10, 128)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Crop(src, tc.region)
			if got.Bounds().Dx() != tc.wantW || got.Bounds().Dy() != tc.wantH {
				t.Errorf("Crop(%v) = %dx%d; want %dx%d",
					tc.region, got.Bounds().Dx(), got.Bounds().Dy(), tc.wantW, tc.wantH)
			}
		})
	}
}

func TestShrink(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxSize      int
		wantW, wantH int
	}{
		{"already small", 100, 80, 512, 100, 80},
		{"wide image", 1024, 512, 512, 512, 256},
		{"tall image", 200, 800, 400, 100, 400},
		{"square at limit", 512, 512, 512, 512, 512},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Shrink(createGray(tc.w, tc.h, 0), tc.maxSize)
			if got.Bounds().Dx() != tc.wantW || got.Bounds().Dy() != tc.wantH {
				t.Errorf("Shrink(%dx%d, %d) = %dx%d; want %dx%d",
					tc.w, tc.h, tc.maxSize, got.Bounds().Dx(), got.Bounds().Dy(), tc.wantW, tc.wantH)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.jpg")
	src := createGray(32, 24, 200)

	if err := EncodeJPEGFile(path, src, 85); err != nil {
		t.Fatalf("EncodeJPEGFile failed: %v", err)
	}

	got, err := DecodeGrayFile(path)
	if err != nil {
		t.Fatalf("DecodeGrayFile failed: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Errorf("decoded bounds = %v; want %v", got.Bounds(), src.Bounds())
	}
}

func TestDecodeGrayFileErrors(t *testing.T) {
	if _, err := DecodeGrayFile(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Error("expected error for missing file")
	}
}
