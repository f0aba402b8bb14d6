package chartrender

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func whiteWithRect(w, h int, content image.Rectangle, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(img, content, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestTightCrop(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	tests := []struct {
		name    string
		img     image.Image
		pad     int
		wantDx  int
		wantDy  int
		centerX int
		centerY int
	}{
		{
			name:    "centered content no padding",
			img:     whiteWithRect(100, 100, image.Rect(40, 40, 60, 60), red),
			pad:     0,
			wantDx:  20,
			wantDy:  20,
			centerX: 10,
			centerY: 10,
		},
		{
			name:    "centered content with padding",
			img:     whiteWithRect(100, 100, image.Rect(40, 40, 60, 60), red),
			pad:     5,
			wantDx:  30,
			wantDy:  30,
			centerX: 15,
			centerY: 15,
		},
		{
			name:    "content touching an edge",
			img:     whiteWithRect(100, 100, image.Rect(0, 40, 10, 60), red),
			pad:     0,
			wantDx:  10,
			wantDy:  20,
			centerX: 5,
			centerY: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tightCrop(tt.img, tt.pad)
			b := got.Bounds()
			if b.Dx() != tt.wantDx || b.Dy() != tt.wantDy {
				t.Fatalf("tightCrop() bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantDx, tt.wantDy)
			}

			r, g, bl, _ := got.At(b.Min.X+tt.centerX, b.Min.Y+tt.centerY).RGBA()
			if r>>8 != 255 || g>>8 != 0 || bl>>8 != 0 {
				t.Errorf("center pixel = (%d,%d,%d), want red content", r>>8, g>>8, bl>>8)
			}
		})
	}
}

func TestTightCropUniformImage(t *testing.T) {
	img := whiteWithRect(50, 40, image.Rect(0, 0, 0, 0), color.White)

	got := tightCrop(img, 3)
	b := got.Bounds()
	if b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("tightCrop() on a uniform image = %dx%d, want 50x40 unchanged", b.Dx(), b.Dy())
	}
}

func TestTightCropPaddingFilledWithBackground(t *testing.T) {
	img := whiteWithRect(80, 80, image.Rect(30, 30, 50, 50), color.RGBA{B: 255, A: 255})

	got := tightCrop(img, 4)
	b := got.Bounds()

	r, g, bl, _ := got.At(b.Min.X, b.Min.Y).RGBA()
	if r>>8 != 255 || g>>8 != 255 || bl>>8 != 255 {
		t.Errorf("padding pixel = (%d,%d,%d), want white background", r>>8, g>>8, bl>>8)
	}
}
