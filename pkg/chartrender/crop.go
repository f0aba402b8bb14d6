package chartrender

import (
	"image"
	"image/draw"
)

// tightCrop trims img to the bounding box of its content and adds pad
// pixels of background margin on every side. The top-left corner pixel is
// taken as the background reference; if the whole image matches it, or
// nothing does, img is returned unchanged.
func tightCrop(img image.Image, pad int) image.Image {
	b := img.Bounds()
	bgR, bgG, bgB, bgA := img.At(b.Min.X, b.Min.Y).RGBA()

	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r == bgR && g == bgG && bl == bgB && a == bgA {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return img
	}

	content := image.Rect(minX, minY, maxX+1, maxY+1)
	out := image.NewRGBA(image.Rect(0, 0, content.Dx()+2*pad, content.Dy()+2*pad))

	// Margin carries the background color, including a fully transparent
	// one.
	draw.Draw(out, out.Bounds(), image.NewUniform(img.At(b.Min.X, b.Min.Y)), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(pad, pad, pad+content.Dx(), pad+content.Dy()), img, content.Min, draw.Src)

	return out
}
