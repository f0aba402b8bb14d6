package chartrender

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// writePDF embeds the rendered raster into a single-page PDF. The page is
// sized so that the image maps back to its physical dimensions at the
// requested dpi (72 PDF points per inch).
func writePDF(path string, img image.Image, dpi int) error {
	b := img.Bounds()
	widthPt := float64(b.Dx()) / float64(dpi) * 72
	heightPt := float64(b.Dy()) / float64(dpi) * 72

	paper := &pdf.Rectangle{URx: widthPt, URy: heightPt}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	dict := pdfimage.FromImage(img, pdfcolor.DeviceRGBSpace, 8)

	page.PushGraphicsState()
	page.Transform(matrix.Scale(widthPt, heightPt))
	page.DrawXObject(dict)
	page.PopGraphicsState()

	if err := page.Close(); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
