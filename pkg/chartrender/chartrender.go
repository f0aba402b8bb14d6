// Package chartrender renders go-chart figures to files. It is the concrete
// backend behind the export dispatcher: png and svg come straight from
// go-chart's own renderers, jpeg/tiff/bmp are re-encoded from an
// intermediate png render, and pdf embeds the raster into a single-page
// document via seehuhn.de/go/pdf.
package chartrender

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/hellenic-development/figsave/pkg/export"
	"github.com/hellenic-development/figsave/pkg/format"
)

// renderable is the slice of the go-chart API the backend needs: anything
// that can draw itself through a renderer provider. chart.Chart,
// chart.BarChart and chart.PieChart all satisfy it.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Renderer implements export.Renderer on top of go-chart. The zero value is
// ready to use.
type Renderer struct{}

// New returns a go-chart backed Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes source to path encoded as the canonical format name.
//
// Accepted sources are *chart.Chart, *chart.BarChart, Legend, or any value
// implementing go-chart's Render method. Options that require adjusting the
// figure (dpi, background, transparency, canvas size) are applied to a
// shallow copy for the known chart types; the caller's figure is never
// mutated. Generic renderables are drawn as authored.
func (r *Renderer) Render(source any, path, name string, p export.Params) error {
	spec, ok := format.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown format %q", name)
	}

	src, err := prepare(source, spec, p)
	if err != nil {
		return err
	}

	switch {
	case name == "svg":
		return renderVector(src, path)
	case spec.Raster || name == "pdf":
		return renderRaster(src, path, name, spec, p)
	default:
		return fmt.Errorf("format %q is not supported by the go-chart backend", name)
	}
}

// prepare resolves the source into a go-chart renderable with the render
// options applied.
func prepare(source any, spec format.Spec, p export.Params) (renderable, error) {
	switch s := source.(type) {
	case *chart.Chart:
		if s == nil {
			return nil, fmt.Errorf("nil chart")
		}
		c := *s // shallow copy, options never touch the caller's figure
		applyChartParams(&c, spec, p)
		return &c, nil
	case *chart.BarChart:
		if s == nil {
			return nil, fmt.Errorf("nil bar chart")
		}
		c := *s
		applyBarChartParams(&c, spec, p)
		return &c, nil
	case Legend:
		return buildLegendChart(s, spec, p)
	case renderable:
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported source type %T", source)
	}
}

func applyChartParams(c *chart.Chart, spec format.Spec, p export.Params) {
	c.DPI = float64(p.DPI)
	if w, ok := intOption(p.Extra, export.OptionWidth); ok {
		c.Width = w
	}
	if h, ok := intOption(p.Extra, export.OptionHeight); ok {
		c.Height = h
	}
	if p.Background != nil {
		fill := toDrawingColor(p.Background)
		c.Background.FillColor = fill
		c.Canvas.FillColor = fill
	}
	if p.Transparent && spec.Transparency {
		c.Background.FillColor = drawing.ColorTransparent
		c.Canvas.FillColor = drawing.ColorTransparent
	}
}

func applyBarChartParams(c *chart.BarChart, spec format.Spec, p export.Params) {
	c.DPI = float64(p.DPI)
	if w, ok := intOption(p.Extra, export.OptionWidth); ok {
		c.Width = w
	}
	if h, ok := intOption(p.Extra, export.OptionHeight); ok {
		c.Height = h
	}
	if p.Background != nil {
		fill := toDrawingColor(p.Background)
		c.Background.FillColor = fill
		c.Canvas.FillColor = fill
	}
	if p.Transparent && spec.Transparency {
		c.Background.FillColor = drawing.ColorTransparent
		c.Canvas.FillColor = drawing.ColorTransparent
	}
}

// renderVector writes the figure through go-chart's svg renderer. Tight
// bounding boxes are a raster concept; svg output always keeps the canvas
// as authored.
func renderVector(src renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	if err := src.Render(chart.SVG, f); err != nil {
		f.Close()
		return fmt.Errorf("render svg: %w", err)
	}

	return f.Close()
}

// renderRaster renders the figure to an in-memory png, optionally crops it
// to its content, and encodes the result in the requested format.
func renderRaster(src renderable, path, name string, spec format.Spec, p export.Params) error {
	var buf bytes.Buffer
	if err := src.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render png: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode intermediate png: %w", err)
	}

	if p.BBox == export.BBoxTight {
		pad := int(p.Padding*float64(p.DPI) + 0.5)
		img = tightCrop(img, pad)
	}

	if name == "pdf" {
		return writePDF(path, flatten(img, p.Background), p.DPI)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	switch name {
	case "png":
		err = png.Encode(f, img)
	case "jpeg":
		quality := p.Quality
		if quality < 1 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		err = jpeg.Encode(f, flatten(img, p.Background), &jpeg.Options{Quality: quality})
	case "tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case "bmp":
		err = bmp.Encode(f, flatten(img, p.Background))
	default:
		err = fmt.Errorf("format %q is not supported by the go-chart backend", name)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}

	return f.Close()
}

// flatten composites img onto an opaque background for encoders without an
// alpha channel. A nil bg means white.
func flatten(img image.Image, bg color.Color) *image.RGBA {
	if bg == nil {
		bg = color.White
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	return out
}

func toDrawingColor(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func intOption(extra map[string]any, name string) (int, bool) {
	v, ok := extra[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
