package chartrender

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/hellenic-development/figsave/pkg/export"
	"github.com/hellenic-development/figsave/pkg/format"
)

// Legend marks the legend block of a chart for standalone export: passing it
// as the source renders only the legend entries of Chart, not the plot.
type Legend struct {
	Chart *chart.Chart
}

// Canvas size of the derived legend figure. Tight bounding boxes then crop
// the output down to the legend block itself.
const (
	legendCanvasWidth  = 400
	legendCanvasHeight = 300
)

// buildLegendChart derives a figure that carries nothing but the legend of
// l.Chart: axes hidden, a single invisible series to establish ranges, and a
// standalone legend element listing the source chart's named series.
func buildLegendChart(l Legend, spec format.Spec, p export.Params) (renderable, error) {
	if l.Chart == nil {
		return nil, fmt.Errorf("legend has no chart")
	}

	lc := chart.Chart{
		Width:  legendCanvasWidth,
		Height: legendCanvasHeight,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis:  chart.YAxis{Style: chart.Hidden()},
		Series: []chart.Series{
			// go-chart refuses to render a chart without a visible series,
			// and needs one to establish axis ranges. A transparent
			// stroke keeps it off the canvas; the empty name keeps it out
			// of the legend.
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeWidth: 1,
					StrokeColor: drawing.ColorTransparent,
				},
			},
		},
		Elements: []chart.Renderable{standaloneLegend(l.Chart)},
	}

	applyChartParams(&lc, spec, p)
	return &lc, nil
}

// standaloneLegend draws the legend of src in the top-left of the canvas:
// one row per named, non-hidden series, swatch line plus label. Layout and
// styling follow go-chart's own chart.Legend element.
func standaloneLegend(src *chart.Chart) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		style := defaults.InheritFrom(chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    8.0,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
			Padding:     chart.Box{Top: 5, Left: 7, Right: 7, Bottom: 5},
		})

		var labels []string
		var swatches []drawing.Color
		for index, s := range src.Series {
			st := s.GetStyle()
			if st.Hidden || s.GetName() == "" {
				continue
			}
			c := st.StrokeColor
			if c.IsZero() {
				c = st.FillColor
			}
			if c.IsZero() {
				c = chart.GetDefaultColor(index)
			}
			labels = append(labels, s.GetName())
			swatches = append(swatches, c)
		}
		if len(labels) == 0 {
			return
		}

		const (
			swatchWidth = 25
			swatchGap   = 5
			rowSpacing  = 5
		)

		style.GetTextOptions().WriteToRenderer(r)

		var textWidth, textHeight int
		for _, label := range labels {
			tb := r.MeasureText(label)
			if tb.Width() > textWidth {
				textWidth = tb.Width()
			}
			if tb.Height() > textHeight {
				textHeight = tb.Height()
			}
		}

		contentWidth := swatchWidth + swatchGap + textWidth
		contentHeight := len(labels)*textHeight + (len(labels)-1)*rowSpacing

		box := chart.Box{
			Top:    cb.Top,
			Left:   cb.Left,
			Right:  cb.Left + contentWidth + style.Padding.Left + style.Padding.Right,
			Bottom: cb.Top + contentHeight + style.Padding.Top + style.Padding.Bottom,
		}
		chart.Draw.Box(r, box, style)

		x := box.Left + style.Padding.Left
		y := box.Top + style.Padding.Top
		for i, label := range labels {
			rowBottom := y + textHeight

			r.SetStrokeColor(swatches[i])
			r.SetStrokeWidth(3.0)
			lineY := rowBottom - textHeight/2
			r.MoveTo(x, lineY)
			r.LineTo(x+swatchWidth, lineY)
			r.Stroke()

			chart.Draw.Text(r, label, x+swatchWidth+swatchGap, rowBottom, style)

			y = rowBottom + rowSpacing
		}
	}
}
