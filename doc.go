// Package figsave saves go-chart figures in one or multiple file formats
// with a single call: png, jpeg, pdf, svg, tiff and bmp, plus legend-only
// extraction for composing figures and their legends separately.
//
// The CLI lives in cmd/figsave; this root package exposes the same pipeline
// as a Go API so that callers can embed figure export in their own tools
// without shelling out.
//
// # Quick start
//
//	graph := &chart.Chart{
//	    Series: []chart.Series{
//	        chart.ContinuousSeries{
//	            Name:    "throughput",
//	            XValues: []float64{1, 2, 3, 4},
//	            YValues: []float64{12, 19, 17, 24},
//	        },
//	    },
//	}
//	paths, err := figsave.SaveFigure(figsave.Options{
//	    Source:  graph,
//	    Path:    "out/throughput",
//	    Formats: []string{"png", "pdf", "svg"},
//	    DPI:     300,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// paths == ["out/throughput.png", "out/throughput.pdf", "out/throughput.svg"]
//
// # Current figure
//
// Plotting environments traditionally keep an ambient "current figure".
// figsave models that state as an explicit [export.Context] passed in
// [Options.Context]: a nil [Options.Source] falls back to the context's
// current figure, and fails with [export.ErrNoActiveSource] when there is
// none. No hidden globals.
//
//	ctx := export.NewContext()
//	ctx.SetCurrent(graph)
//	figsave.SaveFigure(figsave.Options{Context: ctx, Path: "out/chart"})
//
// # Legend-only export
//
// [SaveLegend] renders just the legend block of a chart, one row per named
// series, to its own file. Combined with the default tight bounding box the
// output is trimmed to the legend itself.
//
//	figsave.SaveLegend(graph, figsave.Options{Path: "out/legend", Formats: []string{"svg"}})
//
// # Failure model
//
// Parameters are validated once, up front; nothing is written if any of
// them is bad. Once rendering has started, a failure on one format stops
// the remaining formats and files already written stay on disk. The
// returned paths say how far the call got, and the error (an
// [export.RenderError]) names the failing format and path.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package figsave
