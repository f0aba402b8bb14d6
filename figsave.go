package figsave

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/hellenic-development/figsave/pkg/chartrender"
	"github.com/hellenic-development/figsave/pkg/export"
)

// Version of the figsave module.
const Version = "1.2.0"

// Options configures a save call.
type Options struct {
	Source      any             // figure to save; nil = current figure from Context
	Path        string          // output path without extension, default "figure"
	Formats     []string        // output format(s), default ["png"]
	DPI         int             // resolution in dots per inch, default 300
	Quality     int             // jpeg quality 1..100, 0 = encoder default
	Transparent bool            // transparent background where the format allows it
	BBoxMode    export.BBoxMode // default export.BBoxTight
	Padding     float64         // margin in inches around tight bounding boxes
	Background  color.Color     // nil = keep the figure's own background
	Extra       map[string]any  // recognized extra options ("width", "height")
	Context     *export.Context // ambient current-figure state, may be nil
	Logger      Logger          // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// SaveFigure saves a figure in one or more file formats and returns the
// written paths, one per requested format, in request order.
//
// The source may be a *chart.Chart, a *chart.BarChart, any go-chart
// renderable, or a chartrender.Legend. When Options.Source is nil the
// current figure is taken from Options.Context; with neither set the call
// fails with export.ErrNoActiveSource.
//
// When a later format fails, files written for earlier formats stay on
// disk and are returned alongside the error.
func SaveFigure(opts Options) ([]string, error) {
	// Apply defaults.
	if opts.Path == "" {
		opts.Path = "figure"
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []string{"png"}
	}
	if opts.DPI == 0 {
		opts.DPI = 300
	}

	opts.logInfo("Saving figure to %s.{%s} at %d dpi...", opts.Path, strings.Join(opts.Formats, ","), opts.DPI)

	dispatcher := &export.Dispatcher{
		Renderer: chartrender.New(),
		Context:  opts.Context,
	}

	paths, err := dispatcher.Export(export.Request{
		Source:      opts.Source,
		BasePath:    opts.Path,
		Formats:     opts.Formats,
		DPI:         opts.DPI,
		Quality:     opts.Quality,
		Transparent: opts.Transparent,
		BBox:        opts.BBoxMode,
		Padding:     opts.Padding,
		Background:  opts.Background,
		Extra:       opts.Extra,
	})
	if err != nil {
		opts.logError("Save failed after %d file(s): %v", len(paths), err)
		return paths, err
	}

	opts.logInfo("Wrote %d file(s)", len(paths))
	return paths, nil
}

// SaveLegend exports only the legend block of fig to a separate file, one
// per requested format. It behaves exactly like SaveFigure with the source
// fixed to the chart's legend; Options.Source is ignored and the default
// path is "legend".
func SaveLegend(fig *chart.Chart, opts Options) ([]string, error) {
	if fig == nil {
		return nil, fmt.Errorf("nil figure")
	}
	if opts.Path == "" {
		opts.Path = "legend"
	}
	opts.Source = chartrender.Legend{Chart: fig}
	return SaveFigure(opts)
}

// ParseFormats parses a comma-separated string of format identifiers into a
// slice. An empty string yields the default ["png"]; canonicalization of
// the identifiers happens inside the save call.
func ParseFormats(formatsStr string) []string {
	parts := strings.Split(formatsStr, ",")
	formats := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			formats = append(formats, trimmed)
		}
	}

	if len(formats) == 0 {
		return []string{"png"}
	}

	return formats
}

// ParseColor parses a hex color string ("#rrggbb", "rrggbb" or "#rrggbbaa")
// into a color value usable as Options.Background.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q: want rrggbb or rrggbbaa hex digits", s)
	}

	var vals [4]uint8
	vals[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		var v int
		if _, err := fmt.Sscanf(hex[i*2:i*2+2], "%02x", &v); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		vals[i] = uint8(v)
	}

	return color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}
