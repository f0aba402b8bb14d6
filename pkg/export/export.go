// Package export implements the format fan-out at the heart of figsave:
// validate a request once, resolve the source figure, then render it to
// basePath+"."+format for every requested format, in order.
//
// The package knows nothing about any particular plotting library. Rendering
// is delegated to a Renderer, and the "current figure" global state that
// plotting environments traditionally carry is modeled as an explicit
// Context the caller injects, so the dispatcher stays testable without a
// real backend.
package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hellenic-development/figsave/pkg/format"
)

// BBoxMode selects how much of the rendered canvas ends up in the output.
type BBoxMode int

const (
	// BBoxTight crops the output to the drawn content plus Padding inches
	// of margin. Vector backends may not support cropping and fall back to
	// BBoxFixed.
	BBoxTight BBoxMode = iota

	// BBoxFixed keeps the canvas exactly as authored.
	BBoxFixed
)

func (m BBoxMode) String() string {
	switch m {
	case BBoxTight:
		return "tight"
	case BBoxFixed:
		return "fixed"
	default:
		return fmt.Sprintf("BBoxMode(%d)", int(m))
	}
}

// Recognized extra option names. Anything else in Request.Extra fails
// validation; options are never forwarded blindly.
const (
	OptionWidth  = "width"  // canvas width in pixels (int)
	OptionHeight = "height" // canvas height in pixels (int)
)

// Params carries the per-render options handed to the backend, one call per
// requested format.
type Params struct {
	DPI         int
	Quality     int // 1..100 for lossy formats, 0 = backend default
	Transparent bool
	BBox        BBoxMode
	Padding     float64     // margin in inches when BBox is BBoxTight
	Background  color.Color // nil = keep the figure's own background
	Extra       map[string]any
}

// Renderer is the external plotting primitive: it renders source to path,
// encoded as the given canonical format. Implementations own the file write
// and must not retain source after returning.
type Renderer interface {
	Render(source any, path, fmt string, p Params) error
}

// Context holds ambient plotting state, most notably the figure a request
// falls back to when it names no source. The dispatcher only ever reads it.
type Context struct {
	current any
}

// NewContext returns an empty ambient context.
func NewContext() *Context {
	return &Context{}
}

// SetCurrent records src as the current figure. A nil src clears it.
func (c *Context) SetCurrent(src any) {
	c.current = src
}

// Current returns the current figure, if any.
func (c *Context) Current() (any, bool) {
	return c.current, c.current != nil
}

// Request describes one export call. Source is an opaque handle owned by the
// caller (a figure or a legend); the dispatcher passes it through to the
// Renderer untouched and never retains it.
type Request struct {
	Source      any      // nil = use the Context's current figure
	BasePath    string   // output path without extension
	Formats     []string // ordered; duplicates are preserved
	DPI         int
	Quality     int // 0 = unset
	Transparent bool
	BBox        BBoxMode
	Padding     float64
	Background  color.Color
	Extra       map[string]any
}

// Dispatcher fans a request out over its formats using a single Renderer.
// It is stateless across calls; the zero value with a Renderer set is ready
// to use.
type Dispatcher struct {
	Renderer Renderer
	Context  *Context // optional ambient state, may be nil
}

// Export validates req, resolves its source, and renders one file per
// requested format, returning the written paths in request order.
//
// Validation happens once, up front: no file is written if any parameter is
// bad. Once rendering has started, a failure on one format halts the
// remaining ones; files already written for earlier formats are left on
// disk; the returned *RenderError names the failing format and path so
// callers can react.
func (d *Dispatcher) Export(req Request) ([]string, error) {
	if d.Renderer == nil {
		return nil, &InvalidParameterError{Param: "renderer", Reason: "no renderer configured"}
	}

	formats, err := format.Normalize(req.Formats)
	if err != nil {
		return nil, &InvalidParameterError{Param: "formats", Reason: err.Error()}
	}

	if err := validate(req, formats); err != nil {
		return nil, err
	}

	source := req.Source
	if source == nil {
		if d.Context != nil {
			source, _ = d.Context.Current()
		}
		if source == nil {
			return nil, ErrNoActiveSource
		}
	}

	// Both the figure and the legend path share this directory behavior:
	// missing parents of the base path are created, never treated as an
	// error.
	if dir := filepath.Dir(req.BasePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}

	params := Params{
		DPI:         req.DPI,
		Quality:     req.Quality,
		Transparent: req.Transparent,
		BBox:        req.BBox,
		Padding:     req.Padding,
		Background:  req.Background,
		Extra:       req.Extra,
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		outPath := req.BasePath + "." + f
		if err := d.Renderer.Render(source, outPath, f, params); err != nil {
			return paths, &RenderError{Format: f, Path: outPath, Err: err}
		}
		paths = append(paths, outPath)
	}

	return paths, nil
}

// validate checks every request parameter before any rendering begins.
// formats must already be canonical.
func validate(req Request, formats []string) error {
	if req.BasePath == "" {
		return &InvalidParameterError{Param: "basePath", Reason: "must not be empty"}
	}
	if req.DPI <= 0 {
		return &InvalidParameterError{
			Param:  "dpi",
			Reason: fmt.Sprintf("must be positive, got %d", req.DPI),
		}
	}
	if req.Padding < 0 {
		return &InvalidParameterError{
			Param:  "padding",
			Reason: fmt.Sprintf("must not be negative, got %g", req.Padding),
		}
	}

	// An out-of-range quality only matters when a lossy format is actually
	// requested; otherwise the value is ignored, like the underlying
	// primitives ignore quality for png or svg.
	if req.Quality != 0 && (req.Quality < 1 || req.Quality > 100) && format.AnyLossy(formats) {
		return &InvalidParameterError{
			Param:  "quality",
			Reason: fmt.Sprintf("must be in [1,100], got %d", req.Quality),
		}
	}

	for name := range req.Extra {
		switch name {
		case OptionWidth, OptionHeight:
		default:
			return &InvalidParameterError{
				Param:  "extra",
				Reason: fmt.Sprintf("unrecognized option %q", name),
			}
		}
	}

	return nil
}
