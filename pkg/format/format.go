// Package format is the registry of output formats figsave understands.
// Format identifiers are canonical lowercase strings ("png", "jpeg", ...);
// user input is folded to canonical form before any rendering starts.
package format

import (
	"fmt"
	"strings"
)

// Spec describes the capabilities of one output format. The dispatcher uses
// Lossy for quality validation; rendering backends use Raster and
// Transparency to decide how to encode.
type Spec struct {
	Name         string // canonical identifier, also the file extension
	Raster       bool   // pixel-based output (false for vector formats)
	Lossy        bool   // supports a lossy quality setting
	Transparency bool   // supports a transparent background
}

// aliases maps accepted spellings to canonical identifiers.
var aliases = map[string]string{
	"jpg": "jpeg",
	"tif": "tiff",
}

// registry holds every known format. eps is listed as known so that a
// backend without an eps encoder reports a render failure rather than an
// invalid parameter.
var registry = map[string]Spec{
	"png":  {Name: "png", Raster: true, Transparency: true},
	"jpeg": {Name: "jpeg", Raster: true, Lossy: true},
	"pdf":  {Name: "pdf"},
	"svg":  {Name: "svg", Transparency: true},
	"tiff": {Name: "tiff", Raster: true, Transparency: true},
	"bmp":  {Name: "bmp", Raster: true},
	"eps":  {Name: "eps"},
}

// Canonical folds a format identifier to its canonical form: lowercase,
// surrounding whitespace and leading dots removed, aliases resolved
// ("jpg" -> "jpeg", ".TIF" -> "tiff"). It returns an error for identifiers
// not in the registry.
func Canonical(name string) (string, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.TrimLeft(id, ".")

	if canonical, ok := aliases[id]; ok {
		id = canonical
	}

	if _, ok := registry[id]; !ok {
		return "", fmt.Errorf("unknown format %q (supported: %s)", name, supportedList())
	}

	return id, nil
}

// Normalize canonicalizes every entry of formats, preserving order and
// duplicates. An empty input or any unknown identifier is an error.
func Normalize(formats []string) ([]string, error) {
	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats given")
	}

	normalized := make([]string, 0, len(formats))
	for _, f := range formats {
		canonical, err := Canonical(f)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, canonical)
	}

	return normalized, nil
}

// Lookup returns the Spec for a canonical format identifier.
func Lookup(name string) (Spec, bool) {
	spec, ok := registry[name]
	return spec, ok
}

// AnyLossy reports whether any of the given canonical formats supports a
// lossy quality setting.
func AnyLossy(formats []string) bool {
	for _, f := range formats {
		if spec, ok := registry[f]; ok && spec.Lossy {
			return true
		}
	}
	return false
}

// Supported returns the canonical identifiers of all known formats in a
// stable order.
func Supported() []string {
	return []string{"png", "jpeg", "pdf", "svg", "tiff", "bmp", "eps"}
}

func supportedList() string {
	return strings.Join(Supported(), ", ")
}
