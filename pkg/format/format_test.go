package format

import (
	"reflect"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lowercase png", input: "png", want: "png"},
		{name: "uppercase folded", input: "PNG", want: "png"},
		{name: "leading dot stripped", input: ".png", want: "png"},
		{name: "surrounding whitespace", input: "  pdf ", want: "pdf"},
		{name: "jpg alias", input: "jpg", want: "jpeg"},
		{name: "uppercase alias with dot", input: ".JPG", want: "jpeg"},
		{name: "tif alias", input: "tif", want: "tiff"},
		{name: "jpeg passes through", input: "jpeg", want: "jpeg"},
		{name: "eps is known", input: "eps", want: "eps"},
		{name: "unknown format", input: "webp", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "only a dot", input: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonical(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Canonical(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Canonical(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr bool
	}{
		{
			name:  "order preserved",
			input: []string{"svg", "png", "pdf"},
			want:  []string{"svg", "png", "pdf"},
		},
		{
			name:  "duplicates preserved",
			input: []string{"png", "png"},
			want:  []string{"png", "png"},
		},
		{
			name:  "aliases folded in place",
			input: []string{"JPG", ".tif"},
			want:  []string{"jpeg", "tiff"},
		},
		{
			name:    "empty input",
			input:   nil,
			wantErr: true,
		},
		{
			name:    "one unknown format fails the whole list",
			input:   []string{"png", "webp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%v) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnyLossy(t *testing.T) {
	if AnyLossy([]string{"png", "svg", "pdf"}) {
		t.Error("AnyLossy() = true for lossless formats")
	}
	if !AnyLossy([]string{"png", "jpeg"}) {
		t.Error("AnyLossy() = false for a list containing jpeg")
	}
}

func TestLookup(t *testing.T) {
	spec, ok := Lookup("jpeg")
	if !ok {
		t.Fatal("Lookup(jpeg) not found")
	}
	if !spec.Lossy || !spec.Raster {
		t.Errorf("Lookup(jpeg) = %+v, want lossy raster", spec)
	}

	spec, ok = Lookup("svg")
	if !ok {
		t.Fatal("Lookup(svg) not found")
	}
	if spec.Raster || !spec.Transparency {
		t.Errorf("Lookup(svg) = %+v, want non-raster with transparency", spec)
	}

	if _, ok := Lookup("jpg"); ok {
		t.Error("Lookup(jpg) found; aliases must be resolved via Canonical first")
	}
}

func TestSupportedMatchesRegistry(t *testing.T) {
	for _, name := range Supported() {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Supported() lists %q but Lookup does not know it", name)
		}
	}
	if len(Supported()) != len(registry) {
		t.Errorf("Supported() has %d entries, registry has %d", len(Supported()), len(registry))
	}
}
