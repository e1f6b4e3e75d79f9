package render

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
)

func TestDraw_Dimensions(t *testing.T) {
	sizes := []int{1, 20, 48, 167, 192, 1024}

	for _, name := range Names() {
		for _, size := range sizes {
			for _, scheme := range Schemes {
				img, err := Render(name, size, scheme)
				if err != nil {
					t.Fatalf("Render(%s, %d, %s): %v", name, size, scheme, err)
				}
				b := img.Bounds()
				if b.Dx() != size || b.Dy() != size {
					t.Errorf("Render(%s, %d, %s) bounds = %dx%d, want %dx%d",
						name, size, scheme, b.Dx(), b.Dy(), size, size)
				}
			}
		}
	}
}

func TestDraw_SchemesDiffer(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			light, err := Render(name, 96, SchemeLight)
			if err != nil {
				t.Fatalf("light render: %v", err)
			}
			dark, err := Render(name, 96, SchemeDark)
			if err != nil {
				t.Fatalf("dark render: %v", err)
			}
			if bytes.Equal(light.Pix, dark.Pix) {
				t.Error("light and dark renders should differ in at least one pixel")
			}
		})
	}
}

func TestDraw_Deterministic(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			first, err := Render(name, 144, SchemeLight)
			if err != nil {
				t.Fatalf("first render: %v", err)
			}
			second, err := Render(name, 144, SchemeLight)
			if err != nil {
				t.Fatalf("second render: %v", err)
			}
			if !bytes.Equal(first.Pix, second.Pix) {
				t.Error("identical inputs should produce byte-identical pixels")
			}
		})
	}
}

func TestFeedGlyph_Colors(t *testing.T) {
	tests := []struct {
		name       string
		scheme     Scheme
		background color.RGBA
		icon       color.RGBA
	}{
		{
			name:       "light",
			scheme:     SchemeLight,
			background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			icon:       color.RGBA{R: 33, G: 150, B: 243, A: 255},
		},
		{
			name:       "dark",
			scheme:     SchemeDark,
			background: color.RGBA{R: 30, G: 30, B: 30, A: 255},
			icon:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render(GlyphFeed, 192, tt.scheme)
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			// Corners are pure background; no geometry reaches them
			if got := img.RGBAAt(0, 0); got != tt.background {
				t.Errorf("corner = %v, want background %v", got, tt.background)
			}

			// Center sits inside the filled source dot
			if got := img.RGBAAt(96, 96); got != tt.icon {
				t.Errorf("center = %v, want icon %v", got, tt.icon)
			}

			// Bottom of the outer arc band (angle 90 is inside the sweep)
			if got := img.RGBAAt(96, 157); got != tt.icon {
				t.Errorf("bottom arc = %v, want icon %v", got, tt.icon)
			}

			// Directly above center the sweep is open, background shows
			if got := img.RGBAAt(96, 34); got != tt.background {
				t.Errorf("top gap = %v, want background %v", got, tt.background)
			}
		})
	}
}

func TestClassicGlyph_TransparentBackground(t *testing.T) {
	img, err := Render(GlyphClassic, 96, SchemeLight)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner alpha = %d, want fully transparent", got.A)
	}

	want := color.RGBA{R: 255, G: 126, B: 0, A: 255}
	if got := img.RGBAAt(48, 48); got != want {
		t.Errorf("center dot = %v, want %v", got, want)
	}
}

func TestBookGlyph_PagesPainted(t *testing.T) {
	img, err := Render(GlyphBook, 200, SchemeLight)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	icon := color.RGBA{R: 33, G: 150, B: 243, A: 255}
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Middle of the left page panel
	if got := img.RGBAAt(70, 100); got != icon {
		t.Errorf("left page = %v, want icon %v", got, icon)
	}
	// Middle of the right page panel
	if got := img.RGBAAt(130, 100); got != icon {
		t.Errorf("right page = %v, want icon %v", got, icon)
	}
	// Corner stays background
	if got := img.RGBAAt(2, 2); got != bg {
		t.Errorf("corner = %v, want background %v", got, bg)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render("no-such-glyph", 48, SchemeLight); !errors.Is(err, iconerrors.ErrUnknownGlyph) {
		t.Errorf("expected ErrUnknownGlyph, got %v", err)
	}

	if _, err := Render(GlyphFeed, 0, SchemeLight); !errors.Is(err, iconerrors.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for size 0, got %v", err)
	}

	if _, err := Render(GlyphFeed, -5, SchemeLight); !errors.Is(err, iconerrors.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for negative size, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{GlyphBook, GlyphClassic, GlyphFeed}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Scheme
		wantErr  bool
	}{
		{
			name:     "light",
			input:    "light",
			expected: SchemeLight,
		},
		{
			name:     "dark",
			input:    "dark",
			expected: SchemeDark,
		},
		{
			name:     "night alias",
			input:    "night",
			expected: SchemeDark,
		},
		{
			name:     "empty defaults to light",
			input:    "",
			expected: SchemeLight,
		},
		{
			name:     "mixed case",
			input:    "Dark",
			expected: SchemeDark,
		},
		{
			name:    "unknown",
			input:   "sepia",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if tt.wantErr {
				if !errors.Is(err, iconerrors.ErrUnknownScheme) {
					t.Errorf("expected ErrUnknownScheme, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseScheme(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
