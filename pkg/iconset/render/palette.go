// Package render draws the app icon glyphs onto in-memory pixel
// canvases. Geometry is proportional to the requested size so the same
// glyph definition serves every platform slot.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/luli-reader/icongen/pkg/iconset/errors"
)

// Scheme selects the light or dark appearance of a glyph
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Schemes lists the supported appearances in generation order
var Schemes = []Scheme{SchemeLight, SchemeDark}

// ParseScheme normalizes a scheme string from a flag or environment value
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return SchemeLight, nil
	case "dark", "night":
		return SchemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownScheme, s)
	}
}

// Palette holds the two colors a glyph invocation draws with.
// A zero-alpha Background leaves the canvas transparent.
type Palette struct {
	Icon       color.RGBA
	Background color.RGBA
}

// Opaque reports whether the palette paints a background rectangle
func (p Palette) Opaque() bool {
	return p.Background.A != 0
}
