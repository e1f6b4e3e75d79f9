package render

import (
	"fmt"
	"image"
	"sort"

	"github.com/luli-reader/icongen/pkg/iconset/errors"
)

// Glyph name constants
const (
	GlyphFeed    = "feed"
	GlyphClassic = "classic"
	GlyphBook    = "book"
)

// DefaultGlyph is rendered when no glyph is selected
const DefaultGlyph = GlyphFeed

// Glyph renders one icon design at any square pixel size
type Glyph interface {
	// Name returns the registry key
	Name() string

	// Description returns the human-readable summary
	Description() string

	// Palette returns the built-in colors for a scheme
	Palette(scheme Scheme) Palette

	// Draw renders the glyph with an explicit palette
	Draw(size int, pal Palette) (*image.RGBA, error)
}

// BaseGlyph provides common functionality for glyphs
type BaseGlyph struct {
	GlyphName string
	GlyphDesc string
}

func (g *BaseGlyph) Name() string {
	return g.GlyphName
}

func (g *BaseGlyph) Description() string {
	return g.GlyphDesc
}

// Registry maps glyph names to implementations
var Registry = make(map[string]Glyph)

// Register registers a glyph implementation
func Register(g Glyph) {
	Registry[g.Name()] = g
}

// Get retrieves a glyph by name
func Get(name string) (Glyph, error) {
	g, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", errors.ErrUnknownGlyph, name, Names())
	}
	return g, nil
}

// Names returns all registered glyph names in sorted order
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render looks up a glyph and draws it with its built-in scheme palette
func Render(name string, size int, scheme Scheme) (*image.RGBA, error) {
	g, err := Get(name)
	if err != nil {
		return nil, err
	}
	return g.Draw(size, g.Palette(scheme))
}

// checkSize validates a requested pixel size
func checkSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidSize, size)
	}
	return nil
}
