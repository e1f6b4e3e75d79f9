package iconset

import "github.com/luli-reader/icongen/pkg/iconset/catalog"

// GenerateOptions carries one asset generation run's configuration
type GenerateOptions struct {
	// ProjectRoot overrides project discovery when set
	ProjectRoot string

	// Glyph picks the procedural design; empty means render.DefaultGlyph
	Glyph string

	// Platforms filters the asset trees to touch; empty means all
	Platforms []catalog.Platform

	// Source switches light slots to resizing this master image
	// instead of rendering a glyph
	Source string

	// SourceDark feeds dark slots in source mode; empty reuses Source
	SourceDark string

	// Palette overrides in colorparse syntax; empty keeps the glyph's
	// built-in colors
	Color       string
	BGColor     string
	DarkColor   string
	DarkBGColor string

	// Appearances rewrites the iOS manifest with dark variant entries
	Appearances bool

	// DryRun enumerates and logs without touching the tree
	DryRun bool

	// Export bundles the written assets into an archive at this path
	Export string

	// WindowsExe embeds the icon group into this runner executable
	WindowsExe string
}
