package iconset

import "github.com/luli-reader/icongen/pkg/iconset/render"

// =================================
// Tool identity
// =================================
const (
	ToolName    = "icongen"
	ToolVersion = "0.3.0"
)

// =================================
// Lock file format
// =================================
const (
	LockFileName      = "icongen.lock.json"
	LockFormat        = "icongen/lock"
	LockFormatVersion = "1"
)

// =================================
// File permissions defaults
// =================================
const (
	FilePerms = 0o644 // Assets are project sources, group/world readable
	DirPerms  = 0o755
)

// =================================
// Master icon defaults
// =================================
const (
	MasterSize           = 1024
	MasterDir            = "assets/icon"
	MasterGlyph          = render.GlyphClassic
	MasterForegroundFile = "app_icon_foreground.png"
	MasterForegroundDark = "app_icon_foreground_dark.png"
	MasterBaseFile       = "app_icon.png"
)

// =================================
// Environment variables
// =================================
const (
	EnvLogLevel       = "ICONGEN_LOG_LEVEL"
	EnvAssetsLogLevel = "ICONGEN_ASSETS_LOG_LEVEL"
	EnvMasterLogLevel = "ICONGEN_MASTER_LOG_LEVEL"
	EnvLogPath        = "ICONGEN_LOG_PATH"
	EnvSourceEpoch    = "SOURCE_DATE_EPOCH"
)
