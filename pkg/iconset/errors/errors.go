package errors

import "errors"

var (
	// Render errors 🎨
	ErrUnknownGlyph  = errors.New("❌ unknown glyph")
	ErrInvalidSize   = errors.New("❌ icon size must be at least 1 pixel")
	ErrUnknownScheme = errors.New("❌ unknown color scheme")

	// Catalog errors 📂
	ErrUnknownPlatform = errors.New("❌ unknown platform")
	ErrInvalidSlotName = errors.New("❌ invalid icon slot name")

	// Manifest errors 📝
	ErrManifestMissing   = errors.New("❌ Contents.json not found")
	ErrManifestMalformed = errors.New("❌ malformed Contents.json")

	// Verification errors 🔒
	ErrChecksumMismatch = errors.New("❌ checksum mismatch")
	ErrLockFileMissing  = errors.New("❌ icon lock file not found")
	ErrAssetMissing     = errors.New("❌ generated asset missing")

	// Generation errors 🏃
	ErrGenerationLocked = errors.New("❌ another generation run owns this project")

	// Source image errors 🖼️
	ErrUnsupportedImage = errors.New("❌ unsupported source image format")

	// Export errors 📦
	ErrUnknownArchiveFormat = errors.New("❌ unknown archive format")
)
