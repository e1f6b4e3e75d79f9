// SPDX-License-Identifier: Apache-2.0
// Package iconset renders the Luli Reader launcher icon set into
// mobile project asset trees, maintains the iOS asset manifest around
// them, and verifies generated trees against their lock file.
package iconset

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/luli-reader/icongen/internal/project"
	"github.com/luli-reader/icongen/pkg/iconset/archive"
	"github.com/luli-reader/icongen/pkg/iconset/catalog"
	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
	"github.com/luli-reader/icongen/pkg/iconset/render"
	"github.com/luli-reader/icongen/pkg/logging"
	"github.com/luli-reader/icongen/pkg/utils/colorparse"
)

// NewRunLogger builds the CLI run logger. Level resolution order:
// CLI flag, tool-specific env var, ICONGEN_LOG_LEVEL, default info.
// A "json" or "json:level" value switches to JSON output.
func NewRunLogger(name, toolEnvVar, cliLogLevel string) hclog.Logger {
	var logLevel string
	var logSource string

	if cliLogLevel != "" {
		logLevel = cliLogLevel
		logSource = "CLI --log-level"
	} else if envLevel := os.Getenv(toolEnvVar); envLevel != "" {
		logLevel = envLevel
		logSource = toolEnvVar
	} else if envLevel := os.Getenv(EnvLogLevel); envLevel != "" {
		logLevel = envLevel
		logSource = EnvLogLevel
	} else {
		logLevel = "info"
		logSource = "default"
	}

	// Parse JSON format from log level
	jsonFormat := false
	actualLevel := logLevel
	if strings.HasPrefix(logLevel, "json") {
		jsonFormat = true
		parts := strings.Split(logLevel, ":")
		if len(parts) > 1 {
			actualLevel = parts[1]
		} else {
			actualLevel = "info"
		}
	}

	var output io.Writer = os.Stderr

	// Support log file output
	if logPath := os.Getenv(EnvLogPath); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = file
		}
	}

	// Add 🎨 prefix to non-JSON output
	if !jsonFormat {
		output = logging.NewPrefixWriter("🎨 ", output)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(actualLevel),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format without timezone
		TimeFn: func() time.Time {
			return time.Now().UTC() // Force UTC time
		},
	})

	logger.Debug("Log level", "level", actualLevel, "source", logSource)
	return logger
}

// GenerateWithLogLevel runs asset generation with explicit log level control
func GenerateWithLogLevel(opts GenerateOptions, cliLogLevel string) {
	logger := NewRunLogger("icongen-assets", EnvAssetsLogLevel, cliLogLevel)

	logger.Info("🎨🎨🎨 Hello from Luli Reader's Icon Generator 🎨🎨🎨")
	logger.Info("Icon asset generation starting...")

	if err := Generate(logger, opts); err != nil {
		logger.Error("❌ Icon generation failed", "error", err)
		os.Exit(1)
	}
}

// Generate renders every selected asset into the project tree: the
// platform PNG slots, the Windows ICO container, the iOS manifest
// upkeep, the lock file and the optional export bundle.
func Generate(logger hclog.Logger, opts GenerateOptions) error {
	// 📂 Resolve the project root
	root, err := project.Resolve(opts.ProjectRoot)
	if err != nil {
		return err
	}
	logger.Info("📂 Using project root", "path", root)

	layout := project.Inspect(root)
	for _, dir := range layout.Missing() {
		logger.Warn("⚠️ Platform subtree not present yet", "dir", dir)
	}

	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = append([]catalog.Platform{}, catalog.Platforms...)
	}
	if opts.WindowsExe != "" && !hasPlatform(platforms, catalog.PlatformWindows) {
		logger.Warn("⚠️ --windows-exe ignored, windows platform not selected")
	}

	run, err := newRenderRun(opts, logger)
	if err != nil {
		return err
	}

	// 🔐 One generation run per project tree
	if !opts.DryRun {
		acquired, err := project.TryAcquireLock(root, logger)
		if err != nil {
			return fmt.Errorf("acquiring generation lock: %w", err)
		}
		if !acquired {
			return fmt.Errorf("%w: %s", iconerrors.ErrGenerationLocked, root)
		}
		defer project.ReleaseLock(root, logger)
	}

	assets, err := catalog.AllAssets(platforms)
	if err != nil {
		return err
	}

	logger.Info("🖼️ Rendering icon assets",
		"count", len(assets),
		"design", run.describe(),
		"platforms", len(platforms))

	lock := run.newLockFile()

	// ✍️ PNG slots
	for _, asset := range assets {
		img, err := run.render(asset.Size, asset.Scheme)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", asset.RelPath, err)
		}
		data, err := encodePNG(img)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", asset.RelPath, err)
		}

		if opts.DryRun {
			logger.Info("🔍 Would write asset", "path", asset.RelPath, "pixels", asset.Size, "scheme", asset.Scheme)
			continue
		}

		if err := writeAsset(filepath.Join(root, filepath.FromSlash(asset.RelPath)), data, logger); err != nil {
			return err
		}
		logger.Debug("✅ Asset written", "path", asset.RelPath, "pixels", asset.Size, "scheme", asset.Scheme)

		lock.Assets = append(lock.Assets, AssetInfo{
			Path:     asset.RelPath,
			Platform: string(asset.Platform),
			Scheme:   string(asset.Scheme),
			Size:     asset.Size,
			Checksum: CalculateChecksum(data, DefaultChecksum),
		})
	}

	// 🪟 Windows ICO container
	if hasPlatform(platforms, catalog.PlatformWindows) {
		if err := generateWindowsIcon(root, run, lock, opts, logger); err != nil {
			return err
		}
	}

	// 📝 iOS manifest upkeep
	if hasPlatform(platforms, catalog.PlatformIOS) {
		if opts.DryRun {
			logger.Info("🔍 Would sync dark variants into the appiconset")
		} else {
			copied, err := UpdateContents(root, opts.Appearances, logger)
			if err != nil {
				if !errors.Is(err, iconerrors.ErrManifestMissing) {
					return err
				}
				logger.Warn("⚠️ No Contents.json to maintain", "error", err)
			}
			lock.Assets = append(lock.Assets, copied...)
		}
	}

	if opts.DryRun {
		logger.Info("🔍 Dry run complete, nothing written", "assets", len(assets))
		return nil
	}

	// 🔒 Lock file
	if err := WriteLockFile(root, lock, logger); err != nil {
		return err
	}

	// 📦 Export bundle
	if opts.Export != "" {
		if err := ExportAssets(root, lock, opts.Export, logger); err != nil {
			return err
		}
	}

	logger.Info("✅ Icon asset generation complete",
		"root", root,
		"assets", len(lock.Assets),
		"platforms", len(platforms))
	return nil
}

// generateWindowsIcon renders the frame ladder, assembles the runner
// ICO and optionally patches a built runner executable
func generateWindowsIcon(root string, run *renderRun, lock *LockFile, opts GenerateOptions, logger hclog.Logger) error {
	frames := make([]*image.RGBA, 0, len(catalog.WindowsIcoSizes))
	for _, size := range catalog.WindowsIcoSizes {
		img, err := run.render(size, render.SchemeLight)
		if err != nil {
			return fmt.Errorf("rendering %d px ico frame: %w", size, err)
		}
		frames = append(frames, img)
	}

	icoData, err := EncodeICO(frames)
	if err != nil {
		return err
	}

	relPath := catalog.WindowsIconPath()
	if opts.DryRun {
		logger.Info("🔍 Would write asset", "path", relPath, "frames", len(frames))
		return nil
	}

	if err := writeAsset(filepath.Join(root, filepath.FromSlash(relPath)), icoData, logger); err != nil {
		return err
	}
	logger.Debug("✅ Windows icon written", "path", relPath, "frames", len(frames), "bytes", len(icoData))

	lock.Assets = append(lock.Assets, AssetInfo{
		Path:     relPath,
		Platform: string(catalog.PlatformWindows),
		Scheme:   string(render.SchemeLight),
		Size:     catalog.WindowsIcoSizes[len(catalog.WindowsIcoSizes)-1],
		Checksum: CalculateChecksum(icoData, DefaultChecksum),
	})

	if opts.WindowsExe != "" {
		if err := EmbedExeIcon(opts.WindowsExe, frames, logger); err != nil {
			return fmt.Errorf("embedding icon into %s: %w", opts.WindowsExe, err)
		}
	}

	return nil
}

// ExportAssets bundles every lock file entry plus the lock file
// itself into one archive
func ExportAssets(root string, lock *LockFile, dest string, logger hclog.Logger) error {
	format, err := archive.ForPath(dest)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(lock.Assets)+1)
	for _, asset := range lock.Assets {
		paths = append(paths, asset.Path)
	}
	paths = append(paths, LockFileName)

	logger.Info("📦 Exporting asset bundle", "dest", dest, "format", format.Name(), "files", len(paths))

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	if err := format.Write(out, root, paths); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dest, err)
	}

	if info, err := os.Stat(dest); err == nil {
		logger.Info("✅ Asset bundle exported", "dest", dest, "bytes", info.Size())
	}
	return nil
}

// renderRun resolves the glyph, palettes and master images once per run
type renderRun struct {
	glyph      render.Glyph
	palettes   map[render.Scheme]render.Palette
	srcLight   image.Image
	srcDark    image.Image
	sourcePath string
	darkPath   string
}

func newRenderRun(opts GenerateOptions, logger hclog.Logger) (*renderRun, error) {
	run := &renderRun{}

	if opts.Source != "" {
		img, format, err := LoadSourceImage(opts.Source)
		if err != nil {
			return nil, err
		}
		logger.Info("🖼️ Using source master", "path", opts.Source, "format", format)
		run.srcLight = img
		run.srcDark = img
		run.sourcePath = opts.Source
		run.darkPath = opts.SourceDark

		if opts.SourceDark != "" {
			dark, format, err := LoadSourceImage(opts.SourceDark)
			if err != nil {
				return nil, err
			}
			logger.Info("🖼️ Using dark source master", "path", opts.SourceDark, "format", format)
			run.srcDark = dark
		}
		return run, nil
	}

	name := opts.Glyph
	if name == "" {
		name = render.DefaultGlyph
	}
	g, err := render.Get(name)
	if err != nil {
		return nil, err
	}
	run.glyph = g

	run.palettes = make(map[render.Scheme]render.Palette, len(render.Schemes))
	for _, scheme := range render.Schemes {
		pal := g.Palette(scheme)
		if err := applyPaletteOverrides(&pal, scheme, opts); err != nil {
			return nil, err
		}
		run.palettes[scheme] = pal
	}
	return run, nil
}

// applyPaletteOverrides folds CLI color flags into a scheme palette
func applyPaletteOverrides(pal *render.Palette, scheme render.Scheme, opts GenerateOptions) error {
	iconOverride := opts.Color
	bgOverride := opts.BGColor
	if scheme == render.SchemeDark {
		iconOverride = opts.DarkColor
		bgOverride = opts.DarkBGColor
	}

	if iconOverride != "" {
		c, err := colorparse.Parse(iconOverride)
		if err != nil {
			return fmt.Errorf("icon color for %s scheme: %w", scheme, err)
		}
		pal.Icon = c
	}
	if bgOverride != "" {
		c, err := colorparse.Parse(bgOverride)
		if err != nil {
			return fmt.Errorf("background color for %s scheme: %w", scheme, err)
		}
		pal.Background = c
	}
	return nil
}

// render produces one slot image
func (r *renderRun) render(size int, scheme render.Scheme) (*image.RGBA, error) {
	if r.srcLight != nil {
		if size < 1 {
			return nil, fmt.Errorf("%w: %d", iconerrors.ErrInvalidSize, size)
		}
		src := r.srcLight
		if scheme == render.SchemeDark {
			src = r.srcDark
		}
		return ResizeSource(src, size), nil
	}
	return r.glyph.Draw(size, r.palettes[scheme])
}

// describe names the run's pixel source for log lines
func (r *renderRun) describe() string {
	if r.srcLight != nil {
		return "source:" + filepath.Base(r.sourcePath)
	}
	return "glyph:" + r.glyph.Name()
}

// newLockFile seeds a lock file with the run's configuration
func (r *renderRun) newLockFile() *LockFile {
	lock := &LockFile{
		Format:        LockFormat,
		FormatVersion: LockFormatVersion,
		Source:        r.sourcePath,
		SourceDark:    r.darkPath,
		Build:         newBuildInfo(),
	}
	if r.glyph != nil {
		lock.Glyph = r.glyph.Name()
		lock.Palettes = make(map[string]PaletteInfo, len(r.palettes))
		for scheme, pal := range r.palettes {
			lock.Palettes[string(scheme)] = PaletteInfo{
				Icon:       colorparse.Format(pal.Icon),
				Background: colorparse.Format(pal.Background),
			}
		}
	}
	return lock
}

func hasPlatform(platforms []catalog.Platform, p catalog.Platform) bool {
	for _, candidate := range platforms {
		if candidate == p {
			return true
		}
	}
	return false
}
