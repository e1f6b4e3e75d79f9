// SPDX-License-Identifier: Apache-2.0
// Package iconset implements the Luli Reader icon asset pipeline
package iconset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/luli-reader/icongen/pkg/iconset/render"
)

// RenderMastersWithLogLevel runs master rendering with explicit log level control
func RenderMastersWithLogLevel(outDir string, size int, glyphName, cliLogLevel string) {
	logger := NewRunLogger("icongen-master", EnvMasterLogLevel, cliLogLevel)

	logger.Info("🎨🎨🎨 Hello from Luli Reader's Icon Generator 🎨🎨🎨")
	logger.Info("Master icon rendering starting...")

	if err := RenderMasters(logger, outDir, size, glyphName); err != nil {
		logger.Error("❌ Master rendering failed", "error", err)
		os.Exit(1)
	}
}

// RenderMasters draws the design-time master images, the large
// originals the platform trees are fanned out from
func RenderMasters(logger hclog.Logger, outDir string, size int, glyphName string) error {
	if outDir == "" {
		outDir = MasterDir
	}
	if size == 0 {
		size = MasterSize
	}
	if glyphName == "" {
		glyphName = MasterGlyph
	}

	glyph, err := render.Get(glyphName)
	if err != nil {
		return err
	}

	logger.Info("🖼️ Rendering master icons", "dir", outDir, "pixels", size, "glyph", glyph.Name())

	masters := []struct {
		file   string
		scheme render.Scheme
	}{
		{MasterForegroundFile, render.SchemeLight},
		{MasterForegroundDark, render.SchemeDark},
		// The base master ships the light artwork
		{MasterBaseFile, render.SchemeLight},
	}

	for _, master := range masters {
		img, err := glyph.Draw(size, glyph.Palette(master.scheme))
		if err != nil {
			return fmt.Errorf("rendering %s: %w", master.file, err)
		}
		data, err := encodePNG(img)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", master.file, err)
		}
		if err := writeAsset(filepath.Join(outDir, master.file), data, logger); err != nil {
			return err
		}
		logger.Info("✓ Created master", "file", master.file, "scheme", master.scheme)
	}

	logger.Info("✅ All master icons created", "dir", outDir, "count", len(masters))
	logger.Info("💡 Review the generated icons and replace them with designed artwork any time")
	logger.Info("💡 Run icongen-assets --source to fan a master out into the platform trees")
	return nil
}
