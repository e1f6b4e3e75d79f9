// SPDX-License-Identifier: Apache-2.0
// Package iconset implements the Luli Reader icon asset pipeline
package iconset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/luli-reader/icongen/internal/project"
	"github.com/luli-reader/icongen/pkg/iconset/catalog"
	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
	"github.com/luli-reader/icongen/pkg/iconset/render"
	"github.com/luli-reader/icongen/pkg/utils/colorparse"
)

// Verify checks every lock file entry two ways: the bytes on disk
// against the recorded checksum, and for glyph runs a fresh render
// against the same checksum. Returns one problem string per failure.
func Verify(logger hclog.Logger, projectRoot string) ([]string, error) {
	root, err := project.Resolve(projectRoot)
	if err != nil {
		return nil, err
	}
	logger.Info("📂 Verifying project root", "path", root)

	lock, err := ReadLockFile(root)
	if err != nil {
		return nil, err
	}
	logger.Debug("🔒 Lock file loaded", "assets", len(lock.Assets), "format", lock.Format)

	rerender := newVerifyRenderer(lock, logger)

	var problems []string
	for _, asset := range lock.Assets {
		problems = append(problems, verifyAsset(root, asset, rerender, logger)...)
	}
	return problems, nil
}

// verifyAsset checks one lock file entry
func verifyAsset(root string, asset AssetInfo, rerender *verifyRenderer, logger hclog.Logger) []string {
	var problems []string

	path := filepath.Join(root, filepath.FromSlash(asset.Path))
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Asset unreadable", "path", asset.Path, "error", err)
		problems = append(problems, fmt.Sprintf("%s: %s", asset.Path, iconerrors.ErrAssetMissing))
		return problems
	}

	ok, err := VerifyChecksum(data, asset.Checksum)
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s: %s", asset.Path, err))
		return problems
	}
	if !ok {
		logger.Error("Asset drifted from lock file", "path", asset.Path, "expected", asset.Checksum)
		problems = append(problems, fmt.Sprintf("%s: %s", asset.Path, iconerrors.ErrChecksumMismatch))
		return problems
	}
	logger.Info("✓ Asset matches lock file", "path", asset.Path)

	if rerender == nil {
		return problems
	}

	fresh, err := rerender.bytesFor(asset)
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s: re-render: %s", asset.Path, err))
		return problems
	}
	if fresh == nil {
		// Entry the renderer cannot reproduce, tree bytes already checked
		return problems
	}

	ok, err = VerifyChecksum(fresh, asset.Checksum)
	if err != nil {
		problems = append(problems, fmt.Sprintf("%s: re-render: %s", asset.Path, err))
		return problems
	}
	if !ok {
		logger.Error("Renderer drifted from lock file", "path", asset.Path, "glyph", rerender.glyph.Name())
		problems = append(problems, fmt.Sprintf("%s: renderer drift: %s", asset.Path, iconerrors.ErrChecksumMismatch))
		return problems
	}
	logger.Debug("✓ Re-render matches lock file", "path", asset.Path)
	return problems
}

// verifyRenderer reproduces lock file entries from the recorded glyph
// and palettes
type verifyRenderer struct {
	glyph    render.Glyph
	palettes map[render.Scheme]render.Palette
}

// newVerifyRenderer is nil for source-image runs, where the master
// file may no longer exist and tree bytes are the only ground truth
func newVerifyRenderer(lock *LockFile, logger hclog.Logger) *verifyRenderer {
	if lock.Glyph == "" {
		logger.Debug("Lock file records a source-image run, skipping re-render checks")
		return nil
	}

	g, err := render.Get(lock.Glyph)
	if err != nil {
		logger.Warn("⚠️ Lock file names an unknown glyph, skipping re-render checks", "glyph", lock.Glyph)
		return nil
	}

	v := &verifyRenderer{
		glyph:    g,
		palettes: make(map[render.Scheme]render.Palette, len(render.Schemes)),
	}
	for _, scheme := range render.Schemes {
		pal := g.Palette(scheme)
		if info, found := lock.Palettes[string(scheme)]; found {
			if c, err := colorparse.Parse(info.Icon); err == nil {
				pal.Icon = c
			}
			if c, err := colorparse.Parse(info.Background); err == nil {
				pal.Background = c
			}
		}
		v.palettes[scheme] = pal
	}
	return v
}

// bytesFor re-renders the bytes a lock file entry should contain
func (v *verifyRenderer) bytesFor(asset AssetInfo) ([]byte, error) {
	if strings.HasSuffix(asset.Path, ".ico") {
		frames := make([]*image.RGBA, 0, len(catalog.WindowsIcoSizes))
		for _, size := range catalog.WindowsIcoSizes {
			img, err := v.glyph.Draw(size, v.palettes[render.SchemeLight])
			if err != nil {
				return nil, err
			}
			frames = append(frames, img)
		}
		return EncodeICO(frames)
	}

	scheme, err := render.ParseScheme(asset.Scheme)
	if err != nil {
		return nil, err
	}
	img, err := v.glyph.Draw(asset.Size, v.palettes[scheme])
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}
