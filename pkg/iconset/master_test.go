package iconset

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
	"github.com/luli-reader/icongen/pkg/iconset/render"
)

// TestRenderMasters tests master icon rendering into an output directory
func TestRenderMasters(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "master_test",
		Level: hclog.Trace,
	})

	outDir := t.TempDir()

	if err := RenderMasters(logger, outDir, 64, ""); err != nil {
		t.Fatalf("RenderMasters failed: %v", err)
	}

	foreground, err := os.ReadFile(filepath.Join(outDir, MasterForegroundFile))
	if err != nil {
		t.Fatalf("foreground master not written: %v", err)
	}
	dark, err := os.ReadFile(filepath.Join(outDir, MasterForegroundDark))
	if err != nil {
		t.Fatalf("dark master not written: %v", err)
	}
	base, err := os.ReadFile(filepath.Join(outDir, MasterBaseFile))
	if err != nil {
		t.Fatalf("base master not written: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(foreground))
	if err != nil {
		t.Fatalf("foreground master is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("foreground bounds = %dx%d, want 64x64", b.Dx(), b.Dy())
	}

	if !bytes.Equal(base, foreground) {
		t.Error("base master should ship the light artwork")
	}
	if bytes.Equal(dark, foreground) {
		t.Error("dark master should differ from the light one")
	}

	logger.Info("✅ Masters rendered", "dir", outDir)
}

// TestRenderMasters_DefaultDesign tests that a bare run draws the classic artwork
func TestRenderMasters_DefaultDesign(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "master_test",
		Level: hclog.Trace,
	})

	outDir := t.TempDir()

	if err := RenderMasters(logger, outDir, 64, ""); err != nil {
		t.Fatalf("RenderMasters failed: %v", err)
	}

	tests := []struct {
		name string
		file string
		icon color.RGBA
	}{
		{
			name: "light",
			file: MasterForegroundFile,
			icon: color.RGBA{R: 255, G: 126, B: 0, A: 255},
		},
		{
			name: "dark",
			file: MasterForegroundDark,
			icon: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(outDir, tt.file))
			if err != nil {
				t.Fatalf("master not written: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("master is not a valid PNG: %v", err)
			}

			// Corners stay fully transparent so launcher tooling can layer
			// the glyph over its own backdrop
			corner := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
			if corner.A != 0 {
				t.Errorf("corner = %v, want a transparent backdrop", corner)
			}

			// Center sits inside the filled dot
			center := color.RGBAModel.Convert(img.At(32, 32)).(color.RGBA)
			if center != tt.icon {
				t.Errorf("center = %v, want icon %v", center, tt.icon)
			}
		})
	}

	logger.Info("✅ Default master design verified", "dir", outDir)
}

// TestRenderMasters_Defaults tests the built-in size and glyph fallbacks
func TestRenderMasters_Defaults(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "master_test",
		Level: hclog.Trace,
	})

	outDir := t.TempDir()

	if err := RenderMasters(logger, outDir, 0, render.GlyphClassic); err != nil {
		t.Fatalf("RenderMasters failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, MasterBaseFile))
	if err != nil {
		t.Fatalf("base master not written: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("base master is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != MasterSize || b.Dy() != MasterSize {
		t.Errorf("base bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), MasterSize, MasterSize)
	}

	logger.Info("✅ Default sized master rendered", "pixels", MasterSize)
}

// TestRenderMasters_UnknownGlyph tests the unknown glyph error path
func TestRenderMasters_UnknownGlyph(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "master_test",
		Level: hclog.Trace,
	})

	err := RenderMasters(logger, t.TempDir(), 64, "no-such-glyph")
	if !errors.Is(err, iconerrors.ErrUnknownGlyph) {
		t.Errorf("expected ErrUnknownGlyph, got %v", err)
	}
}
