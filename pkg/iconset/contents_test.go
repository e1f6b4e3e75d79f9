package iconset

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/luli-reader/icongen/pkg/iconset/catalog"
	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
)

const testManifest = `{
  "images": [
    {
      "filename": "Icon-App-20x20@2x.png",
      "idiom": "iphone",
      "scale": "2x",
      "size": "20x20"
    },
    {
      "filename": "Icon-App-60x60@3x.png",
      "idiom": "iphone",
      "scale": "3x",
      "size": "60x60"
    },
    {
      "idiom": "ipad",
      "scale": "1x",
      "size": "76x76"
    }
  ],
  "info": {
    "author": "xcode",
    "version": 1
  }
}
`

// seedIconSets builds a project tree with a light manifest and a dark
// render for the 20pt@2x slot only
func seedIconSets(t *testing.T) (string, []byte) {
	t.Helper()
	root := t.TempDir()

	lightDir := filepath.Join(root, filepath.FromSlash(catalog.IOSAppIconDir()))
	darkDir := filepath.Join(root, filepath.FromSlash(catalog.IOSDarkIconDir()))
	for _, dir := range []string{lightDir, darkDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	if err := os.WriteFile(filepath.Join(lightDir, ContentsFileName), []byte(testManifest), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	darkRender, err := encodePNG(solidFrame(40, color.RGBA{R: 20, G: 20, B: 20, A: 255}))
	if err != nil {
		t.Fatalf("encodePNG failed: %v", err)
	}
	darkName := catalog.DarkSlotName("Icon-App-20x20@2x.png")
	if err := os.WriteFile(filepath.Join(darkDir, darkName), darkRender, 0o644); err != nil {
		t.Fatalf("Failed to write dark render: %v", err)
	}

	return root, darkRender
}

// TestUpdateContents_Default tests that dark renders are copied while
// the manifest stays untouched
func TestUpdateContents_Default(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "contents_test",
		Level: hclog.Trace,
	})

	root, darkRender := seedIconSets(t)
	lightDir := filepath.Join(root, filepath.FromSlash(catalog.IOSAppIconDir()))

	logger.Info("🧪 Running default manifest upkeep", "root", root)

	copied, err := UpdateContents(root, false, logger)
	if err != nil {
		t.Fatalf("UpdateContents failed: %v", err)
	}

	if len(copied) != 1 {
		t.Fatalf("Copied %d variants, want 1", len(copied))
	}
	info := copied[0]
	if info.Path != catalog.IOSAppIconDir()+"/Icon-App-20x20@2x~dark.png" {
		t.Errorf("Path = %q, want the in-set ~dark name", info.Path)
	}
	if info.Scheme != "dark" || info.Size != 40 {
		t.Errorf("Entry = %s/%d, want dark/40", info.Scheme, info.Size)
	}

	variant, err := os.ReadFile(filepath.Join(lightDir, "Icon-App-20x20@2x~dark.png"))
	if err != nil {
		t.Fatalf("Variant not copied: %v", err)
	}
	if !bytes.Equal(variant, darkRender) {
		t.Error("Variant bytes differ from the dark render")
	}

	// The slot without a dark render gets no variant
	if _, err := os.Stat(filepath.Join(lightDir, "Icon-App-60x60@3x~dark.png")); !os.IsNotExist(err) {
		t.Error("Unexpected variant for slot without a dark render")
	}

	// The manifest must be byte-identical to what Xcode wrote
	manifest, err := os.ReadFile(filepath.Join(lightDir, ContentsFileName))
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	if string(manifest) != testManifest {
		t.Error("Manifest was modified without --appearances")
	}

	logger.Info("✅ Test passed", "copied", len(copied))
}

// TestUpdateContents_Appearances tests the opt-in manifest rewrite
func TestUpdateContents_Appearances(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "contents_test",
		Level: hclog.Trace,
	})

	root, _ := seedIconSets(t)
	manifestPath := filepath.Join(root, filepath.FromSlash(catalog.IOSAppIconDir()), ContentsFileName)

	logger.Info("🧪 Rewriting manifest with appearance entries", "root", root)

	if _, err := UpdateContents(root, true, logger); err != nil {
		t.Fatalf("UpdateContents failed: %v", err)
	}

	firstPass, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}

	var doc struct {
		Images []map[string]interface{} `json:"images"`
		Info   map[string]interface{}   `json:"info"`
	}
	if err := json.Unmarshal(firstPass, &doc); err != nil {
		t.Fatalf("Rewritten manifest does not parse: %v", err)
	}

	// Base 20pt, its dark sibling, base 60pt, filename-less ipad entry
	if len(doc.Images) != 4 {
		t.Fatalf("Image entries = %d, want 4", len(doc.Images))
	}

	variant := doc.Images[1]
	if variant["filename"] != "Icon-App-20x20@2x~dark.png" {
		t.Errorf("Variant filename = %v, want the ~dark name", variant["filename"])
	}
	if variant["idiom"] != "iphone" || variant["scale"] != "2x" || variant["size"] != "20x20" {
		t.Errorf("Variant entry lost base fields: %v", variant)
	}
	appearances, ok := variant["appearances"].([]interface{})
	if !ok || len(appearances) != 1 {
		t.Fatalf("Variant appearances = %v, want one entry", variant["appearances"])
	}
	appearance := appearances[0].(map[string]interface{})
	if appearance["appearance"] != "luminosity" || appearance["value"] != "dark" {
		t.Errorf("Appearance = %v, want luminosity/dark", appearance)
	}

	if _, hasVariant := doc.Images[2]["appearances"]; hasVariant {
		t.Error("Slot without a dark render gained an appearance entry")
	}
	if doc.Info["author"] != "xcode" {
		t.Errorf("Info block lost fields: %v", doc.Info)
	}

	// Rewriting again must not change the manifest
	if _, err := UpdateContents(root, true, logger); err != nil {
		t.Fatalf("Second UpdateContents failed: %v", err)
	}
	secondPass, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("Failed to read manifest: %v", err)
	}
	if !bytes.Equal(firstPass, secondPass) {
		t.Error("Rewrite is not idempotent")
	}

	logger.Info("✅ Test passed", "images", len(doc.Images))
}

// TestUpdateContents_Errors tests manifest failure sentinels
func TestUpdateContents_Errors(t *testing.T) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "contents_test",
		Level: hclog.Trace,
	})

	// No manifest at all
	_, err := UpdateContents(t.TempDir(), false, logger)
	if !errors.Is(err, iconerrors.ErrManifestMissing) {
		t.Errorf("Error = %v, want ErrManifestMissing", err)
	}

	// Garbage manifest
	root := t.TempDir()
	lightDir := filepath.Join(root, filepath.FromSlash(catalog.IOSAppIconDir()))
	if err := os.MkdirAll(lightDir, 0o755); err != nil {
		t.Fatalf("Failed to create %s: %v", lightDir, err)
	}
	if err := os.WriteFile(filepath.Join(lightDir, ContentsFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	_, err = UpdateContents(root, false, logger)
	if !errors.Is(err, iconerrors.ErrManifestMalformed) {
		t.Errorf("Error = %v, want ErrManifestMalformed", err)
	}
}
