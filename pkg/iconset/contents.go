package iconset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/luli-reader/icongen/pkg/iconset/catalog"
	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
	"github.com/luli-reader/icongen/pkg/iconset/render"
	"github.com/luli-reader/icongen/pkg/utils/slotspec"
)

// ContentsFileName is the asset catalog manifest inside an iconset
const ContentsFileName = "Contents.json"

// DarkVariantName rewrites a slot filename for the in-set dark copy
// that sits next to its light sibling
func DarkVariantName(name string) string {
	return strings.TrimSuffix(name, slotspec.NameSuffix) + "~dark" + slotspec.NameSuffix
}

// UpdateContents maintains the light appiconset after dark renders
// land in the dark set. Each manifest image entry gets its dark render
// copied alongside under a ~dark name. The manifest itself stays
// untouched by default; iOS adapts app icons on its own, so the copies
// are advisory. With appearances set the manifest is rewritten so
// every image entry gains a dark-luminosity sibling entry.
//
// Returns lock entries for the files it copied.
func UpdateContents(root string, appearances bool, logger hclog.Logger) ([]AssetInfo, error) {
	lightDir := filepath.Join(root, filepath.FromSlash(catalog.IOSAppIconDir()))
	darkDir := filepath.Join(root, filepath.FromSlash(catalog.IOSDarkIconDir()))
	manifestPath := filepath.Join(lightDir, ContentsFileName)

	doc, err := loadContents(manifestPath)
	if err != nil {
		return nil, err
	}

	rawImages, ok := doc["images"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s: no images list", iconerrors.ErrManifestMalformed, manifestPath)
	}

	var copied []AssetInfo
	variants := make(map[string]string)

	for _, raw := range rawImages {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			logger.Warn("⚠️ Skipping non-object manifest entry")
			continue
		}
		if _, isVariant := entry["appearances"]; isVariant {
			continue
		}
		filename, _ := entry["filename"].(string)
		if filename == "" {
			continue
		}

		info, err := copyDarkVariant(lightDir, darkDir, filename, logger)
		if err != nil {
			logger.Warn("⚠️ No dark variant for manifest entry", "filename", filename, "error", err)
			continue
		}
		copied = append(copied, info)
		variants[filename] = DarkVariantName(filename)
	}

	logger.Info("📝 Dark variants copied into appiconset", "count", len(copied))

	if !appearances {
		// iOS 13+ adapts app icons between appearances on its own, so
		// the manifest is left as Xcode wrote it.
		logger.Info("💡 iOS app icons use adaptive icons for dark mode")
		logger.Info("💡 The dark renders are available but iOS handles adaptation automatically")
		logger.Info("💡 Pass --appearances to wire explicit luminosity variants instead")
		return copied, nil
	}

	doc["images"] = rewriteImages(rawImages, variants)
	if err := writeContents(manifestPath, doc, logger); err != nil {
		return nil, err
	}
	logger.Info("✅ Manifest rewritten with dark appearance entries", "path", manifestPath, "variants", len(variants))

	return copied, nil
}

// copyDarkVariant copies one dark render from the dark set into the
// light set under its ~dark name and builds the lock entry for it
func copyDarkVariant(lightDir, darkDir, filename string, logger hclog.Logger) (AssetInfo, error) {
	slot, err := slotspec.Parse(filename)
	if err != nil {
		return AssetInfo{}, fmt.Errorf("%w: %q", iconerrors.ErrInvalidSlotName, filename)
	}

	data, err := os.ReadFile(filepath.Join(darkDir, catalog.DarkSlotName(filename)))
	if err != nil {
		return AssetInfo{}, err
	}

	variantName := DarkVariantName(filename)
	if err := writeAsset(filepath.Join(lightDir, variantName), data, logger); err != nil {
		return AssetInfo{}, err
	}
	logger.Debug("Copied dark variant", "from", catalog.DarkSlotName(filename), "to", variantName)

	return AssetInfo{
		Path:     path.Join(catalog.IOSAppIconDir(), variantName),
		Platform: string(catalog.PlatformIOS),
		Scheme:   string(render.SchemeDark),
		Size:     slot.Pixels(),
		Checksum: CalculateChecksum(data, DefaultChecksum),
	}, nil
}

// rewriteImages rebuilds the manifest image list: previous appearance
// variants are dropped, then every base entry with a copied dark file
// gets a fresh dark-luminosity sibling right after it. Running the
// rewrite twice yields the same list.
func rewriteImages(rawImages []interface{}, variants map[string]string) []interface{} {
	out := make([]interface{}, 0, len(rawImages)+len(variants))
	for _, raw := range rawImages {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			out = append(out, raw)
			continue
		}
		if _, isVariant := entry["appearances"]; isVariant {
			continue
		}
		out = append(out, raw)

		filename, _ := entry["filename"].(string)
		variantName, hasVariant := variants[filename]
		if !hasVariant {
			continue
		}

		variant := make(map[string]interface{}, len(entry)+1)
		for k, v := range entry {
			variant[k] = v
		}
		variant["filename"] = variantName
		variant["appearances"] = []interface{}{
			map[string]interface{}{"appearance": "luminosity", "value": "dark"},
		}
		out = append(out, variant)
	}
	return out
}

// loadContents reads and parses an asset catalog manifest. Numbers
// stay json.Number so a rewrite does not reformat untouched fields.
func loadContents(manifestPath string) (map[string]interface{}, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", iconerrors.ErrManifestMissing, manifestPath)
		}
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", iconerrors.ErrManifestMalformed, manifestPath, err)
	}
	return doc, nil
}

// writeContents serializes the manifest with stable two-space
// indentation and sorted keys
func writeContents(manifestPath string, doc map[string]interface{}, logger hclog.Logger) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", manifestPath, err)
	}
	data = append(data, '\n')
	return writeAsset(manifestPath, data, logger)
}
