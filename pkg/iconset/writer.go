package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// encodePNG serializes an image to PNG bytes
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// writeAsset writes data to path through a temp file and atomic
// replacement, creating parent directories as needed. A partially
// written asset never lands under its final name.
func writeAsset(path string, data []byte, logger hclog.Logger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.FileMode(DirPerms)); err != nil {
		return fmt.Errorf("creating asset directory %s: %w", dir, err)
	}

	tempPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tempPath, data, os.FileMode(FilePerms)); err != nil {
		return fmt.Errorf("writing %s: %w", tempPath, err)
	}

	if err := atomicReplace(tempPath, path, logger); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
