//go:build !windows
// +build !windows

package iconset

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
)

// atomicReplace swaps a freshly written file into its final path.
// On Unix, os.Rename is already atomic, so this is a simple wrapper.
func atomicReplace(sourcePath, destPath string, logger hclog.Logger) error {
	logger.Debug("Performing atomic file replacement",
		"source", sourcePath,
		"dest", destPath)

	if err := os.Rename(sourcePath, destPath); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
