//go:build windows
// +build windows

package iconset

import (
	"fmt"
	"image"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/tc-hib/winres"
)

// appIconResourceID is the icon group identifier the runner template
// declares in its resource script (IDI_APP_ICON)
const appIconResourceID = 101

// EmbedExeIcon replaces the main icon group of an already built
// runner executable with freshly rendered frames. Writing the icon
// into the PE resource tree means the shell shows the new icon
// without a rebuild of the runner.
func EmbedExeIcon(exePath string, frames []*image.RGBA, logger hclog.Logger) error {
	logger.Info("🪟 Embedding icon group into executable",
		"exe", exePath,
		"frames", len(frames),
		"resource_id", appIconResourceID)

	images := make([]image.Image, len(frames))
	for i, frame := range frames {
		images[i] = frame
	}
	icon, err := winres.NewIconFromImages(images)
	if err != nil {
		return fmt.Errorf("building icon group: %w", err)
	}

	// Load existing resources from the EXE
	inputFile, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to open EXE for reading: %w", err)
	}

	rs, err := winres.LoadFromEXE(inputFile)
	if err != nil {
		// File has no resource section yet
		logger.Debug("Creating new resource set (no existing resources)")
		rs = &winres.ResourceSet{}
	} else {
		logger.Debug("Loaded existing resources from EXE")
	}

	if err := inputFile.Close(); err != nil {
		return fmt.Errorf("failed to close input file: %w", err)
	}

	if err := rs.SetIcon(winres.ID(appIconResourceID), icon); err != nil {
		return fmt.Errorf("failed to set icon resource: %w", err)
	}

	// Rewrite the EXE through a temp file. Files are closed explicitly
	// before the replace because Windows refuses to move open files.
	inputFile2, err := os.Open(exePath)
	if err != nil {
		return fmt.Errorf("failed to open EXE for rewriting: %w", err)
	}

	tempPath := fmt.Sprintf("%s.tmp.%d", exePath, os.Getpid())
	outputFile, err := os.Create(tempPath)
	if err != nil {
		inputFile2.Close()
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}

	logger.Debug("Writing patched executable", "temp", tempPath)
	if err := rs.WriteToEXE(outputFile, inputFile2); err != nil {
		outputFile.Close()
		inputFile2.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write resources to EXE: %w", err)
	}

	if err := outputFile.Close(); err != nil {
		inputFile2.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if err := inputFile2.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close input file: %w", err)
	}

	if err := atomicReplace(tempPath, exePath, logger); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace EXE atomically: %w", err)
	}

	logger.Info("✅ Icon group embedded", "exe", exePath, "frames", len(frames))
	return nil
}
