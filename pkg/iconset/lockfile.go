package iconset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"

	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
)

// LockFile records what a generation run wrote so later runs can
// detect drift without re-reading project configuration
type LockFile struct {
	Format        string                 `json:"format"`
	FormatVersion string                 `json:"format_version"`
	Glyph         string                 `json:"glyph,omitempty"`
	Source        string                 `json:"source,omitempty"`
	SourceDark    string                 `json:"source_dark,omitempty"`
	Palettes      map[string]PaletteInfo `json:"palettes,omitempty"`
	Build         *BuildInfo             `json:"build,omitempty"`
	Assets        []AssetInfo            `json:"assets"`
}

// PaletteInfo records the colors a scheme was rendered with
type PaletteInfo struct {
	Icon       string `json:"icon"`
	Background string `json:"background"`
}

// BuildInfo records tool and host details for a run
type BuildInfo struct {
	Tool          string       `json:"tool"`
	ToolVersion   string       `json:"tool_version"`
	Timestamp     string       `json:"timestamp"`
	Deterministic bool         `json:"deterministic"`
	Platform      PlatformInfo `json:"platform"`
}

// PlatformInfo identifies the machine a run executed on
type PlatformInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
	Host string `json:"host"`
}

// AssetInfo is one written file: its root-relative path and the
// prefixed checksum of the bytes on disk
type AssetInfo struct {
	Path     string `json:"path"`
	Platform string `json:"platform"`
	Scheme   string `json:"scheme"`
	Size     int    `json:"size"`
	Checksum string `json:"checksum"`
}

// newBuildInfo captures tool and host details. SOURCE_DATE_EPOCH pins
// the timestamp and strips the hostname for reproducible runs.
func newBuildInfo() *BuildInfo {
	var timestamp string
	var host string
	deterministic := false

	if epochStr := os.Getenv(EnvSourceEpoch); epochStr != "" {
		deterministic = true
		if secs, err := strconv.ParseInt(epochStr, 10, 64); err == nil {
			timestamp = time.Unix(secs, 0).UTC().Format(time.RFC3339)
		} else if epoch, err := time.Parse(time.RFC3339, epochStr); err == nil {
			timestamp = epoch.UTC().Format(time.RFC3339)
		} else {
			timestamp = time.Now().UTC().Format(time.RFC3339)
			deterministic = false
		}
		host = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	} else {
		hostname, _ := os.Hostname()
		timestamp = time.Now().UTC().Format(time.RFC3339)
		host = fmt.Sprintf("%s/%s %s", runtime.GOOS, runtime.GOARCH, hostname)
	}

	return &BuildInfo{
		Tool:          ToolName,
		ToolVersion:   ToolVersion,
		Timestamp:     timestamp,
		Deterministic: deterministic,
		Platform: PlatformInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
			Host: host,
		},
	}
}

// WriteLockFile serializes the lock file to the project root
func WriteLockFile(root string, lock *LockFile, logger hclog.Logger) error {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", LockFileName, err)
	}
	data = append(data, '\n')

	path := filepath.Join(root, LockFileName)
	if err := writeAsset(path, data, logger); err != nil {
		return err
	}

	logger.Debug("🔒 Lock file written", "path", path, "assets", len(lock.Assets))
	return nil
}

// ReadLockFile loads the lock file from the project root
func ReadLockFile(root string) (*LockFile, error) {
	path := filepath.Join(root, LockFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", iconerrors.ErrLockFileMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var lock LockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &lock, nil
}
