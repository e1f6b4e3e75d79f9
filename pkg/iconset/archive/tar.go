package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func init() {
	Register(NewTarFormat())
}

// TarFormat writes plain POSIX tar archives
type TarFormat struct{}

// NewTarFormat creates a new tar format
func NewTarFormat() *TarFormat {
	return &TarFormat{}
}

func (f *TarFormat) Name() string { return "tar" }

func (f *TarFormat) Extensions() []string { return []string{".tar"} }

// Write streams each listed file into a tar archive. Entry names keep
// the root-relative forward-slash paths so the archive unpacks into
// the same tree shape on any platform.
func (f *TarFormat) Write(w io.Writer, root string, paths []string) error {
	tw := tar.NewWriter(w)

	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(full)
		if err != nil {
			return fmt.Errorf("stat %s: %w", rel, err)
		}

		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}

		header := &tar.Header{
			Name:    rel,
			Mode:    0o644,
			Size:    int64(len(data)),
			ModTime: info.ModTime(),
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("writing tar header for %s: %w", rel, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("writing tar data for %s: %w", rel, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar writer: %w", err)
	}
	return nil
}
