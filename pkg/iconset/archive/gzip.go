package archive

import (
	"compress/gzip"
	"fmt"
	"io"
)

func init() {
	Register(NewGzipFormat())
}

// GzipFormat writes gzip-compressed tar archives
type GzipFormat struct {
	tar *TarFormat
}

// NewGzipFormat creates a new gzipped tar format
func NewGzipFormat() *GzipFormat {
	return &GzipFormat{tar: NewTarFormat()}
}

func (f *GzipFormat) Name() string { return "tar.gz" }

func (f *GzipFormat) Extensions() []string { return []string{".tar.gz", ".tgz"} }

func (f *GzipFormat) Write(w io.Writer, root string, paths []string) error {
	gw := gzip.NewWriter(w)

	if err := f.tar.Write(gw, root, paths); err != nil {
		gw.Close()
		return err
	}

	if err := gw.Close(); err != nil {
		return fmt.Errorf("closing gzip writer: %w", err)
	}
	return nil
}
