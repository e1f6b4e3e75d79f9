package archive

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

func init() {
	Register(NewBzip2Format())
}

// Bzip2Format writes bzip2-compressed tar archives
type Bzip2Format struct {
	tar *TarFormat
}

// NewBzip2Format creates a new bzip2 tar format
func NewBzip2Format() *Bzip2Format {
	return &Bzip2Format{tar: NewTarFormat()}
}

func (f *Bzip2Format) Name() string { return "tar.bz2" }

func (f *Bzip2Format) Extensions() []string { return []string{".tar.bz2", ".tbz2"} }

func (f *Bzip2Format) Write(w io.Writer, root string, paths []string) error {
	bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: 9})
	if err != nil {
		return fmt.Errorf("creating bzip2 writer: %w", err)
	}

	if err := f.tar.Write(bw, root, paths); err != nil {
		bw.Close()
		return err
	}

	if err := bw.Close(); err != nil {
		return fmt.Errorf("closing bzip2 writer: %w", err)
	}
	return nil
}
