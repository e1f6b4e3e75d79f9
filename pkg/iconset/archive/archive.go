// Package archive bundles generated asset trees into portable
// containers for handoff and CI artifacts. Formats register under
// filename extensions; the compressed variants wrap the plain tar
// layout.
package archive

import (
	"fmt"
	"io"
	"sort"
	"strings"

	iconerrors "github.com/luli-reader/icongen/pkg/iconset/errors"
)

// Format assembles a file tree into one archive container
type Format interface {
	// Name returns the canonical format name
	Name() string

	// Extensions lists the filename suffixes selecting this format
	Extensions() []string

	// Write streams the listed root-relative paths into w
	Write(w io.Writer, root string, paths []string) error
}

// Registry maps filename extensions to format implementations
var Registry = make(map[string]Format)

// Register registers a format under each of its extensions
func Register(f Format) {
	for _, ext := range f.Extensions() {
		Registry[ext] = f
	}
}

// ForPath picks the format whose extension matches a destination
// filename. Longer extensions win, so name.tar.gz never matches a
// bare .gz handler.
func ForPath(dest string) (Format, error) {
	lower := strings.ToLower(dest)

	exts := make([]string, 0, len(Registry))
	for ext := range Registry {
		exts = append(exts, ext)
	}
	sort.Slice(exts, func(i, j int) bool {
		if len(exts[i]) != len(exts[j]) {
			return len(exts[i]) > len(exts[j])
		}
		return exts[i] < exts[j]
	})

	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return Registry[ext], nil
		}
	}

	return nil, fmt.Errorf("%w: %q (supported: %s)",
		iconerrors.ErrUnknownArchiveFormat, dest, strings.Join(Extensions(), ", "))
}

// Extensions returns every registered extension in sorted order
func Extensions() []string {
	exts := make([]string, 0, len(Registry))
	for ext := range Registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
