//go:build !windows
// +build !windows

package iconset

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"
)

// EmbedExeIcon is a stub for non-Windows platforms. The generated
// app_icon.ico still lands in the resource directory everywhere; only
// patching a built executable needs a Windows host.
func EmbedExeIcon(exePath string, frames []*image.RGBA, logger hclog.Logger) error {
	return fmt.Errorf("PE icon embedding is only supported on Windows")
}
