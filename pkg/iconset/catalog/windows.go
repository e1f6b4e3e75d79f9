package catalog

import "path"

// Windows runner resource layout
const (
	WindowsResourceDir = "windows/runner/resources"
	WindowsIconFile    = "app_icon.ico"
)

// WindowsIcoSizes is the frame ladder bundled into the runner's ICO
// container, smallest first
var WindowsIcoSizes = []int{16, 24, 32, 48, 64, 128, 256}

// WindowsIconPath returns the project-relative runner icon path
func WindowsIconPath() string {
	return path.Join(WindowsResourceDir, WindowsIconFile)
}
