// Package project provides layout inspection for project trees
package project

import "path/filepath"

// Layout records which platform subtrees a project root carries
type Layout struct {
	Root       string
	HasPubspec bool
	HasAndroid bool
	HasIOS     bool
	HasWindows bool
}

// Inspect examines a project root for platform subtrees. Missing
// subtrees are not an error; generation creates directories on demand.
func Inspect(root string) Layout {
	return Layout{
		Root:       root,
		HasPubspec: fileExists(filepath.Join(root, "pubspec.yaml")),
		HasAndroid: dirExists(filepath.Join(root, "android")),
		HasIOS:     dirExists(filepath.Join(root, "ios")),
		HasWindows: dirExists(filepath.Join(root, "windows")),
	}
}

// Missing lists the platform subtrees absent from the layout
func (l Layout) Missing() []string {
	var missing []string
	if !l.HasAndroid {
		missing = append(missing, "android")
	}
	if !l.HasIOS {
		missing = append(missing, "ios")
	}
	if !l.HasWindows {
		missing = append(missing, "windows")
	}
	return missing
}
