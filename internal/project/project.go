// Package project locates and inspects the mobile project tree that
// icon assets are written into
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoProject is returned when no mobile project root can be located
var ErrNoProject = errors.New("❌ no mobile project root found")

// EnvProjectRoot overrides project discovery when set
const EnvProjectRoot = "ICONGEN_PROJECT_ROOT"

// Resolve returns the project root directory. An explicit path wins,
// then the ICONGEN_PROJECT_ROOT environment variable, then an upward
// walk from the working directory looking for a mobile project layout.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		return checkRoot(explicit)
	}

	if envRoot := os.Getenv(EnvProjectRoot); envRoot != "" {
		return checkRoot(envRoot)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return ResolveFrom(cwd)
}

// ResolveFrom walks upward from start until a directory looks like a
// mobile project root
func ResolveFrom(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if LooksLikeProject(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched from %s upward", ErrNoProject, start)
		}
		dir = parent
	}
}

// LooksLikeProject reports whether dir carries a mobile project layout:
// a pubspec.yaml, or android and ios subtrees side by side
func LooksLikeProject(dir string) bool {
	if fileExists(filepath.Join(dir, "pubspec.yaml")) {
		return true
	}
	return dirExists(filepath.Join(dir, "android")) && dirExists(filepath.Join(dir, "ios"))
}

// checkRoot validates an explicitly named root
func checkRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}
	return abs, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
