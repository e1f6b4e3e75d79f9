// Package catalog holds the fixed per-platform icon slot tables and
// the asset tree layout they map into. Paths are project-root relative
// with forward slashes; callers convert to native separators when
// touching the filesystem.
package catalog

import (
	"fmt"
	"strings"

	"github.com/luli-reader/icongen/pkg/iconset/errors"
	"github.com/luli-reader/icongen/pkg/iconset/render"
)

// Platform identifies an asset tree layout
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWindows Platform = "windows"
)

// Platforms lists the supported platforms in generation order
var Platforms = []Platform{PlatformAndroid, PlatformIOS, PlatformWindows}

// Asset is one renderable output slot: a deterministic path under the
// project root plus the pixel size and scheme to render for it
type Asset struct {
	Platform Platform
	Scheme   render.Scheme
	RelPath  string
	Size     int
}

// ParsePlatform normalizes a single platform name
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android":
		return PlatformAndroid, nil
	case "ios":
		return PlatformIOS, nil
	case "windows", "win":
		return PlatformWindows, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownPlatform, s)
	}
}

// ParsePlatforms expands a comma separated platform list. An empty
// string or "all" selects every platform.
func ParsePlatforms(csv string) ([]Platform, error) {
	trimmed := strings.TrimSpace(csv)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		return append([]Platform{}, Platforms...), nil
	}

	var out []Platform
	seen := make(map[Platform]bool)
	for _, part := range strings.Split(trimmed, ",") {
		p, err := ParsePlatform(part)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}

// Assets enumerates the PNG slots for a platform and scheme. Windows
// yields no PNG slots; its single ICO container is assembled separately.
func Assets(platform Platform, scheme render.Scheme) ([]Asset, error) {
	switch platform {
	case PlatformAndroid:
		return AndroidAssets(scheme), nil
	case PlatformIOS:
		return IOSAssets(scheme), nil
	case PlatformWindows:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownPlatform, platform)
	}
}

// AllAssets enumerates every PNG slot across the given platforms in
// catalog order, light scheme before dark
func AllAssets(platforms []Platform) ([]Asset, error) {
	var out []Asset
	for _, platform := range platforms {
		for _, scheme := range render.Schemes {
			assets, err := Assets(platform, scheme)
			if err != nil {
				return nil, err
			}
			out = append(out, assets...)
		}
	}
	return out, nil
}
