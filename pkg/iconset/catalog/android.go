package catalog

import (
	"path"
	"strings"

	"github.com/luli-reader/icongen/pkg/iconset/render"
)

// Android resource tree layout
const (
	AndroidResRoot      = "android/app/src/main/res"
	AndroidLauncherFile = "ic_launcher.png"
	AndroidNightInfix   = "mipmap-night"
)

// Density is one Android launcher density bucket
type Density struct {
	Qualifier string
	Size      int
}

// AndroidDensities maps mipmap qualifiers to launcher pixel sizes,
// smallest bucket first
var AndroidDensities = []Density{
	{Qualifier: "mipmap-mdpi", Size: 48},
	{Qualifier: "mipmap-hdpi", Size: 72},
	{Qualifier: "mipmap-xhdpi", Size: 96},
	{Qualifier: "mipmap-xxhdpi", Size: 144},
	{Qualifier: "mipmap-xxxhdpi", Size: 192},
}

// AndroidAssets enumerates launcher slots for a scheme. Dark assets
// land in the -night resource qualifier directories so the launcher
// picks them up in night mode.
func AndroidAssets(scheme render.Scheme) []Asset {
	assets := make([]Asset, 0, len(AndroidDensities))
	for _, d := range AndroidDensities {
		qualifier := d.Qualifier
		if scheme == render.SchemeDark {
			qualifier = strings.Replace(qualifier, "mipmap", AndroidNightInfix, 1)
		}
		assets = append(assets, Asset{
			Platform: PlatformAndroid,
			Scheme:   scheme,
			RelPath:  path.Join(AndroidResRoot, qualifier, AndroidLauncherFile),
			Size:     d.Size,
		})
	}
	return assets
}
