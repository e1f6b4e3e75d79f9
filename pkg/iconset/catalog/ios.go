package catalog

import (
	"path"
	"strings"

	"github.com/luli-reader/icongen/pkg/iconset/render"
	"github.com/luli-reader/icongen/pkg/utils/slotspec"
)

// iOS asset catalog layout
const (
	IOSAssetRoot   = "ios/Runner/Assets.xcassets"
	IOSAppIconSet  = "AppIcon.appiconset"
	IOSDarkIconSet = "AppIcon-Dark.appiconset"

	// IOSDarkSuffix is appended before the extension for assets in the
	// dark icon set
	IOSDarkSuffix = "-dark"
)

// IOSSlots lists the fifteen appiconset slots in catalog order. Slot
// filenames and pixel sizes derive from these point/scale pairs.
var IOSSlots = []slotspec.Slot{
	{Points: 20, Scale: 1},
	{Points: 20, Scale: 2},
	{Points: 20, Scale: 3},
	{Points: 29, Scale: 1},
	{Points: 29, Scale: 2},
	{Points: 29, Scale: 3},
	{Points: 40, Scale: 1},
	{Points: 40, Scale: 2},
	{Points: 40, Scale: 3},
	{Points: 60, Scale: 2},
	{Points: 60, Scale: 3},
	{Points: 76, Scale: 1},
	{Points: 76, Scale: 2},
	{Points: 83.5, Scale: 2},
	{Points: 1024, Scale: 1},
}

// IOSAssets enumerates appiconset slots for a scheme. Light assets
// fill AppIcon.appiconset; dark renders land in AppIcon-Dark.appiconset
// under a -dark filename.
func IOSAssets(scheme render.Scheme) []Asset {
	assets := make([]Asset, 0, len(IOSSlots))
	for _, slot := range IOSSlots {
		name := slot.String()
		set := IOSAppIconSet
		if scheme == render.SchemeDark {
			set = IOSDarkIconSet
			name = DarkSlotName(name)
		}
		assets = append(assets, Asset{
			Platform: PlatformIOS,
			Scheme:   scheme,
			RelPath:  path.Join(IOSAssetRoot, set, name),
			Size:     slot.Pixels(),
		})
	}
	return assets
}

// DarkSlotName rewrites a slot filename for the dark icon set
func DarkSlotName(name string) string {
	return strings.TrimSuffix(name, slotspec.NameSuffix) + IOSDarkSuffix + slotspec.NameSuffix
}

// IOSAppIconDir returns the light icon set directory
func IOSAppIconDir() string {
	return path.Join(IOSAssetRoot, IOSAppIconSet)
}

// IOSDarkIconDir returns the dark icon set directory
func IOSDarkIconDir() string {
	return path.Join(IOSAssetRoot, IOSDarkIconSet)
}
