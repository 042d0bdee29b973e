package assets

import "github.com/consolehq/console/core/types"

// Variants holds the same-id asset records the cache retains at once. The
// override takes precedence over every other stored variant; in the common
// path Others is empty, but legacy data may still produce shadowed copies.
type Variants struct {
	Override *types.Asset
	Others   []*types.Asset
}

// add appends an asset, making it the override if none is set yet.
func (v *Variants) add(asset *types.Asset) {
	if v.Override == nil {
		v.Override = asset
		return
	}
	v.Others = append(v.Others, asset)
}

// byLocation returns the variant defined in the given location, or nil.
func (v *Variants) byLocation(location types.AssetLocation) *types.Asset {
	if v.Override != nil && v.Override.DefinedIn == location {
		return v.Override
	}
	for _, asset := range v.Others {
		if asset.DefinedIn == location {
			return asset
		}
	}
	return nil
}
