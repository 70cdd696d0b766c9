package render

import "errors"

var (
	// ErrMissingDirectionalAsset means one of the Up/Down/Left/Right
	// sub-assets of an animation set is absent.
	ErrMissingDirectionalAsset = errors.New("render: missing directional asset")
	// ErrInvalidCellSize means a cell size cannot partition its texture.
	ErrInvalidCellSize = errors.New("render: invalid cell size")
	// ErrUnknownGID means a tile gid falls in no tileset.
	ErrUnknownGID = errors.New("render: gid matches no tileset")
	// ErrLookup means a catalog key or activity was never registered.
	ErrLookup = errors.New("render: lookup failed")
	// ErrRegionIndex means an atlas cell index is out of range.
	ErrRegionIndex = errors.New("render: region index out of range")
)
