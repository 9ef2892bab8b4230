package world

import "github.com/udisondev/arenago/internal/geom"

const (
	// ShiftBy - shift by N bits for 2^N cells per region axis (2^4 = 16)
	ShiftBy = 4

	// RegionSize in cells along each axis
	RegionSize = 1 << ShiftBy

	regionMask = RegionSize - 1
)

// Vertical world limits (inclusive).
const (
	DefaultMinY = -64
	DefaultMaxY = 319
)

// RegionKey addresses one region of the grid.
type RegionKey struct {
	RX, RY, RZ int32
}

// PosToRegion splits a cell position into its region and the cell index
// inside that region.
// Arithmetic shift keeps negative coordinates in the right region.
func PosToRegion(p geom.Pos) (RegionKey, uint16) {
	key := RegionKey{RX: p.X >> ShiftBy, RY: p.Y >> ShiftBy, RZ: p.Z >> ShiftBy}
	local := uint16((p.X&regionMask)<<(2*ShiftBy) | (p.Y&regionMask)<<ShiftBy | p.Z&regionMask)
	return key, local
}
