package world

import "github.com/udisondev/arenago/internal/model"

// Region holds the non-air cells of one 16×16×16 block of the grid.
type Region struct {
	key   RegionKey
	cells map[uint16]model.Material
}

// NewRegion creates an empty region.
func NewRegion(key RegionKey) *Region {
	return &Region{
		key:   key,
		cells: make(map[uint16]model.Material),
	}
}

// Key returns the region coordinates.
func (r *Region) Key() RegionKey { return r.key }

// Len returns the number of non-air cells.
func (r *Region) Len() int { return len(r.cells) }

// get returns the material at a local index, Air when unset.
func (r *Region) get(local uint16) model.Material {
	if m, ok := r.cells[local]; ok {
		return m
	}
	return model.Air
}

// set stores m at a local index and reports whether the cell changed.
// Air clears the cell.
func (r *Region) set(local uint16, m model.Material) bool {
	if r.get(local).Equal(m) {
		return false
	}
	if m.IsAir() {
		delete(r.cells, local)
	} else {
		r.cells[local] = m
	}
	return true
}
