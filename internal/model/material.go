package model

import (
	"maps"
	"slices"
	"strings"
)

// Material is what occupies one grid cell: an identifier plus state properties.
type Material struct {
	Name       string
	Properties map[string]string
}

// Air is the empty material.
var Air = Material{Name: "air"}

// NewMaterial copies props so the caller may reuse its map.
func NewMaterial(name string, props map[string]string) Material {
	m := Material{Name: name}
	if len(props) > 0 {
		m.Properties = maps.Clone(props)
	}
	return m
}

// IsAir reports whether m is the empty material.
func (m Material) IsAir() bool {
	return m.Name == "" || m.Name == Air.Name
}

// Equal compares name and properties.
func (m Material) Equal(o Material) bool {
	return m.Name == o.Name && maps.Equal(m.Properties, o.Properties)
}

// String renders m as name[k=v,...] with sorted keys.
func (m Material) String() string {
	if len(m.Properties) == 0 {
		return m.Name
	}
	keys := slices.Sorted(maps.Keys(m.Properties))
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(m.Properties[k])
	}
	b.WriteByte(']')
	return b.String()
}

// UpdateFlags control how a cell write propagates. Opaque to the core.
type UpdateFlags uint16

const (
	NotifyNeighbors UpdateFlags = 1 << iota
	NotifyListeners
	NoRedraw
	RedrawOnMainThread
	ForceState
	SkipDrops
	Moved
)

// DoorUpdateFlags are used for every door footprint write.
const DoorUpdateFlags = NotifyListeners | RedrawOnMainThread | ForceState | SkipDrops // 0b0111010
