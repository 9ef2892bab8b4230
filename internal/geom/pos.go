package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Pos addresses one cell of the world grid.
type Pos struct {
	X, Y, Z int32
}

// P is shorthand for Pos{x, y, z}.
func P(x, y, z int32) Pos {
	return Pos{X: x, Y: y, Z: z}
}

// Add returns p translated by o.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Offset moves p by distance cells along d.
func (p Pos) Offset(d Direction, distance int32) Pos {
	v := d.Vector()
	return Pos{X: p.X + v.X*distance, Y: p.Y + v.Y*distance, Z: p.Z + v.Z*distance}
}

// Center returns the world-space center of the cell.
func (p Pos) Center() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X) + 0.5, float64(p.Y) + 0.5, float64(p.Z) + 0.5}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// CellOf returns the cell containing the world-space point v.
func CellOf(v mgl64.Vec3) Pos {
	return Pos{X: floor(v[0]), Y: floor(v[1]), Z: floor(v[2])}
}

func floor(f float64) int32 {
	i := int32(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
