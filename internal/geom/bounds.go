package geom

import (
	"fmt"
	"iter"
)

// InvalidBoundsError reports bounds whose min corner exceeds max on some axis.
type InvalidBoundsError struct {
	Min, Max Pos
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("invalid bounds: min %s exceeds max %s", e.Min, e.Max)
}

// Bounds is an inclusive axis-aligned box of grid cells.
// The zero value is the single cell at the origin.
type Bounds struct {
	min, max Pos
}

// NewBounds validates min <= max on every axis.
func NewBounds(min, max Pos) (Bounds, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return Bounds{}, &InvalidBoundsError{Min: min, Max: max}
	}
	return Bounds{min: min, max: max}, nil
}

// MustBounds is NewBounds for literals known to be well-formed.
func MustBounds(min, max Pos) Bounds {
	b, err := NewBounds(min, max)
	if err != nil {
		panic(err)
	}
	return b
}

// Span returns the smallest bounds containing both corners, in any order.
func Span(a, b Pos) Bounds {
	return Bounds{
		min: Pos{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		max: Pos{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// Of returns the single-cell bounds at p.
func Of(p Pos) Bounds {
	return Bounds{min: p, max: p}
}

func (b Bounds) Min() Pos { return b.min }
func (b Bounds) Max() Pos { return b.max }

// Size returns the cell count along each axis.
func (b Bounds) Size() Pos {
	return Pos{X: b.max.X - b.min.X + 1, Y: b.max.Y - b.min.Y + 1, Z: b.max.Z - b.min.Z + 1}
}

// Volume returns the number of cells Iterate yields.
func (b Bounds) Volume() int64 {
	s := b.Size()
	return int64(s.X) * int64(s.Y) * int64(s.Z)
}

// Contains reports whether p lies inside b, faces included.
func (b Bounds) Contains(p Pos) bool {
	return p.X >= b.min.X && p.X <= b.max.X &&
		p.Y >= b.min.Y && p.Y <= b.max.Y &&
		p.Z >= b.min.Z && p.Z <= b.max.Z
}

// Intersects reports whether b and o share at least one cell.
func (b Bounds) Intersects(o Bounds) bool {
	return b.min.X <= o.max.X && b.max.X >= o.min.X &&
		b.min.Y <= o.max.Y && b.max.Y >= o.min.Y &&
		b.min.Z <= o.max.Z && b.max.Z >= o.min.Z
}

// Offset translates both corners by distance along d.
func (b Bounds) Offset(d Direction, distance int32) Bounds {
	return Bounds{min: b.min.Offset(d, distance), max: b.max.Offset(d, distance)}
}

// Translate moves both corners by delta.
func (b Bounds) Translate(delta Pos) Bounds {
	return Bounds{min: b.min.Add(delta), max: b.max.Add(delta)}
}

// Iterate yields every cell of b, x outermost, then y, then z.
// The sequence may be ranged over any number of times.
func (b Bounds) Iterate() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for x := b.min.X; x <= b.max.X; x++ {
			for y := b.min.Y; y <= b.max.Y; y++ {
				for z := b.min.Z; z <= b.max.Z; z++ {
					if !yield(Pos{X: x, Y: y, Z: z}) {
						return
					}
				}
			}
		}
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%s..%s]", b.min, b.max)
}
