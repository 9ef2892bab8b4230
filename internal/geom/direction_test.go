package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.Name())
		assert.True(t, ok, d.Name())
		assert.Equal(t, d, got)
	}

	for _, name := range []string{"", "NORTH", "forward", "northeast"} {
		_, ok := ParseDirection(name)
		assert.False(t, ok, "%q should not resolve", name)
	}
}

func TestDirection_Opposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Down: Up, Up: Down,
		North: South, South: North,
		West: East, East: West,
	}
	for d, want := range pairs {
		assert.Equal(t, want, d.Opposite(), d.Name())
		assert.Equal(t, Pos{}, d.Vector().Add(d.Opposite().Vector()), "%s vectors cancel", d)
	}
}

func TestCellOf(t *testing.T) {
	assert.Equal(t, P(0, 0, 0), CellOf(mgl64.Vec3{0.2, 0.9, 0.5}))
	assert.Equal(t, P(-1, 64, -2), CellOf(mgl64.Vec3{-0.1, 64.0, -1.5}))
	assert.Equal(t, P(-2, 0, 0), CellOf(mgl64.Vec3{-2, 0, 0}))
}
