package model

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/udisondev/arenago/internal/geom"
)

func TestWorldObject_BlockPos(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl64.Vec3
		want geom.Pos
	}{
		{"origin", mgl64.Vec3{0, 0, 0}, geom.P(0, 0, 0)},
		{"inside cell", mgl64.Vec3{1.5, 2.99, 3.01}, geom.P(1, 2, 3)},
		{"negative floors down", mgl64.Vec3{-0.5, -1, -1.25}, geom.P(-1, -1, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := NewWorldObject(1, "obj", tt.pos)
			assert.Equal(t, tt.want, obj.BlockPos())
		})
	}
}

func TestWorldObject_ConcurrentMove(t *testing.T) {
	obj := NewWorldObject(100, "runner", mgl64.Vec3{})

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				obj.SetPosition(mgl64.Vec3{float64(i), float64(j), 0})
				_ = obj.Position()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint32(100), obj.ObjectID())
	assert.Equal(t, "runner", obj.Name())
}
