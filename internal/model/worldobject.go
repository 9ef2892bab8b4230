package model

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/arenago/internal/geom"
)

// WorldObject — базовый тип для всех объектов арены.
// ObjectID неизменяем, позиция защищена mutex.
type WorldObject struct {
	objectID uint32
	name     string
	position mgl64.Vec3

	mu sync.RWMutex
}

// NewWorldObject создаёт объект с заданной позицией.
func NewWorldObject(objectID uint32, name string, pos mgl64.Vec3) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		position: pos,
	}
}

// ObjectID returns the unique object ID (immutable).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name returns the display name.
func (w *WorldObject) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// Position returns the world-space position.
func (w *WorldObject) Position() mgl64.Vec3 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.position
}

// SetPosition moves the object.
func (w *WorldObject) SetPosition(pos mgl64.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.position = pos
}

// BlockPos returns the grid cell the object stands in.
func (w *WorldObject) BlockPos() geom.Pos {
	return geom.CellOf(w.Position())
}
