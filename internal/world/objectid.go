package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for arena entities.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: Players
//	0x20000000 - 0x2FFFFFFF: Projectiles
type ObjectIDGenerator struct {
	nextPlayerID     atomic.Uint32
	nextProjectileID atomic.Uint32
}

const (
	playerIDBase     = 0x10000000
	projectileIDBase = 0x20000000
)

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextPlayerID.Store(playerIDBase)
	gen.nextProjectileID.Store(projectileIDBase)
	return gen
}

// NextPlayerID generates next unique player object ID.
func (g *ObjectIDGenerator) NextPlayerID() uint32 {
	return g.nextPlayerID.Add(1)
}

// NextProjectileID generates next unique projectile object ID.
func (g *ObjectIDGenerator) NextProjectileID() uint32 {
	return g.nextProjectileID.Add(1)
}

// IsProjectileID reports whether id falls in the projectile range.
func IsProjectileID(id uint32) bool {
	return id >= projectileIDBase && id < projectileIDBase+0x10000000
}
