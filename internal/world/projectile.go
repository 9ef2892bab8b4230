package world

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
)

// projectileEntity is a projectile in flight.
type projectileEntity struct {
	*model.WorldObject
	spec     model.Projectile
	velocity mgl64.Vec3
	age      int
}

// ProjectileState is a read-only snapshot of a projectile in flight.
type ProjectileState struct {
	ID       uint32
	Spec     model.Projectile
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Age      int
}

// Impact reports a projectile leaving the simulation.
type Impact struct {
	ID         uint32
	Projectile model.Projectile
	Position   mgl64.Vec3
	Cell       geom.Pos
	Expired    bool // true when lifetime ran out before hitting anything
}

// Spawn registers a projectile and returns its ObjectID.
func (w *World) Spawn(p model.Projectile) (uint32, error) {
	id := w.ids.NextProjectileID()
	e := &projectileEntity{
		WorldObject: model.NewWorldObject(id, p.Payload, p.Origin),
		spec:        p,
		velocity:    p.Velocity,
	}

	w.entityMu.Lock()
	w.projectiles[id] = e
	w.entityMu.Unlock()
	return id, nil
}

// Projectiles returns projectiles in flight ordered by ObjectID.
func (w *World) Projectiles() []ProjectileState {
	w.entityMu.RLock()
	defer w.entityMu.RUnlock()

	out := make([]ProjectileState, 0, len(w.projectiles))
	for id, e := range w.projectiles {
		out = append(out, ProjectileState{
			ID:       id,
			Spec:     e.spec,
			Position: e.Position(),
			Velocity: e.velocity,
			Age:      e.age,
		})
	}
	slices.SortFunc(out, func(a, b ProjectileState) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// StepProjectiles advances every projectile by one tick and returns the
// ones that hit a solid cell or expired, ordered by ObjectID.
func (w *World) StepProjectiles() []Impact {
	w.entityMu.RLock()
	ids := make([]uint32, 0, len(w.projectiles))
	for id := range w.projectiles {
		ids = append(ids, id)
	}
	w.entityMu.RUnlock()
	slices.Sort(ids)

	var impacts []Impact
	for _, id := range ids {
		w.entityMu.RLock()
		e, ok := w.projectiles[id]
		w.entityMu.RUnlock()
		if !ok {
			continue
		}

		pos := e.Position().Add(e.velocity)
		e.SetPosition(pos)
		e.velocity = e.velocity.Mul(w.cfg.Drag)
		e.velocity[1] -= w.cfg.Gravity * e.spec.Gravity
		e.age++

		cell := geom.CellOf(pos)
		hit := w.IsSolid(cell)
		if !hit && e.age < w.cfg.ProjectileLife {
			continue
		}

		w.entityMu.Lock()
		delete(w.projectiles, id)
		w.entityMu.Unlock()

		impacts = append(impacts, Impact{
			ID:         id,
			Projectile: e.spec,
			Position:   pos,
			Cell:       cell,
			Expired:    !hit,
		})
	}
	return impacts
}

// ProjectileCount returns the number of projectiles in flight.
func (w *World) ProjectileCount() int {
	w.entityMu.RLock()
	defer w.entityMu.RUnlock()
	return len(w.projectiles)
}
