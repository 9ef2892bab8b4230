// Package world is the reference arena host: a sparse material grid,
// a player registry and projectile simulation.
package world

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
)

// ErrOutOfWorld is returned for writes outside the vertical world limits.
var ErrOutOfWorld = errors.New("position outside world")

// Listener receives cell writes made with model.NotifyListeners.
type Listener func(pos geom.Pos, m model.Material)

// Config holds world limits and projectile physics.
type Config struct {
	MinY, MaxY int32

	Gravity        float64 // subtracted from vertical velocity per tick
	Drag           float64 // velocity multiplier per tick
	ProjectileLife int     // ticks before an in-flight projectile expires
}

// DefaultConfig returns the arena defaults.
func DefaultConfig() Config {
	return Config{
		MinY:           DefaultMinY,
		MaxY:           DefaultMaxY,
		Gravity:        0.05,
		Drag:           0.99,
		ProjectileLife: 200,
	}
}

// World represents one arena instance.
type World struct {
	cfg Config
	ids *ObjectIDGenerator

	gridMu    sync.RWMutex
	regions   map[RegionKey]*Region
	listeners []Listener

	entityMu    sync.RWMutex
	players     map[uint32]*model.Player
	projectiles map[uint32]*projectileEntity
}

// New creates an empty world.
func New(cfg Config) *World {
	return &World{
		cfg:         cfg,
		ids:         NewObjectIDGenerator(),
		regions:     make(map[RegionKey]*Region),
		players:     make(map[uint32]*model.Player),
		projectiles: make(map[uint32]*projectileEntity),
	}
}

// IDs returns the world's object ID generator.
func (w *World) IDs() *ObjectIDGenerator { return w.ids }

// Subscribe registers a listener for notifying writes.
func (w *World) Subscribe(l Listener) {
	w.gridMu.Lock()
	defer w.gridMu.Unlock()
	w.listeners = append(w.listeners, l)
}

// InWorld reports whether p is inside the vertical limits.
func (w *World) InWorld(p geom.Pos) bool {
	return p.Y >= w.cfg.MinY && p.Y <= w.cfg.MaxY
}

// SetMaterial replaces the material at pos.
// Listeners are called only when the cell changed and flags include
// model.NotifyListeners.
func (w *World) SetMaterial(pos geom.Pos, m model.Material, flags model.UpdateFlags) error {
	if !w.InWorld(pos) {
		return fmt.Errorf("set material at %s: %w", pos, ErrOutOfWorld)
	}

	w.gridMu.Lock()
	key, local := PosToRegion(pos)
	region, ok := w.regions[key]
	if !ok {
		region = NewRegion(key)
		w.regions[key] = region
	}
	changed := region.set(local, m)
	var listeners []Listener
	if changed && flags&model.NotifyListeners != 0 {
		listeners = w.listeners
	}
	w.gridMu.Unlock()

	for _, l := range listeners {
		l(pos, m)
	}
	return nil
}

// Material returns the material at pos, Air when unset.
func (w *World) Material(pos geom.Pos) model.Material {
	w.gridMu.RLock()
	defer w.gridMu.RUnlock()
	key, local := PosToRegion(pos)
	region, ok := w.regions[key]
	if !ok {
		return model.Air
	}
	return region.get(local)
}

// IsSolid reports whether pos blocks projectiles. Cells outside the world
// count as solid.
func (w *World) IsSolid(pos geom.Pos) bool {
	if !w.InWorld(pos) {
		return true
	}
	return !w.Material(pos).IsAir()
}

// RegionCount returns the number of allocated regions.
func (w *World) RegionCount() int {
	w.gridMu.RLock()
	defer w.gridMu.RUnlock()
	return len(w.regions)
}

// AddPlayer registers p. Returns an error if the ID is already taken.
func (w *World) AddPlayer(p *model.Player) error {
	w.entityMu.Lock()
	defer w.entityMu.Unlock()
	if _, ok := w.players[p.ObjectID()]; ok {
		return fmt.Errorf("adding player %d: already in world", p.ObjectID())
	}
	w.players[p.ObjectID()] = p
	return nil
}

// RemovePlayer unregisters a player. Unknown IDs are ignored.
func (w *World) RemovePlayer(objectID uint32) {
	w.entityMu.Lock()
	defer w.entityMu.Unlock()
	delete(w.players, objectID)
}

// Player returns a player by ObjectID.
func (w *World) Player(objectID uint32) (*model.Player, bool) {
	w.entityMu.RLock()
	defer w.entityMu.RUnlock()
	p, ok := w.players[objectID]
	return p, ok
}

// Players returns all players ordered by ObjectID.
func (w *World) Players() []*model.Player {
	return w.collectPlayers(func(*model.Player) bool { return true })
}

// PlayersIn returns players whose cell lies inside b and that pass pred,
// ordered by ObjectID.
func (w *World) PlayersIn(b geom.Bounds, pred func(*model.Player) bool) []*model.Player {
	return w.collectPlayers(func(p *model.Player) bool {
		return b.Contains(p.BlockPos()) && (pred == nil || pred(p))
	})
}

// collectPlayers snapshots the registry before calling keep, so keep may
// call back into the world.
func (w *World) collectPlayers(keep func(*model.Player) bool) []*model.Player {
	w.entityMu.RLock()
	all := make([]*model.Player, 0, len(w.players))
	for _, p := range w.players {
		all = append(all, p)
	}
	w.entityMu.RUnlock()

	slices.SortFunc(all, func(a, b *model.Player) int {
		return cmp.Compare(a.ObjectID(), b.ObjectID())
	})
	return slices.DeleteFunc(all, func(p *model.Player) bool { return !keep(p) })
}

// PlayerCount returns the number of registered players.
func (w *World) PlayerCount() int {
	w.entityMu.RLock()
	defer w.entityMu.RUnlock()
	return len(w.players)
}
