// Package door implements proximity-triggered arena doors.
//
// A door owns a footprint of grid cells that it fills with either its open
// or its closed material, plus an entry detection zone watched every tick.
// Any qualifying participant in the entry zone opens the door; once the zone
// is empty the door waits HoldTicks ticks before closing again so players
// crossing the zone edge do not make it flicker.
package door

import (
	"log/slog"

	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
)

// HoldTicks is how many empty ticks an open door waits before it closes.
const HoldTicks = 2

// World is the part of the host world a door reads and writes.
type World interface {
	// PlayersIn returns every player standing inside b that passes pred.
	PlayersIn(b geom.Bounds, pred func(*model.Player) bool) []*model.Player
	// SetMaterial replaces one cell. Errors are best-effort.
	SetMaterial(pos geom.Pos, m model.Material, flags model.UpdateFlags) error
}

// AccessPolicy decides whether a participant may open a door.
type AccessPolicy interface {
	CanOpen(d *Door, p *model.Player) bool
}

// AccessFunc adapts a function to AccessPolicy.
type AccessFunc func(d *Door, p *model.Player) bool

// CanOpen calls f(d, p).
func (f AccessFunc) CanOpen(d *Door, p *model.Player) bool { return f(d, p) }

// Transition reports what a Tick did to the door.
type Transition uint8

const (
	Unchanged Transition = iota
	Opened
	Closed
)

func (t Transition) String() string {
	switch t {
	case Opened:
		return "opened"
	case Closed:
		return "closed"
	default:
		return "unchanged"
	}
}

// Config carries the resolved geometry and materials of a door.
type Config struct {
	Name          string
	Bounds        geom.Bounds
	Detection     geom.Bounds
	ExitDetection geom.Bounds
	Facing        geom.Direction
	Open          model.Material
	Closed        model.Material
	Team          model.TeamRef
}

// Door is a proximity-triggered barrier.
// Not safe for concurrent use: all calls happen on the simulation goroutine.
type Door struct {
	cfg    Config
	world  World
	access AccessPolicy

	open      bool
	openTicks int
}

// New creates a door in the closed state without touching the world.
// Call Close to write the initial materials.
func New(world World, access AccessPolicy, cfg Config) *Door {
	return &Door{
		cfg:    cfg,
		world:  world,
		access: access,
	}
}

// Name returns the template region name the door was built from.
func (d *Door) Name() string { return d.cfg.Name }

// Bounds returns the footprint: every cell here is rewritten on open and close.
func (d *Door) Bounds() geom.Bounds { return d.cfg.Bounds }

// DetectionBounds returns the entry zone watched by Tick.
func (d *Door) DetectionBounds() geom.Bounds { return d.cfg.Detection }

// ExitDetectionBounds returns the zone from the footprint to the far detection
// edge. Tick never reads it; access policies use it to let players out.
func (d *Door) ExitDetectionBounds() geom.Bounds { return d.cfg.ExitDetection }

// Facing returns the direction the door faces.
func (d *Door) Facing() geom.Direction { return d.cfg.Facing }

// Team returns the owning team, AnyTeam for public doors.
func (d *Door) Team() model.TeamRef { return d.cfg.Team }

// OpenMaterial returns the material written while the door is open.
func (d *Door) OpenMaterial() model.Material { return d.cfg.Open }

// ClosedMaterial returns the material written while the door is closed.
func (d *Door) ClosedMaterial() model.Material { return d.cfg.Closed }

// IsOpen reports the current state.
func (d *Door) IsOpen() bool { return d.open }

// OpenTicks returns the remaining hold ticks.
func (d *Door) OpenTicks() int { return d.openTicks }

// Tick runs one detection step.
//
// Occupied entry zone: open if closed and restart the hold at HoldTicks.
// Empty zone: close once the hold has run out, otherwise count it down.
func (d *Door) Tick() Transition {
	visitors := d.world.PlayersIn(d.cfg.Detection, func(p *model.Player) bool {
		return d.access.CanOpen(d, p)
	})

	if len(visitors) > 0 {
		transition := Unchanged
		if !d.open {
			d.Open()
			transition = Opened
		}
		d.openTicks = HoldTicks
		return transition
	}

	if d.openTicks == 0 {
		wasOpen := d.open
		d.Close()
		if wasOpen {
			return Closed
		}
		return Unchanged
	}

	d.openTicks--
	return Unchanged
}

// Open fills the footprint with the open material.
func (d *Door) Open() {
	d.fill(d.cfg.Open, nil)
	d.open = true
}

// Close fills the footprint with the closed material.
func (d *Door) Close() {
	d.fill(d.cfg.Closed, nil)
	d.open = false
}

// Remove clears the footprint to air when the door leaves the map.
// Cells for which keep returns true are left alone.
func (d *Door) Remove(keep func(geom.Pos) bool) {
	d.fill(model.Air, keep)
	d.open = false
	d.openTicks = 0
}

// fill writes m into every footprint cell not kept. Rejected writes are not retried.
func (d *Door) fill(m model.Material, keep func(geom.Pos) bool) {
	failed := 0
	for pos := range d.cfg.Bounds.Iterate() {
		if keep != nil && keep(pos) {
			continue
		}
		if err := d.world.SetMaterial(pos, m, model.DoorUpdateFlags); err != nil {
			failed++
		}
	}
	if failed > 0 {
		slog.Debug("door write rejected",
			"door", d.cfg.Name,
			"material", m.Name,
			"failed", failed)
	}
}
