package arena

import (
	"github.com/udisondev/arenago/internal/game/door"
	"github.com/udisondev/arenago/internal/world"
)

// EventType names an arena event on the wire.
type EventType string

const (
	EventDoorOpened        EventType = "door_opened"
	EventDoorClosed        EventType = "door_closed"
	EventProjectileSpawned EventType = "projectile_spawned"
	EventProjectileImpact  EventType = "projectile_impact"
	EventCellChanged       EventType = "cell_changed"
)

// Event is something spectators may want to see.
type Event struct {
	Type EventType `json:"type"`
	Tick uint64    `json:"tick"`
	Data any       `json:"data"`
}

// EventSink receives events after each tick, in the order they happened.
type EventSink interface {
	Publish(ev Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ev Event)

// Publish calls f(ev).
func (f EventSinkFunc) Publish(ev Event) { f(ev) }

// DoorEvent is the payload of door transitions.
type DoorEvent struct {
	Name string   `json:"name"`
	Team string   `json:"team"`
	Min  [3]int32 `json:"min"`
	Max  [3]int32 `json:"max"`
}

// ProjectileEvent is the payload of EventProjectileSpawned.
type ProjectileEvent struct {
	ID       uint32     `json:"id"`
	Shooter  uint32     `json:"shooter"`
	Weapon   string     `json:"weapon"`
	Payload  string     `json:"payload"`
	Origin   [3]float64 `json:"origin"`
	Velocity [3]float64 `json:"velocity"`
	Critical bool       `json:"critical"`
}

// CellEvent is the payload of EventCellChanged.
type CellEvent struct {
	Pos      [3]int32 `json:"pos"`
	Material string   `json:"material"`
}

// ImpactEvent is the payload of EventProjectileImpact.
type ImpactEvent struct {
	ID       uint32     `json:"id"`
	Shooter  uint32     `json:"shooter"`
	Payload  string     `json:"payload"`
	Position [3]float64 `json:"position"`
	Cell     [3]int32   `json:"cell"`
	Expired  bool       `json:"expired"`
}

func doorEvent(d *door.Door) DoorEvent {
	lo, hi := d.Bounds().Min(), d.Bounds().Max()
	return DoorEvent{
		Name: d.Name(),
		Team: d.Team().String(),
		Min:  [3]int32{lo.X, lo.Y, lo.Z},
		Max:  [3]int32{hi.X, hi.Y, hi.Z},
	}
}

func impactEvent(im world.Impact) ImpactEvent {
	return ImpactEvent{
		ID:       im.ID,
		Shooter:  im.Projectile.ShooterID,
		Payload:  im.Projectile.Payload,
		Position: im.Position,
		Cell:     [3]int32{im.Cell.X, im.Cell.Y, im.Cell.Z},
		Expired:  im.Expired,
	}
}
