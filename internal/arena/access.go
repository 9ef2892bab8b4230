package arena

import (
	"github.com/udisondev/arenago/internal/game/door"
	"github.com/udisondev/arenago/internal/model"
)

// Materials written into open door footprints.
const (
	BarrierMaterial     = "arenago:barrier"
	TeamBarrierMaterial = "arenago:team_barrier"
)

// CanOpenDoor reports whether p may open d: the door has no team, p is on
// the door's team, or p is standing in the door's exit zone.
func CanOpenDoor(d *door.Door, p *model.Player) bool {
	if d.Team().IsAny() {
		return true
	}
	if p.Team().Is(d.Team()) {
		return true
	}
	return d.ExitDetectionBounds().Contains(p.BlockPos())
}

// DoorAccess is the arena access policy for doors.
var DoorAccess door.AccessPolicy = door.AccessFunc(CanOpenDoor)

// BarrierFor returns the open material for a door owned by team.
// Team barriers stop projectiles but let the owning team walk through.
func BarrierFor(team model.TeamRef) model.Material {
	t, ok := team.Get()
	if !ok {
		return model.NewMaterial(BarrierMaterial, nil)
	}
	return model.NewMaterial(TeamBarrierMaterial, map[string]string{"team": t.Name})
}
