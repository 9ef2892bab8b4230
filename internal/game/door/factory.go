package door

import (
	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
)

// Descriptor is the declarative door configuration of one map region.
// Missing fields keep their zero value, the same way the template data
// reader reports them.
type Descriptor struct {
	Name     string
	Bounds   geom.Bounds // template-relative
	Facing   string
	Distance int32
	Block    Block
	Team     string
}

// Block names the closed material of a door.
type Block struct {
	Name       string
	Properties map[string]string
}

// Rejection explains why a descriptor produced no door.
type Rejection string

const (
	RejectFacing   Rejection = "facing does not name a direction"
	RejectDistance Rejection = "distance is zero"
	RejectBlock    Rejection = "block does not name a material"
)

// TeamResolver maps a descriptor team name to a team.
type TeamResolver interface {
	Resolve(name string) model.TeamRef
}

// Factory builds doors from descriptors.
type Factory struct {
	World  World
	Access AccessPolicy
	Teams  TeamResolver

	// Origin is added to every template-relative footprint.
	Origin geom.Pos

	// OpenMaterial picks the material written while the door is open.
	OpenMaterial func(team model.TeamRef) model.Material
}

// draft accumulates resolved fields while validation steps run.
type draft struct {
	desc   Descriptor
	facing geom.Direction
	closed model.Material
}

type step func(*draft) Rejection

// Steps run in order and stop at the first rejection.
var steps = []step{
	resolveFacing,
	checkDistance,
	resolveBlock,
}

func resolveFacing(dr *draft) Rejection {
	facing, ok := geom.ParseDirection(dr.desc.Facing)
	if !ok {
		return RejectFacing
	}
	dr.facing = facing
	return ""
}

func checkDistance(dr *draft) Rejection {
	if dr.desc.Distance == 0 {
		return RejectDistance
	}
	return ""
}

func resolveBlock(dr *draft) Rejection {
	if dr.desc.Block.Name == "" {
		return RejectBlock
	}
	dr.closed = model.NewMaterial(dr.desc.Block.Name, dr.desc.Block.Properties)
	return ""
}

// Build validates desc and returns a closed door, or nil and the reason.
// The closed materials are already written when Build returns a door.
func (f *Factory) Build(desc Descriptor) (*Door, Rejection) {
	dr := &draft{desc: desc}
	for _, s := range steps {
		if r := s(dr); r != "" {
			return nil, r
		}
	}

	footprint := desc.Bounds.Translate(f.Origin)
	near := footprint.Min().Offset(dr.facing.Opposite(), desc.Distance)
	far := footprint.Max().Offset(dr.facing, desc.Distance)

	team := model.AnyTeam()
	if f.Teams != nil {
		team = f.Teams.Resolve(desc.Team)
	}

	open := model.Air
	if f.OpenMaterial != nil {
		open = f.OpenMaterial(team)
	}

	d := New(f.World, f.Access, Config{
		Name:          desc.Name,
		Bounds:        footprint,
		Detection:     geom.Span(near, far),
		ExitDetection: geom.Span(footprint.Min(), far),
		Facing:        dr.facing,
		Open:          open,
		Closed:        dr.closed,
		Team:          team,
	})
	d.Close()
	return d, ""
}
