package door

import (
	"errors"

	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
)

// recordingWorld is a door.World that keeps writes in memory.
type recordingWorld struct {
	players []*model.Player
	cells   map[geom.Pos]model.Material
	flags   map[geom.Pos]model.UpdateFlags
	writes  int
	reject  bool
}

func newRecordingWorld() *recordingWorld {
	return &recordingWorld{
		cells: make(map[geom.Pos]model.Material),
		flags: make(map[geom.Pos]model.UpdateFlags),
	}
}

var errRejected = errors.New("write rejected")

func (w *recordingWorld) PlayersIn(b geom.Bounds, pred func(*model.Player) bool) []*model.Player {
	var out []*model.Player
	for _, p := range w.players {
		if b.Contains(p.BlockPos()) && pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func (w *recordingWorld) SetMaterial(pos geom.Pos, m model.Material, flags model.UpdateFlags) error {
	w.writes++
	if w.reject {
		return errRejected
	}
	w.cells[pos] = m
	w.flags[pos] = flags
	return nil
}

func (w *recordingWorld) addPlayer(id uint32, cell geom.Pos) *model.Player {
	p := model.NewPlayer(id, "p", cell.Center())
	w.players = append(w.players, p)
	return p
}

func (w *recordingWorld) clearPlayers() {
	w.players = nil
}

var allowAll = AccessFunc(func(*Door, *model.Player) bool { return true })

type teamsByName map[string]model.Team

func (t teamsByName) Resolve(name string) model.TeamRef {
	if team, ok := t[name]; ok {
		return model.TeamOf(team)
	}
	return model.AnyTeam()
}

var (
	stone   = model.NewMaterial("iron_bars", nil)
	barrier = model.NewMaterial("arenago:barrier", nil)
)
