package arena

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/udisondev/arenago/internal/data"
	"github.com/udisondev/arenago/internal/game/weapon"
	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
	"github.com/udisondev/arenago/internal/world"
)

var (
	red  = model.Team{Name: "red", Color: "#ff5555"}
	blue = model.Team{Name: "blue", Color: "#5555ff"}
)

// recordingSink collects published events.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Publish(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) ofType(typ EventType) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, ev := range s.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// gateTemplate has one red door spanning x 0..2, y 0..2 at z 0 that
// detects 2 cells to the north and south, plus one broken door.
func gateTemplate() *data.Template {
	return &data.Template{
		Name: "gate_test",
		Regions: []data.Region{
			{
				Marker: data.MarkerDoor,
				Name:   "red_gate",
				Min:    []int32{0, 0, 0},
				Max:    []int32{2, 2, 0},
				Data: map[string]any{
					"facing":   "south",
					"distance": 2,
					"team":     "red",
					"block":    map[string]any{"Name": "minecraft:stone"},
				},
			},
			{
				Marker: data.MarkerDoor,
				Name:   "broken",
				Min:    []int32{10, 0, 0},
				Max:    []int32{10, 0, 0},
				Data: map[string]any{
					"facing":   "sideways",
					"distance": 2,
					"block":    map[string]any{"Name": "minecraft:stone"},
				},
			},
		},
	}
}

func newTestSession(t *testing.T, cooldown int) (*Session, *recordingSink) {
	t.Helper()
	return newMeteredSession(t, cooldown, noop.NewMeterProvider().Meter("test"))
}

func newMeteredSession(t *testing.T, cooldown int, meter metric.Meter) (*Session, *recordingSink) {
	t.Helper()
	weapons := weapon.NewRegistry()
	w, err := weapon.NewKind(weapon.KindRocketLauncher, "blaze_rod", cooldown, weapon.Options{
		Rand: rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	weapons.Register(w)

	sink := &recordingSink{}
	s, err := NewSession(world.New(world.DefaultConfig()), Options{
		Origin:  geom.P(0, 0, 0),
		Teams:   NewTeams(red, blue),
		Weapons: weapons,
		Sink:    sink,
		Meter:   meter,
	})
	require.NoError(t, err)
	return s, sink
}
