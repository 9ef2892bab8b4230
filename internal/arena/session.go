// Package arena runs one match: doors from the map template, weapons bound
// to inventory items, and the tick that drives both.
//
// Doors and weapon activations only run on the simulation goroutine, the
// one calling Tick. Other goroutines hand work over through Submit and
// ReloadDoors; it is picked up at the start of the next tick.
package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/metric"

	"github.com/udisondev/arenago/internal/data"
	"github.com/udisondev/arenago/internal/game/door"
	"github.com/udisondev/arenago/internal/game/weapon"
	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/model"
	"github.com/udisondev/arenago/internal/world"
)

var (
	ErrUnknownWeapon  = errors.New("unknown weapon")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrSessionStopped = errors.New("session stopped")
)

// FireInput is a primary action request from a player.
type FireInput struct {
	PlayerID uint32
	Item     string
	Hand     weapon.Hand
}

// Options configure a Session. Zero fields take defaults.
type Options struct {
	Origin  geom.Pos
	Teams   *Teams
	Weapons *weapon.Registry
	Sink    EventSink
	Meter   metric.Meter // nil disables metrics
}

// Session is one running match on a world.
type Session struct {
	world     *world.World
	teams     *Teams
	weapons   *weapon.Registry
	cooldowns *weapon.TickCooldowns
	factory   door.Factory
	sink      EventSink
	metrics   *Metrics

	tick atomic.Uint64

	// simulation goroutine only
	doors  []*door.Door
	events []Event

	inputMu sync.Mutex
	inputs  []FireInput
	reload  *data.Template
	stopped bool
}

// NewSession creates a session on w. It has no doors until LoadDoors.
func NewSession(w *world.World, opts Options) (*Session, error) {
	s := &Session{
		world:   w,
		teams:   opts.Teams,
		weapons: opts.Weapons,
		sink:    opts.Sink,
	}
	if s.teams == nil {
		s.teams = NewTeams()
	}
	if s.weapons == nil {
		s.weapons = weapon.NewRegistry()
	}
	if s.sink == nil {
		s.sink = EventSinkFunc(func(Event) {})
	}
	s.cooldowns = weapon.NewTickCooldowns(s.CurrentTick)
	s.factory = door.Factory{
		World:        w,
		Access:       DoorAccess,
		Teams:        s.teams,
		Origin:       opts.Origin,
		OpenMaterial: BarrierFor,
	}
	// пишут в мир только двери, то есть симуляция
	w.Subscribe(func(pos geom.Pos, m model.Material) {
		s.emit(EventCellChanged, CellEvent{
			Pos:      [3]int32{pos.X, pos.Y, pos.Z},
			Material: m.String(),
		})
	})

	if opts.Meter != nil {
		m, err := NewMetrics(opts.Meter)
		if err != nil {
			return nil, fmt.Errorf("creating session metrics: %w", err)
		}
		if err := m.observePending(opts.Meter, s.Pending); err != nil {
			return nil, err
		}
		s.metrics = m
	}
	return s, nil
}

// World returns the host world.
func (s *Session) World() *world.World { return s.world }

// Teams returns the team registry.
func (s *Session) Teams() *Teams { return s.teams }

// Weapons returns the weapon registry.
func (s *Session) Weapons() *weapon.Registry { return s.weapons }

// Cooldowns returns the per-player cooldown store.
func (s *Session) Cooldowns() *weapon.TickCooldowns { return s.cooldowns }

// CurrentTick returns the number of ticks run so far.
func (s *Session) CurrentTick() uint64 { return s.tick.Load() }

// Doors returns the live doors. Simulation goroutine only.
func (s *Session) Doors() []*door.Door { return s.doors }

// Join adds a player to the world on the named team.
// An unknown team name joins without a team.
func (s *Session) Join(name, team string, pos mgl64.Vec3) (*model.Player, error) {
	p := model.NewPlayer(s.world.IDs().NextPlayerID(), name, pos)
	p.SetTeam(s.teams.Resolve(team))
	if err := s.world.AddPlayer(p); err != nil {
		return nil, fmt.Errorf("joining %q: %w", name, err)
	}
	slog.Info("player joined", "player", name, "objectID", p.ObjectID(), "team", p.Team())
	return p, nil
}

// Leave removes a player and forgets its cooldowns.
func (s *Session) Leave(objectID uint32) {
	s.world.RemovePlayer(objectID)
	s.cooldowns.Forget(objectID)
	slog.Info("player left", "objectID", objectID)
}

// LoadDoors replaces the session's doors with the doors of tpl.
// Footprint cells of old doors that no new door covers are cleared to air.
// Rejected descriptors are logged and skipped. Simulation goroutine only.
func (s *Session) LoadDoors(tpl *data.Template) (int, error) {
	descs, err := tpl.DoorDescriptors()
	if err != nil {
		return 0, fmt.Errorf("reading doors of %q: %w", tpl.Name, err)
	}

	doors := make([]*door.Door, 0, len(descs))
	for _, desc := range descs {
		d, reason := s.factory.Build(desc)
		if d == nil {
			slog.Warn("door rejected",
				"map", tpl.Name,
				"region", desc.Name,
				"reason", string(reason))
			continue
		}
		doors = append(doors, d)
	}

	for _, old := range s.doors {
		old.Remove(coveredBy(old.Bounds(), doors))
	}
	s.doors = doors

	slog.Info("doors loaded",
		"map", tpl.Name,
		"doors", len(doors),
		"rejected", len(descs)-len(doors))
	return len(doors), nil
}

// coveredBy reports cells of b that belong to one of doors' footprints.
func coveredBy(b geom.Bounds, doors []*door.Door) func(geom.Pos) bool {
	var overlap []geom.Bounds
	for _, d := range doors {
		if d.Bounds().Intersects(b) {
			overlap = append(overlap, d.Bounds())
		}
	}
	return func(pos geom.Pos) bool {
		for _, o := range overlap {
			if o.Contains(pos) {
				return true
			}
		}
		return false
	}
}

// ReloadDoors schedules LoadDoors(tpl) for the start of the next tick.
// A later call before that tick replaces the pending template.
func (s *Session) ReloadDoors(tpl *data.Template) error {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()
	if s.stopped {
		return ErrSessionStopped
	}
	s.reload = tpl
	return nil
}

// Submit queues a fire input for the next tick. Safe for concurrent use.
func (s *Session) Submit(in FireInput) error {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()
	if s.stopped {
		return ErrSessionStopped
	}
	s.inputs = append(s.inputs, in)
	return nil
}

// Pending returns the number of queued fire inputs.
func (s *Session) Pending() int {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()
	return len(s.inputs)
}

// Stop rejects further input. Queued input is discarded.
func (s *Session) Stop() {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()
	s.stopped = true
	s.inputs = nil
	s.reload = nil
}

func (s *Session) drain() ([]FireInput, *data.Template) {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()
	inputs, reload := s.inputs, s.reload
	s.inputs, s.reload = nil, nil
	return inputs, reload
}

// Tick runs one simulation step: queued reload and fire inputs, every
// door, then projectile flight. Events are published at the end.
func (s *Session) Tick() {
	s.tick.Add(1)

	inputs, reload := s.drain()
	if reload != nil {
		if _, err := s.LoadDoors(reload); err != nil {
			slog.Error("reloading doors", "map", reload.Name, "err", err)
		}
	}

	for _, in := range inputs {
		if _, err := s.Fire(in); err != nil {
			slog.Debug("fire input dropped",
				"player", in.PlayerID,
				"item", in.Item,
				"err", err)
		}
	}

	for _, d := range s.doors {
		switch d.Tick() {
		case door.Opened:
			s.emit(EventDoorOpened, doorEvent(d))
			s.metrics.doorTransition("opened")
			slog.Debug("door opened", "door", d.Name())
		case door.Closed:
			s.emit(EventDoorClosed, doorEvent(d))
			s.metrics.doorTransition("closed")
			slog.Debug("door closed", "door", d.Name())
		}
	}

	for _, im := range s.world.StepProjectiles() {
		s.emit(EventProjectileImpact, impactEvent(im))
	}

	s.flush()
}

// Fire runs the primary action of the weapon bound to in.Item right away.
// Simulation goroutine only; use Submit from elsewhere.
func (s *Session) Fire(in FireInput) (weapon.Activation, error) {
	w, ok := s.weapons.Get(in.Item)
	if !ok {
		return weapon.Activation{Result: weapon.ResultPass, Hand: in.Hand},
			fmt.Errorf("%w %q", ErrUnknownWeapon, in.Item)
	}
	p, ok := s.world.Player(in.PlayerID)
	if !ok {
		return weapon.Activation{Result: weapon.ResultPass, Hand: in.Hand},
			fmt.Errorf("%w %d", ErrUnknownPlayer, in.PlayerID)
	}

	act := w.OnPrimary(weapon.Env{World: s.world, Cooldowns: s.cooldowns}, p, in.Hand)
	s.metrics.weaponActivation(w.Item(), act.Result.String())
	if act.Result == weapon.ResultSuccess && act.SpawnErr == nil {
		s.metrics.projectileSpawned(w.Item())
		s.emit(EventProjectileSpawned, ProjectileEvent{
			ID:       act.EntityID,
			Shooter:  p.ObjectID(),
			Weapon:   w.Item(),
			Payload:  act.Projectile.Payload,
			Origin:   act.Projectile.Origin,
			Velocity: act.Projectile.Velocity,
			Critical: act.Projectile.Critical,
		})
	}
	return act, nil
}

func (s *Session) emit(typ EventType, payload any) {
	s.events = append(s.events, Event{Type: typ, Tick: s.CurrentTick(), Data: payload})
}

func (s *Session) flush() {
	for _, ev := range s.events {
		s.sink.Publish(ev)
	}
	s.events = s.events[:0]
}
