// Package weapon implements cooldown-gated arena weapons.
//
// A Weapon is static configuration (inventory item, cooldown length) plus a
// Behavior that builds the projectile. OnPrimary is the gate: it checks the
// per-player cooldown, asks the behavior for a projectile, hands it to the
// world and restarts the cooldown.
package weapon

import (
	"log/slog"

	"github.com/udisondev/arenago/internal/model"
)

// Behavior builds the projectile a weapon fires.
type Behavior interface {
	Fire(shooter *model.Player) model.Projectile
}

// BehaviorFunc adapts a function to Behavior.
type BehaviorFunc func(shooter *model.Player) model.Projectile

// Fire calls f(shooter).
func (f BehaviorFunc) Fire(shooter *model.Player) model.Projectile { return f(shooter) }

// Spawner hands a projectile to the host world.
type Spawner interface {
	Spawn(p model.Projectile) (uint32, error)
}

// CooldownStore tracks per-player cooldowns, keyed by weapon item.
type CooldownStore interface {
	IsReady(playerID uint32, item string) bool
	Reset(playerID uint32, item string, ticks int)
}

// Env is the host state a weapon activation reads and writes.
type Env struct {
	World     Spawner
	Cooldowns CooldownStore
}

// Hand is the hand holding the weapon.
type Hand uint8

const (
	MainHand Hand = iota
	OffHand
)

func (h Hand) String() string {
	if h == OffHand {
		return "off_hand"
	}
	return "main_hand"
}

// Result tells the input layer whether the activation consumed the event.
type Result uint8

const (
	// ResultPass leaves the input event to other handlers.
	ResultPass Result = iota
	// ResultSuccess consumed the event.
	ResultSuccess
)

func (r Result) String() string {
	if r == ResultSuccess {
		return "success"
	}
	return "pass"
}

// Activation describes the outcome of OnPrimary.
type Activation struct {
	Result     Result
	Hand       Hand
	Projectile model.Projectile // set when Result is ResultSuccess
	EntityID   uint32           // 0 when the world rejected the spawn
	SpawnErr   error
}

// Weapon is a cooldown-gated item action.
type Weapon struct {
	item     string
	kind     string
	cooldown int
	behavior Behavior
}

// New creates a weapon bound to item with a primary cooldown in ticks.
func New(item, kind string, cooldown int, behavior Behavior) *Weapon {
	return &Weapon{
		item:     item,
		kind:     kind,
		cooldown: max(cooldown, 0),
		behavior: behavior,
	}
}

// Item returns the inventory item the weapon is bound to.
func (w *Weapon) Item() string { return w.item }

// Kind returns the behavior kind name.
func (w *Weapon) Kind() string { return w.kind }

// Cooldown returns the primary cooldown in ticks.
func (w *Weapon) Cooldown() int { return w.cooldown }

// OnPrimary fires the weapon unless the player's cooldown is still running.
//
// A spawn the world rejects is not retried and still costs the cooldown.
func (w *Weapon) OnPrimary(env Env, player *model.Player, hand Hand) Activation {
	if !env.Cooldowns.IsReady(player.ObjectID(), w.item) {
		return Activation{Result: ResultPass, Hand: hand}
	}

	proj := w.behavior.Fire(player)
	id, err := env.World.Spawn(proj)
	if err != nil {
		slog.Debug("projectile spawn rejected",
			"weapon", w.item,
			"player", player.ObjectID(),
			"err", err)
		id = 0
	}

	env.Cooldowns.Reset(player.ObjectID(), w.item, w.cooldown)
	return Activation{
		Result:     ResultSuccess,
		Hand:       hand,
		Projectile: proj,
		EntityID:   id,
		SpawnErr:   err,
	}
}
