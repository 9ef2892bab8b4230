package weapon

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
)

// ErrUnknownKind is returned for a weapon kind with no registered behavior.
var ErrUnknownKind = errors.New("unknown weapon kind")

// KindRocketLauncher is the kind name of RocketLauncher.
const KindRocketLauncher = "rocket_launcher"

// Options feed behavior constructors.
type Options struct {
	Rand           *rand.Rand
	CriticalChance float64
}

// BehaviorCtor builds the behavior for one weapon kind.
type BehaviorCtor func(opts Options) Behavior

var kinds = map[string]BehaviorCtor{
	KindRocketLauncher: func(opts Options) Behavior {
		return NewRocketLauncher(opts.Rand, opts.CriticalChance)
	},
}

// NewKind creates a weapon of a registered kind bound to item.
func NewKind(kind, item string, cooldown int, opts Options) (*Weapon, error) {
	ctor, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("weapon %q: %w %q", item, ErrUnknownKind, kind)
	}
	return New(item, kind, cooldown, ctor(opts)), nil
}

// Registry maps inventory items to their weapon.
type Registry struct {
	byItem map[string]*Weapon
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byItem: make(map[string]*Weapon)}
}

// Register binds w to its item, replacing any previous binding.
func (r *Registry) Register(w *Weapon) {
	r.byItem[w.Item()] = w
}

// Get returns the weapon bound to item.
func (r *Registry) Get(item string) (*Weapon, bool) {
	w, ok := r.byItem[item]
	return w, ok
}

// Items returns registered item names in sorted order.
func (r *Registry) Items() []string {
	return slices.Sorted(maps.Keys(r.byItem))
}

// Len returns the number of registered weapons.
func (r *Registry) Len() int {
	return len(r.byItem)
}
