package arena

import (
	"fmt"

	"github.com/udisondev/arenago/internal/config"
	"github.com/udisondev/arenago/internal/game/weapon"
)

// WeaponsFromConfig builds the weapon registry from config bindings.
func WeaponsFromConfig(entries []config.WeaponConfig, opts weapon.Options) (*weapon.Registry, error) {
	reg := weapon.NewRegistry()
	for _, e := range entries {
		w, err := weapon.NewKind(e.Kind, e.Item, e.Cooldown, opts)
		if err != nil {
			return nil, fmt.Errorf("building weapons: %w", err)
		}
		reg.Register(w)
	}
	return reg, nil
}
