package weapon

import (
	"math/rand/v2"

	"github.com/udisondev/arenago/internal/model"
)

const (
	RocketSpeed      = 1.5
	RocketInaccuracy = 1.0
	RocketRoll       = 0.0
	RocketGravity    = 1.0
	RocketPayload    = "fire_charge"

	// VelocityDamping slows the launch below a default throw.
	VelocityDamping = 0.75
)

// RocketLauncher fires a slow explosive projectile along the shooter's aim.
type RocketLauncher struct {
	rng            *rand.Rand
	criticalChance float64
}

// NewRocketLauncher creates the behavior. rng drives inaccuracy and critical rolls.
func NewRocketLauncher(rng *rand.Rand, criticalChance float64) *RocketLauncher {
	return &RocketLauncher{rng: rng, criticalChance: criticalChance}
}

// Fire builds a rocket at the shooter's position.
func (r *RocketLauncher) Fire(shooter *model.Player) model.Projectile {
	pitch, yaw := shooter.Look()

	base := Throw(Aim{
		Pitch:           pitch,
		Yaw:             yaw,
		Roll:            RocketRoll,
		Speed:           RocketSpeed,
		Inaccuracy:      RocketInaccuracy,
		ShooterVelocity: shooter.Velocity(),
		ShooterOnGround: shooter.OnGround(),
	}, r.rng)

	return model.Projectile{
		ShooterID:  shooter.ObjectID(),
		Origin:     shooter.Position(),
		Velocity:   base.Mul(VelocityDamping),
		Pitch:      pitch,
		Yaw:        yaw,
		Roll:       RocketRoll,
		Speed:      RocketSpeed,
		Inaccuracy: RocketInaccuracy,
		Gravity:    RocketGravity,
		Payload:    RocketPayload,
		Critical:   r.rng.Float64() < r.criticalChance,
	}
}
