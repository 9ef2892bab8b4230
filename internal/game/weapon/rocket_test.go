package weapon

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenago/internal/model"
)

func TestRocketLauncher_Profile(t *testing.T) {
	t.Parallel()
	shooter := model.NewPlayer(7, "s", mgl64.Vec3{10.5, 40, -3.5})
	shooter.SetLook(15, -30)

	p := NewRocketLauncher(rand.New(rand.NewPCG(9, 9)), 0).Fire(shooter)

	assert.Equal(t, uint32(7), p.ShooterID)
	assert.Equal(t, mgl64.Vec3{10.5, 40, -3.5}, p.Origin)
	assert.Equal(t, 15.0, p.Pitch)
	assert.Equal(t, -30.0, p.Yaw)
	assert.Equal(t, 0.0, p.Roll)
	assert.Equal(t, 1.5, p.Speed)
	assert.Equal(t, 1.0, p.Inaccuracy)
	assert.Equal(t, "fire_charge", p.Payload)
	assert.False(t, p.Critical, "zero chance never crits")
}

func TestRocketLauncher_VelocityDamped(t *testing.T) {
	t.Parallel()
	looks := []struct{ pitch, yaw float64 }{
		{0, 0}, {-45, 90}, {30, -135}, {89, 10}, {-89, 270},
	}

	for i, look := range looks {
		shooter := model.NewPlayer(1, "s", mgl64.Vec3{})
		shooter.SetLook(look.pitch, look.yaw)
		shooter.SetVelocity(mgl64.Vec3{0.1, 0.4, -0.2})
		shooter.SetOnGround(i%2 == 0)

		seed := uint64(100 + i)
		base := Throw(Aim{
			Pitch:           look.pitch,
			Yaw:             look.yaw,
			Speed:           RocketSpeed,
			Inaccuracy:      RocketInaccuracy,
			ShooterVelocity: shooter.Velocity(),
			ShooterOnGround: shooter.OnGround(),
		}, rand.New(rand.NewPCG(seed, seed)))

		p := NewRocketLauncher(rand.New(rand.NewPCG(seed, seed)), 0).Fire(shooter)

		assert.InDelta(t, base.Len()*VelocityDamping, p.Velocity.Len(), 1e-9, "look %v", look)
		assert.True(t, p.Velocity.ApproxEqualThreshold(base.Mul(0.75), 1e-12), "look %v", look)
	}
}

func TestRocketLauncher_CriticalRoll(t *testing.T) {
	t.Parallel()
	shooter := model.NewPlayer(1, "s", mgl64.Vec3{})

	always := NewRocketLauncher(rand.New(rand.NewPCG(1, 1)), 1)
	never := NewRocketLauncher(rand.New(rand.NewPCG(1, 1)), 0)
	for range 20 {
		assert.True(t, always.Fire(shooter).Critical)
		assert.False(t, never.Fire(shooter).Critical)
	}

	half := NewRocketLauncher(rand.New(rand.NewPCG(5, 6)), 0.5)
	crits := 0
	for range 1000 {
		if half.Fire(shooter).Critical {
			crits++
		}
	}
	assert.InDelta(t, 500, crits, 80)
}

func TestThrow_NoInaccuracyFollowsHeading(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 1))

	v := Throw(Aim{Pitch: 0, Yaw: 0, Speed: 2}, rng)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0, 0, 2}, 1e-12), "yaw 0 faces +Z: %v", v)

	v = Throw(Aim{Pitch: 0, Yaw: 90, Speed: 1}, rng)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-12), "yaw 90 faces -X: %v", v)

	v = Throw(Aim{Pitch: 90, Yaw: 0, Speed: 1}, rng)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0, -1, 0}, 1e-12), "pitch 90 looks down: %v", v)
}

func TestThrow_InheritsShooterMotion(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(1, 1))
	aim := Aim{Yaw: 0, Speed: 1, ShooterVelocity: mgl64.Vec3{0.5, 0.3, 0}}

	grounded := aim
	grounded.ShooterOnGround = true
	v := Throw(grounded, rng)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0.5, 0, 1}, 1e-12), "%v", v)

	v = Throw(aim, rng)
	assert.True(t, v.ApproxEqualThreshold(mgl64.Vec3{0.5, 0.3, 1}, 1e-12), "%v", v)
}

func TestHeading_UnitLength(t *testing.T) {
	t.Parallel()
	for pitch := -90.0; pitch <= 90; pitch += 15 {
		for yaw := -180.0; yaw <= 180; yaw += 30 {
			require.InDelta(t, 1.0, Heading(pitch, yaw).Len(), 1e-12)
		}
	}
}
