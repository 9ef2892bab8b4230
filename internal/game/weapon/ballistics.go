package weapon

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// inaccuracySpread scales the gaussian jitter added per axis.
const inaccuracySpread = 0.0075

// Heading returns the unit look vector for pitch and yaw in degrees.
// Yaw 0 faces +Z, 90 faces -X; positive pitch looks down.
func Heading(pitch, yaw float64) mgl64.Vec3 {
	p := mgl64.DegToRad(pitch)
	y := mgl64.DegToRad(yaw)
	return mgl64.Vec3{
		-math.Sin(y) * math.Cos(p),
		-math.Sin(p),
		math.Cos(y) * math.Cos(p),
	}
}

// Aim describes a throw.
type Aim struct {
	Pitch, Yaw float64
	Roll       float64 // added to pitch for the vertical component only
	Speed      float64
	Inaccuracy float64

	ShooterVelocity mgl64.Vec3
	ShooterOnGround bool
}

// Throw returns the launch velocity for a.
// The shooter's horizontal motion is inherited, vertical only when airborne.
func Throw(a Aim, rng *rand.Rand) mgl64.Vec3 {
	dir := Heading(a.Pitch, a.Yaw)
	dir[1] = -math.Sin(mgl64.DegToRad(a.Pitch + a.Roll))
	dir = dir.Normalize()

	if a.Inaccuracy != 0 {
		jitter := inaccuracySpread * a.Inaccuracy
		dir = dir.Add(mgl64.Vec3{
			rng.NormFloat64() * jitter,
			rng.NormFloat64() * jitter,
			rng.NormFloat64() * jitter,
		})
	}

	v := dir.Mul(a.Speed)
	sv := a.ShooterVelocity
	if a.ShooterOnGround {
		sv[1] = 0
	}
	return v.Add(sv)
}
