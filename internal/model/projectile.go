package model

import "github.com/go-gl/mathgl/mgl64"

// Projectile describes a fully configured projectile handed to the world.
// After spawn the world owns simulation; the descriptor itself is a value.
type Projectile struct {
	ShooterID uint32
	Origin    mgl64.Vec3
	Velocity  mgl64.Vec3

	Pitch      float64 // degrees at spawn
	Yaw        float64 // degrees at spawn
	Roll       float64 // added to pitch when computing the heading
	Speed      float64
	Inaccuracy float64
	Gravity    float64 // multiplier on world gravity

	Payload  string // item identifier rendered and applied on impact
	Critical bool
}
