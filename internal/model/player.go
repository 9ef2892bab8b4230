package model

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Player — участник арены.
// Pose (look angles, velocity, ground contact) is written by the network
// side and read by the simulation goroutine, so it sits behind playerMu.
type Player struct {
	*WorldObject

	playerMu sync.RWMutex
	team     TeamRef
	pitch    float64 // degrees, positive looks down
	yaw      float64 // degrees, 0 faces +Z
	velocity mgl64.Vec3
	onGround bool
}

// NewPlayer creates a player standing at pos with no team.
func NewPlayer(objectID uint32, name string, pos mgl64.Vec3) *Player {
	return &Player{
		WorldObject: NewWorldObject(objectID, name, pos),
		team:        AnyTeam(),
		onGround:    true,
	}
}

// Team returns the team the player belongs to.
func (p *Player) Team() TeamRef {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.team
}

// SetTeam assigns the player to a team.
func (p *Player) SetTeam(team TeamRef) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.team = team
}

// Look returns pitch and yaw in degrees.
func (p *Player) Look() (pitch, yaw float64) {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.pitch, p.yaw
}

// SetLook updates pitch and yaw in degrees.
func (p *Player) SetLook(pitch, yaw float64) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.pitch = pitch
	p.yaw = yaw
}

// Velocity returns the player's current motion per tick.
func (p *Player) Velocity() mgl64.Vec3 {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.velocity
}

// SetVelocity updates the player's motion per tick.
func (p *Player) SetVelocity(v mgl64.Vec3) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.velocity = v
}

// OnGround reports whether the player is standing on a solid cell.
func (p *Player) OnGround() bool {
	p.playerMu.RLock()
	defer p.playerMu.RUnlock()
	return p.onGround
}

// SetOnGround updates ground contact.
func (p *Player) SetOnGround(onGround bool) {
	p.playerMu.Lock()
	defer p.playerMu.Unlock()
	p.onGround = onGround
}
