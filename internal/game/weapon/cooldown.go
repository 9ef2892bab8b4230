package weapon

import "sync"

type cooldownKey struct {
	playerID uint32
	item     string
}

// TickCooldowns is a CooldownStore measured in simulation ticks.
type TickCooldowns struct {
	mu     sync.Mutex
	now    func() uint64
	expiry map[cooldownKey]uint64
}

// NewTickCooldowns creates a store reading the current tick from now.
func NewTickCooldowns(now func() uint64) *TickCooldowns {
	return &TickCooldowns{
		now:    now,
		expiry: make(map[cooldownKey]uint64),
	}
}

// IsReady reports whether the cooldown for (player, item) has elapsed.
func (c *TickCooldowns) IsReady(playerID uint32, item string) bool {
	return c.Remaining(playerID, item) == 0
}

// Reset starts a cooldown of ticks from the current tick.
func (c *TickCooldowns) Reset(playerID uint32, item string, ticks int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cooldownKey{playerID: playerID, item: item}
	if ticks <= 0 {
		delete(c.expiry, key)
		return
	}
	c.expiry[key] = c.now() + uint64(ticks)
}

// Remaining returns the ticks left before (player, item) is ready.
func (c *TickCooldowns) Remaining(playerID uint32, item string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	exp, ok := c.expiry[cooldownKey{playerID: playerID, item: item}]
	if !ok {
		return 0
	}
	now := c.now()
	if now >= exp {
		return 0
	}
	return int(exp - now)
}

// Forget drops every cooldown of a player who left the match.
func (c *TickCooldowns) Forget(playerID uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.expiry {
		if k.playerID == playerID {
			delete(c.expiry, k)
		}
	}
}
