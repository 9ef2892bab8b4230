package weapon

import (
	"errors"

	"github.com/udisondev/arenago/internal/model"
)

type recordingSpawner struct {
	spawned []model.Projectile
	nextID  uint32
	reject  bool
}

var errSpawnRejected = errors.New("spawn rejected")

func (s *recordingSpawner) Spawn(p model.Projectile) (uint32, error) {
	if s.reject {
		return 0, errSpawnRejected
	}
	s.spawned = append(s.spawned, p)
	s.nextID++
	return s.nextID, nil
}

// tickClock is a manual simulation clock.
type tickClock struct{ tick uint64 }

func (c *tickClock) now() uint64 { return c.tick }

func (c *tickClock) advance(n uint64) { c.tick += n }
