package weapon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickCooldowns(t *testing.T) {
	t.Parallel()
	clock := &tickClock{tick: 100}
	c := NewTickCooldowns(clock.now)

	assert.True(t, c.IsReady(1, "rod"), "unknown key is ready")

	c.Reset(1, "rod", 3)
	assert.False(t, c.IsReady(1, "rod"))
	assert.Equal(t, 3, c.Remaining(1, "rod"))
	assert.True(t, c.IsReady(2, "rod"), "other player unaffected")
	assert.True(t, c.IsReady(1, "bow"), "other item unaffected")

	clock.advance(2)
	assert.Equal(t, 1, c.Remaining(1, "rod"))
	clock.advance(1)
	assert.True(t, c.IsReady(1, "rod"))
	assert.Equal(t, 0, c.Remaining(1, "rod"))
}

func TestTickCooldowns_ResetZeroClears(t *testing.T) {
	t.Parallel()
	clock := &tickClock{}
	c := NewTickCooldowns(clock.now)

	c.Reset(1, "rod", 5)
	c.Reset(1, "rod", 0)
	assert.True(t, c.IsReady(1, "rod"))
}

func TestTickCooldowns_Forget(t *testing.T) {
	t.Parallel()
	clock := &tickClock{}
	c := NewTickCooldowns(clock.now)

	c.Reset(1, "rod", 5)
	c.Reset(1, "bow", 5)
	c.Reset(2, "rod", 5)

	c.Forget(1)
	assert.True(t, c.IsReady(1, "rod"))
	assert.True(t, c.IsReady(1, "bow"))
	assert.False(t, c.IsReady(2, "rod"))
}
