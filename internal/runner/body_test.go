package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBodyStandsOnGround(t *testing.T) {
	b := NewBody(defaultCfg())

	assert.Equal(t, 80.0, b.X)
	assert.Equal(t, 300.0, b.Y, "player top should be groundY-height")
	assert.Equal(t, 340.0, b.GroundY())
	assert.True(t, b.OnGround)
	assert.Zero(t, b.DY)
}

func TestBodyJump(t *testing.T) {
	b := NewBody(defaultCfg())

	jumped := b.Update(true, false)

	require.True(t, jumped)
	assert.False(t, b.OnGround)
	assert.InDelta(t, -10.4, b.DY, 1e-9, "jump force plus one frame of gravity")
	assert.InDelta(t, 300-10.4, b.Y, 1e-9)

	x, y := b.BaseCenter()
	assert.Equal(t, 95.0, x)
	assert.InDelta(t, 340-10.4, y, 1e-9)
}

func TestBodyNoDoubleJump(t *testing.T) {
	b := NewBody(defaultCfg())
	b.Update(true, false)
	dyBefore := b.DY

	jumped := b.Update(true, false)

	assert.False(t, jumped, "jump in the air must be ignored")
	assert.InDelta(t, dyBefore+0.6, b.DY, 1e-9, "only gravity should change dy")
}

func TestBodyJumpIgnoredWhenGameOver(t *testing.T) {
	b := NewBody(defaultCfg())

	jumped := b.Update(true, true)

	assert.False(t, jumped)
	assert.True(t, b.OnGround)
	assert.Equal(t, 300.0, b.Y)
}

func TestBodyLandsAndClamps(t *testing.T) {
	b := NewBody(defaultCfg())
	b.Update(true, false)

	frames := 1
	for !b.OnGround {
		b.Update(false, false)
		frames++
		require.Less(t, frames, 200, "body never landed")
		assert.LessOrEqual(t, b.Y+b.H, b.GroundY())
	}

	assert.Equal(t, 300.0, b.Y)
	assert.Zero(t, b.DY)
	// -11 impulse at 0.6 gravity: airborne offset -11n + 0.3n(n+1) returns to 0 at n=36
	assert.Equal(t, 36, frames)
}

func TestBodyReset(t *testing.T) {
	b := NewBody(defaultCfg())
	b.Update(true, false)
	b.Update(false, false)

	b.Reset()

	assert.Equal(t, NewBody(defaultCfg()), b)
}
