package gfx

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neonrun/internal/core"
)

func TestNeon(t *testing.T) {
	assert.Equal(t, color.NRGBA{0x00, 0xea, 0xff, 0xff}, neon(core.ColorBrightCyan, 1))
	assert.Equal(t, color.NRGBA{0xff, 0x00, 0x44, 0x80}, neon(core.ColorBrightRed, 0.5))
	assert.Equal(t, uint8(0), neon(core.ColorBrightWhite, -1).A)
	assert.Equal(t, uint8(0xff), neon(core.ColorBrightWhite, 2).A)
}

func TestGlowRingsFadeOutward(t *testing.T) {
	for i := 1; i < len(glowRings); i++ {
		assert.Less(t, glowRings[i].pad, glowRings[i-1].pad)
		assert.Greater(t, glowRings[i].alpha, glowRings[i-1].alpha)
	}
}

func TestBuildFrame(t *testing.T) {
	f := buildFrame(true, false, true)
	assert.True(t, f.Has(core.ActionJump))
	assert.False(t, f.Has(core.ActionRestart))
	assert.True(t, f.Has(core.ActionPause))

	assert.False(t, buildFrame(false, false, false).Has(core.ActionJump))
}

func TestTextOrigin(t *testing.T) {
	x, y := textOrigin(10, 2, 400, 200)
	assert.InDelta(t, 340, x, 1e-9)
	assert.InDelta(t, 184, y, 1e-9)
}
