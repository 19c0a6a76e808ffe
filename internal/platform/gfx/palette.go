// Package gfx runs a game in a desktop window using Ebitengine.
// It draws from runner snapshots in world units, so the window shows the
// play field at its native canvas size.
package gfx

import (
	"image/color"
	"math"

	"github.com/vovakirdan/neonrun/internal/core"
)

var (
	background   = color.NRGBA{0x05, 0x05, 0x12, 0xff}
	overlayShade = color.NRGBA{0x00, 0x00, 0x00, 0xb3} // 70% black
)

// Text scales relative to the debug font.
const (
	hudTextScale = 2
	bannerScale  = 4
	messageScale = 2
)

const (
	particleSize  float32 = 3
	groundWidth   float32 = 3
	scanLineWidth float32 = 1
)

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// glowRing is one halo layer drawn around a neon shape.
type glowRing struct {
	pad   float32
	alpha float64
}

// glowRings are drawn outermost first, then the shape itself on top.
var glowRings = []glowRing{
	{pad: 8, alpha: 0.06},
	{pad: 5, alpha: 0.12},
	{pad: 2, alpha: 0.25},
}

// neon returns c with the given opacity.
func neon(c core.Color, alpha float64) color.NRGBA {
	r, g, b := c.RGB()
	a := math.Round(math.Max(0, math.Min(alpha, 1)) * 0xff)
	return color.NRGBA{r, g, b, uint8(a)}
}

// buildFrame turns sampled key state into an input frame.
func buildFrame(jump, restart, pause bool) core.InputFrame {
	f := core.NewInputFrame()
	if jump {
		f.Set(core.ActionJump)
	}
	if restart {
		f.Set(core.ActionRestart)
	}
	if pause {
		f.Set(core.ActionPause)
	}
	return f
}

// textOrigin returns the top-left corner for text of n runes drawn at scale,
// centred horizontally on cx with its vertical middle at cy.
func textOrigin(n int, scale, cx, cy float64) (x, y float64) {
	w := float64(n*debugGlyphW) * scale
	h := float64(debugGlyphH) * scale
	return cx - w/2, cy - h/2
}
