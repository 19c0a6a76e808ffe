package runner

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/neonrun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '═'
	ScanChar     = '╲'
)

// scanSpacing is the world-unit gap between background scan lines.
const scanSpacing = 40

// Render draws the current frame, scaling the world to fill dst.
func (g *Game) Render(dst *core.Screen) {
	g.session.SnapshotInto(&g.view)
	DrawSnapshot(dst, &g.view, g.paused)
}

// DrawSnapshot projects a snapshot onto a terminal screen.
func DrawSnapshot(dst *core.Screen, snap *Snapshot, paused bool) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / snap.World.Width
	sy := float64(dst.Height()) / snap.World.Height
	groundRow := int(math.Floor(snap.World.GroundY * sy))

	drawScanLines(dst, snap.World, sx, sy)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorBrightCyan)

	bounds := core.NewRect(0, 0, dst.Width(), dst.Height())

	// Obstacles spawn past the right edge and linger past the left one.
	for _, o := range snap.Obstacles {
		if r := o.Rect.Scale(sx, sy); r.Intersects(bounds) {
			dst.DrawRectColored(r, ObstacleChar, o.Color)
		}
	}

	dst.DrawRectColored(snap.Player.Rect.Scale(sx, sy), PlayerChar, core.ColorBrightCyan)

	for _, p := range snap.Particles {
		x := int(math.Floor(p.X * sx))
		y := int(math.Floor(p.Y * sy))
		if bounds.Contains(x, y) {
			dst.SetColored(x, y, particleGlyph(p.Alpha), p.Color)
		}
	}

	drawHUD(dst, snap)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.DisplayScore),
			"Press R to Restart")
	}
}

// drawScanLines draws the slanted background lines above the track.
// Each line runs from (x, 0) to (x+spacing, ground-80) in world space.
func drawScanLines(dst *core.Screen, w WorldView, sx, sy float64) {
	bottom := w.GroundY - 80
	if bottom <= 0 {
		return
	}
	rows := int(math.Floor(bottom * sy))
	for x := 0.0; x < w.Width; x += scanSpacing {
		for row := 0; row < rows; row++ {
			worldY := (float64(row) + 0.5) / sy
			worldX := x + scanSpacing*worldY/bottom
			dst.SetColored(int(math.Floor(worldX*sx)), row, ScanChar, core.ColorIndigo)
		}
	}
}

// particleGlyph fades a particle as its life runs out.
func particleGlyph(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '*'
	case alpha > 0.33:
		return '+'
	default:
		return '·'
	}
}

func drawHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.DisplayScore), core.ColorBrightCyan)

	speedText := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	dst.DrawTextColored(core.Clamp(dst.Width()-len(speedText)-2, 0, dst.Width()), 0, speedText, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
// On screens narrower than the box it is pinned to the top-left corner.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := 4 + len(lines)

	box := core.NewRect(
		core.Clamp((dst.Width()-boxW)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-boxH)/2, 0, dst.Height()),
		boxW, boxH,
	)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
