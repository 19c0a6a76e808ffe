//go:build !headless

package gfx

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neonrun/internal/core"
	"github.com/vovakirdan/neonrun/internal/platform/eventlog"
	"github.com/vovakirdan/neonrun/internal/runner"
)

// Window adapts a runner game to the ebiten.Game interface.
type Window struct {
	game   runner.Viewer
	events *eventlog.Recorder
	view   runner.Snapshot
	glyphs map[rune]*ebiten.Image
}

// NewWindow creates a window front-end for game.
func NewWindow(game runner.Viewer, logger *log.Logger) *Window {
	w := &Window{
		game:   game,
		events: eventlog.New(logger, game.ID()),
		glyphs: make(map[rune]*ebiten.Image),
	}
	game.SnapshotInto(&w.view)
	return w
}

// Update samples the keyboard and advances the game by one tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	frame := buildFrame(
		ebiten.IsKeyPressed(ebiten.KeySpace) ||
			ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyR),
		inpututil.IsKeyJustPressed(ebiten.KeyP),
	)
	w.events.Record(w.game.Step(frame))
	return nil
}

// Draw renders the latest frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.SnapshotInto(&w.view)
	snap := &w.view

	screen.Fill(background)
	w.drawBackground(screen, snap.World)

	for _, o := range snap.Obstacles {
		drawNeonRect(screen, o.Rect, o.Color)
	}
	drawNeonRect(screen, snap.Player.Rect, runner.JumpColor)

	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), particleSize, particleSize, neon(p.Color, p.Alpha), false)
	}

	w.drawText(screen, fmt.Sprintf("Score: %d", snap.DisplayScore), hudTextScale, 10, 10, core.ColorBrightCyan)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("speed %.2f  fps %.0f", snap.Speed, ebiten.ActualFPS()),
		int(snap.World.Width)-150, 8)

	cx, cy := snap.World.Width/2, snap.World.Height/2
	switch {
	case snap.GameOver:
		vector.DrawFilledRect(screen, 0, 0, float32(snap.World.Width), float32(snap.World.Height), overlayShade, false)
		w.drawCentered(screen, "GAME OVER", bannerScale, cx, cy-30)
		w.drawCentered(screen, fmt.Sprintf("Final Score: %d", snap.DisplayScore), messageScale, cx, cy+20)
		w.drawCentered(screen, "Press R to Restart", messageScale, cx, cy+55)
	case w.game.Paused():
		w.drawCentered(screen, "PAUSED", bannerScale, cx, cy)
	}
}

// Layout keeps the logical screen at the world's canvas size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.view.World.Width), int(w.view.World.Height)
}

// drawBackground draws the slanted scan lines and the glowing ground line.
func (w *Window) drawBackground(screen *ebiten.Image, world runner.WorldView) {
	scan := neon(core.ColorIndigo, 1)
	for x := 0.0; x < world.Width; x += 40 {
		vector.StrokeLine(screen, float32(x), 0, float32(x+40), float32(world.GroundY-80), scanLineWidth, scan, true)
	}

	gy := float32(world.GroundY)
	for _, ring := range glowRings {
		vector.StrokeLine(screen, 0, gy, float32(world.Width), gy, groundWidth+2*ring.pad, neon(core.ColorBrightCyan, ring.alpha), true)
	}
	vector.StrokeLine(screen, 0, gy, float32(world.Width), gy, groundWidth, neon(core.ColorBrightCyan, 1), true)
}

// drawNeonRect fills r with c and surrounds it with fading halo rings.
func drawNeonRect(screen *ebiten.Image, r core.RectF, c core.Color) {
	x, y := float32(r.X), float32(r.Y)
	rw, rh := float32(r.W), float32(r.H)
	for _, ring := range glowRings {
		vector.DrawFilledRect(screen, x-ring.pad, y-ring.pad, rw+2*ring.pad, rh+2*ring.pad, neon(c, ring.alpha), true)
	}
	vector.DrawFilledRect(screen, x, y, rw, rh, neon(c, 1), true)
}

// drawCentered draws white text centred on (cx, cy).
func (w *Window) drawCentered(screen *ebiten.Image, s string, scale, cx, cy float64) {
	x, y := textOrigin(utf8.RuneCountInString(s), scale, cx, cy)
	w.drawText(screen, s, scale, x, y, core.ColorBrightWhite)
}

// drawText draws debug-font text scaled up and tinted.
// Glyph images are cached per rune.
func (w *Window) drawText(screen *ebiten.Image, s string, scale, x, y float64, c core.Color) {
	r, g, b := c.RGB()
	i := 0
	for _, ch := range s {
		if ch != ' ' {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x+float64(i*debugGlyphW)*scale, y)
			op.ColorScale.Scale(float32(r)/0xff, float32(g)/0xff, float32(b)/0xff, 1)
			op.Filter = ebiten.FilterNearest
			screen.DrawImage(w.glyph(ch), op)
		}
		i++
	}
}

func (w *Window) glyph(ch rune) *ebiten.Image {
	img, ok := w.glyphs[ch]
	if !ok {
		img = ebiten.NewImage(debugGlyphW, debugGlyphH)
		ebitenutil.DebugPrint(img, string(ch))
		w.glyphs[ch] = img
	}
	return img
}

// Run opens a window and plays game until it is closed.
func Run(game runner.Viewer, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	w := NewWindow(game, logger)
	w.events.Start(cfg)

	ebiten.SetWindowSize(int(w.view.World.Width), int(w.view.World.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
