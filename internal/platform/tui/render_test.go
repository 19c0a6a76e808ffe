package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neonrun/internal/core"
	"github.com/vovakirdan/neonrun/internal/runner"
)

func TestColorStylesCoverRunnerPalette(t *testing.T) {
	used := []core.Color{
		core.ColorDefault,
		runner.JumpColor,
		runner.CollisionColor,
		core.ColorGray,
		core.ColorIndigo,
	}
	used = append(used, runner.ObstaclePalette[:]...)

	for _, c := range used {
		_, ok := colorStyles[c]
		assert.True(t, ok, "no style for color %d", c)
	}
}

func TestRenderScreenKeepsCellText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorBrightCyan)
	s.DrawTextColored(2, 0, "cd", core.ColorOrange)
	s.DrawTextColored(0, 1, "xyz", core.ColorWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "cd")
	assert.Contains(t, lines[1], "xyz")
}
