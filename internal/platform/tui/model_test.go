package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neonrun/internal/config"
	"github.com/vovakirdan/neonrun/internal/core"
	"github.com/vovakirdan/neonrun/internal/runner"
)

func newTestModel(t *testing.T) (Model, *runner.Game) {
	t.Helper()
	g := runner.New(config.DefaultRunnerConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
	m := NewModel(g, cfg, nil)
	require.NotNil(t, m.Init())
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func tick(t *testing.T, m Model) Model {
	return update(t, m, TickMsg(time.Now()))
}

func TestModelReservesHelpRow(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 24, m.screen.Height())

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 25)
	assert.Contains(t, lines[24], "jump")
}

func TestModelKeyLatchedForOneTick(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, runeKey('w'))
	assert.True(t, m.inputFrame.Has(core.ActionJump))

	m = tick(t, m)
	assert.False(t, m.inputFrame.Has(core.ActionJump), "input cleared after tick")
	assert.False(t, g.Session().Player().OnGround, "jump applied")
	assert.Equal(t, 1, m.events.Jumps())
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, g := newTestModel(t)
	for range 10 {
		m = tick(t, m)
	}
	frame := g.Session().Frame()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
	assert.Equal(t, frame, g.Session().Frame())
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelPauseAndRestart(t *testing.T) {
	m, g := newTestModel(t)
	m = tick(t, m)

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	assert.True(t, m.State().Paused)
	frame := g.Session().Frame()
	m = tick(t, m)
	assert.Equal(t, frame, g.Session().Frame())

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	assert.False(t, m.State().Paused)

	m = update(t, m, runeKey('r'))
	m = tick(t, m)
	assert.Equal(t, 1, m.events.Runs(), "restart while running is ignored")
}
