package app_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/bootstrap"
	"landing/internal/platform/config"
	"landing/internal/ui/app"
	"landing/internal/ui/components"
	chatview "landing/internal/ui/views/chat"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newModel(t *testing.T) app.Model {
	t.Helper()
	cfg := config.Config{
		FPS:           30,
		ParticleCount: 200,
		SphereRadius:  150,
		Seed:          7,
		CellWidthPx:   8,
		CellHeightPx:  16,
		BreakpointPx:  1000,
	}
	return bootstrap.NewModel(bootstrap.New(cfg, nil), fixedClock{now: t0})
}

func update(t *testing.T, m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(app.Model)
	require.True(t, ok)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// sized gives the model a 130x53 terminal: 1040px wide and an 800px tall
// section once the tab and status bars are taken off.
func sized(t *testing.T) app.Model {
	t.Helper()
	m, _ := update(t, newModel(t), tea.WindowSizeMsg{Width: 130, Height: 53})
	return m
}

func TestStartsOnHomeWithItsListenersOnly(t *testing.T) {
	t.Parallel()
	m := newModel(t)

	assert.Equal(t, "home", m.ActiveSection())
	assert.True(t, m.Hero().Mounted())
	assert.False(t, m.Cards().Mounted())
	assert.True(t, m.Registry().Listening(components.EventResize, "home"))
	assert.Equal(t, 1, m.Registry().Len())
	assert.Equal(t, "ready", m.Status())
}

func TestSwitchingSectionsMovesListeners(t *testing.T) {
	t.Parallel()
	m := sized(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "stacked-cards", m.ActiveSection())
	assert.False(t, m.Hero().Mounted())
	assert.True(t, m.Cards().Mounted())
	assert.False(t, m.Registry().Listening(components.EventResize, "home"))
	assert.True(t, m.Registry().Listening(components.EventScroll, "stacked-cards"))
	assert.Equal(t, 2, m.Registry().Len())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "home", m.ActiveSection())
	assert.False(t, m.Registry().Listening(components.EventScroll, "stacked-cards"))
	assert.Equal(t, 1, m.Registry().Len())
}

func TestScrollRecomputesActiveCard(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("2"))
	require.Equal(t, "stacked-cards", m.ActiveSection())
	assert.Equal(t, -1, m.Cards().ActiveIndex())
	assert.Equal(t, "inside", m.Cards().Placement())

	// One page down puts the track top at -800px: p = -1, |ceil(-3)| - 1 = 2.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 800.0, m.Cards().ScrollPx())
	assert.Equal(t, 2, m.Cards().ActiveIndex())

	// Three rows of 16px back up: p = -0.94, |ceil(-2.82)| - 1 = 1.
	m, _ = update(t, m, runes("k"))
	assert.Equal(t, 752.0, m.Cards().ScrollPx())
	assert.Equal(t, 1, m.Cards().ActiveIndex())
}

func TestMouseWheelScrollsCards(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("2"))

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 48.0, m.Cards().ScrollPx())
}

func TestScrollClampsAtTrackEnd(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("2"))

	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, 1600.0, m.Cards().ScrollPx())
	assert.Equal(t, 5, m.Cards().ActiveIndex())
}

func TestNarrowTerminalMovesPanelAboveCards(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("2"))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 53})
	assert.Equal(t, "before", m.Cards().Placement())
}

func TestNarrowingKeepsActiveCard(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("2"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, 2, m.Cards().ActiveIndex())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 53})
	assert.Equal(t, "before", m.Cards().Placement())
	assert.Equal(t, 2, m.Cards().ActiveIndex())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 130, Height: 53})
	assert.Equal(t, "inside", m.Cards().Placement())
	assert.Equal(t, 2, m.Cards().ActiveIndex())
}

func TestContactLoopRunsOnlyWhileMounted(t *testing.T) {
	t.Parallel()
	m := sized(t)

	m, cmd := update(t, m, runes("4"))
	require.Equal(t, "contact", m.ActiveSection())
	require.NotNil(t, cmd)
	assert.True(t, m.Contact().Animating())

	m, next := update(t, m, components.FrameMsg{LoopID: "contact", Gen: 1, At: t0.Add(100 * time.Millisecond)})
	assert.Equal(t, 1, m.Contact().Frames())
	assert.NotNil(t, next)
	assert.NotEmpty(t, m.Contact().View())

	m, _ = update(t, m, runes("1"))
	assert.False(t, m.Contact().Animating())

	m, next = update(t, m, components.FrameMsg{LoopID: "contact", Gen: 1, At: t0.Add(133 * time.Millisecond)})
	assert.Nil(t, next)
	assert.Equal(t, 1, m.Contact().Frames())
}

func TestStaleTickIgnoredAfterRemount(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("4"))
	m, _ = update(t, m, runes("1"))
	m, _ = update(t, m, runes("4"))

	m, next := update(t, m, components.FrameMsg{LoopID: "contact", Gen: 1, At: t0})
	assert.Nil(t, next)
	assert.Equal(t, 0, m.Contact().Frames())

	m, next = update(t, m, components.FrameMsg{LoopID: "contact", Gen: 3, At: t0})
	assert.NotNil(t, next)
	assert.Equal(t, 1, m.Contact().Frames())
}

func TestNavigate(t *testing.T) {
	t.Parallel()
	m := sized(t)

	m, _ = update(t, m, components.NavigateMsg{Route: "#contact"})
	assert.Equal(t, "contact", m.ActiveSection())
	assert.Contains(t, m.Status(), "Contact")

	m, _ = update(t, m, components.NavigateMsg{Route: "/marketplace"})
	assert.Equal(t, "contact", m.ActiveSection())
	assert.Contains(t, m.Status(), "/marketplace")

	m, _ = update(t, m, components.NavigateMsg{Route: "#pricing"})
	assert.Equal(t, "contact", m.ActiveSection())
	assert.True(t, strings.HasPrefix(m.Status(), "navigate:"))
}

func TestHeroEnterFollowsSelectedAction(t *testing.T) {
	t.Parallel()
	m := sized(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, components.NavigateMsg{Route: "/marketplace"}, cmd())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, components.NavigateMsg{Route: "/contact"}, cmd())
}

func TestChatWidget(t *testing.T) {
	t.Parallel()
	m := sized(t)

	m, _ = update(t, m, runes("c"))
	require.True(t, m.ChatOpen())
	assert.True(t, m.Chat().Mounted())
	assert.True(t, m.Registry().Listening(components.EventResize, "chat"))
	require.Len(t, m.Chat().State().Transcript, 1)
	require.Len(t, m.Chat().State().Options, 4)

	m, _ = update(t, m, runes("1"))
	assert.Equal(t, "home", m.ActiveSection())
	require.Len(t, m.Chat().State().Transcript, 3)
	assert.Len(t, m.Chat().State().Options, 2)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, chatview.CloseMsg{}, msg)
	m, _ = update(t, m, msg)
	assert.False(t, m.ChatOpen())
	assert.False(t, m.Chat().Mounted())
	assert.False(t, m.Registry().Listening(components.EventResize, "chat"))

	// The conversation survives closing the widget.
	m, _ = update(t, m, runes("c"))
	assert.Len(t, m.Chat().State().Transcript, 3)
}

func TestPaletteCommands(t *testing.T) {
	t.Parallel()
	m := sized(t)

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "goto stacked cards"})
	assert.Equal(t, "stacked-cards", m.ActiveSection())

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "open #template"})
	assert.Equal(t, "template", m.ActiveSection())
	assert.True(t, m.Templates().Mounted())
	assert.False(t, m.Cards().Mounted())

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "chat"})
	require.True(t, m.ChatOpen())
	m, _ = update(t, m, runes("2"))
	require.Len(t, m.Chat().State().Transcript, 3)

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "chat:reset"})
	assert.Len(t, m.Chat().State().Transcript, 1)
	assert.Equal(t, "chat restarted", m.Status())

	m, _ = update(t, m, components.PaletteSubmitMsg{Input: "fly"})
	assert.Equal(t, "unknown command: fly", m.Status())
}

func TestQuitUnmountsEverything(t *testing.T) {
	t.Parallel()
	m := sized(t)
	m, _ = update(t, m, runes("4"))
	m, _ = update(t, m, runes("c"))
	require.Equal(t, 2, m.Registry().Len())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, m.Registry().Len())
	assert.False(t, m.Contact().Animating())
	assert.False(t, m.Contact().Mounted())
	assert.False(t, m.Chat().Mounted())
}

func TestViewRendersChrome(t *testing.T) {
	t.Parallel()
	m := sized(t)

	out := m.View()
	assert.Contains(t, out, "Stacked Cards")
	assert.Contains(t, out, "q:quit")
}
