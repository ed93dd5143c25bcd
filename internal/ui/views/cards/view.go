package cards

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cardsdto "landing/internal/modules/cards/dto"
	pagedto "landing/internal/modules/page/dto"
	"landing/internal/ui/components"
	"landing/internal/ui/theme"
)

// Owner is the listener owner name of this view.
const Owner = "stacked-cards"

const (
	cardWidth   = 40
	maxSlivers  = 3
	linesPerRow = 3
)

type CardsPort interface {
	Load(ctx context.Context) (cardsdto.StackOutput, error)
	Scroll(ctx context.Context, trackStartPx, scrollPx, viewportHeightPx float64) (cardsdto.StackOutput, error)
	Resize(ctx context.Context, widthPx int) (cardsdto.StackOutput, error)
}

// Model is the sticky text panel plus the card stack. The section is a
// scroll container whose track is a few viewports tall; the scroll position
// is kept in pixels so the stacking rules work on the same scale as a page.
type Model struct {
	port     CardsPort
	panel    pagedto.StackPanelOutput
	stack    cardsdto.StackOutput
	scope    *components.Scope
	cellW    int
	cellH    int
	scrollPx float64
	width    int
	height   int
}

func New(port CardsPort, panel pagedto.StackPanelOutput, cellW, cellH int) Model {
	return Model{port: port, panel: panel, cellW: cellW, cellH: cellH}
}

func (m Model) Mount(reg *components.Registry) (Model, tea.Cmd) {
	m.scope = components.NewScope()
	m.scrollPx = 0
	if m.port == nil {
		return m, nil
	}
	stack, err := m.port.Load(context.Background())
	if err != nil {
		return m, status("cards: " + err.Error())
	}
	m.stack = stack
	m.scope.Listen(reg, Owner, components.EventResize, components.EventScroll)
	return m, nil
}

func (m Model) Unmount() Model {
	m.scope.Close()
	m.scope = nil
	return m
}

func (m Model) Mounted() bool { return !m.scope.Closed() }

func (m Model) ActiveIndex() int { return m.stack.ActiveIndex }

func (m Model) Placement() string { return m.stack.Placement }

func (m Model) ScrollPx() float64 { return m.scrollPx }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.port == nil {
			return m, nil
		}
		stack, err := m.port.Resize(context.Background(), m.width*m.cellW)
		if err != nil {
			return m, status("cards: " + err.Error())
		}
		m.stack = stack
		if clamped := m.clamp(m.scrollPx); clamped != m.scrollPx {
			m.scrollPx = clamped
			return m.syncScroll()
		}

	case components.ScrollMsg:
		vh := m.viewportPx()
		if vh <= 0 || m.port == nil {
			return m, nil
		}
		delta := float64(msg.Lines*linesPerRow*m.cellH) + float64(msg.Pages)*vh
		m.scrollPx = m.clamp(m.scrollPx + delta)
		return m.syncScroll()

	case tea.KeyMsg:
		if msg.String() == "enter" && m.panel.Action.Route != "" {
			route := m.panel.Action.Route
			return m, func() tea.Msg { return components.NavigateMsg{Route: route} }
		}
	}
	return m, nil
}

func (m Model) syncScroll() (Model, tea.Cmd) {
	stack, err := m.port.Scroll(context.Background(), m.trackStartPx(), m.scrollPx, m.viewportPx())
	if err != nil {
		return m, status("cards: " + err.Error())
	}
	m.stack = stack
	return m, nil
}

func (m Model) View() string {
	panel := m.renderPanel()
	stack := m.renderStack()
	var body string
	if m.stack.Placement == "before" {
		body = lipgloss.JoinVertical(lipgloss.Left, panel, "", stack)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Center, panel, "    ", stack)
	}
	body = lipgloss.JoinVertical(lipgloss.Left, body, "", m.renderProgress())
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// ─── layout ──────────────────────────────────────────────────────────────────

func (m Model) viewportPx() float64 {
	return float64(m.height * m.cellH)
}

// trackStartPx is zero when the panel sits beside the cards; when it is
// stacked above, the track begins below it.
func (m Model) trackStartPx() float64 {
	if m.stack.Placement != "before" {
		return 0
	}
	return float64(lipgloss.Height(m.renderPanel()) * m.cellH)
}

func (m Model) clamp(px float64) float64 {
	vh := m.viewportPx()
	track := float64(max(m.stack.TrackViewports, 1)) * vh
	limit := max(0, m.trackStartPx()+track-vh)
	return max(0, min(limit, px))
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) renderPanel() string {
	var lines []string
	for i, h := range m.panel.Headline {
		if i%2 == 1 {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Render(components.Gradient(h, theme.BrandGradient)))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(h))
	}
	if len(m.panel.Lines) > 0 {
		lines = append(lines, "")
		for _, l := range m.panel.Lines {
			lines = append(lines, theme.Muted.Render(l))
		}
	}
	if m.panel.Action.Label != "" {
		lines = append(lines, "", theme.ButtonActive.Render(m.panel.Action.Label+" →"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderStack() string {
	if len(m.stack.Cards) == 0 {
		return theme.Muted.Render("no cards")
	}
	active := m.stack.ActiveIndex + 1
	if active >= len(m.stack.Cards) {
		return theme.Muted.Render("all cards have left the stack ↑")
	}
	parts := []string{renderCard(m.stack.Cards[active])}
	for k := active + 1; k < len(m.stack.Cards) && k <= active+maxSlivers; k++ {
		parts = append(parts, renderSliver(m.stack.Cards[k], k-active))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCard(c cardsdto.CardPoseOutput) string {
	border := components.Blend(c.Gradient, 0)
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(components.Gradient(c.Icon+"  "+c.Title, c.Gradient)),
		"",
		lipgloss.NewStyle().Width(cardWidth-4).Foreground(theme.Text).Render(c.Description),
		"",
		theme.Muted.Render(c.Transform),
	)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border.Hex())).
		Padding(1).
		Width(cardWidth).
		Render(body)
}

// renderSliver draws the visible edge of a card waiting behind the active
// one, shifted by its place in the stack.
func renderSliver(c cardsdto.CardPoseOutput, depth int) string {
	edge := components.Blend(c.Gradient, 1)
	line := "╰" + strings.Repeat("─", max(1, cardWidth-2*depth)) + "╯"
	label := fmt.Sprintf(" %s %.0f°", c.Title, c.RotationDeg)
	return strings.Repeat(" ", depth) + lipgloss.NewStyle().Foreground(lipgloss.Color(edge.Hex())).Render(line) + theme.Muted.Render(label)
}

func (m Model) renderProgress() string {
	dots := make([]string, len(m.stack.Cards))
	for i, c := range m.stack.Cards {
		switch c.Kind {
		case "exited":
			dots[i] = theme.Muted.Render("●")
		case "active":
			dots[i] = theme.Hot.Render("◉")
		default:
			dots[i] = theme.Muted.Render("○")
		}
	}
	return strings.Join(dots, " ") + theme.Muted.Render("   j/k scroll · enter "+m.panel.Action.Label)
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return components.StatusMsg{Text: text} }
}
