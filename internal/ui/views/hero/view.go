package hero

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	pagedto "landing/internal/modules/page/dto"
	"landing/internal/ui/components"
	"landing/internal/ui/theme"
)

// Owner is the listener owner name of this view.
const Owner = "home"

type Model struct {
	content  pagedto.HeroOutput
	selected int
	scope    *components.Scope
	width    int
	height   int
}

func New(content pagedto.HeroOutput) Model {
	return Model{content: content}
}

func (m Model) Mount(reg *components.Registry) (Model, tea.Cmd) {
	m.scope = components.NewScope()
	m.scope.Listen(reg, Owner, components.EventResize)
	return m, nil
}

func (m Model) Unmount() Model {
	m.scope.Close()
	m.scope = nil
	return m
}

func (m Model) Mounted() bool { return !m.scope.Closed() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		n := len(m.content.Actions)
		if n == 0 {
			return m, nil
		}
		switch msg.String() {
		case "left", "h":
			m.selected = (m.selected + n - 1) % n
		case "right", "l":
			m.selected = (m.selected + 1) % n
		case "enter":
			route := m.content.Actions[m.selected].Route
			return m, func() tea.Msg { return components.NavigateMsg{Route: route} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var lines []string
	if m.content.Badge != "" {
		lines = append(lines, theme.Badge.Render("✦ "+m.content.Badge), "")
	}
	for i, h := range m.content.Headline {
		if i == len(m.content.Headline)-1 {
			lines = append(lines, lipgloss.NewStyle().Bold(true).Render(components.Gradient(h, m.content.Gradient)))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(h))
	}
	if m.content.Description != "" {
		descW := max(20, min(m.width-8, 72))
		lines = append(lines, "", theme.Muted.Width(descW).Align(lipgloss.Center).Render(m.content.Description))
	}
	if len(m.content.Actions) > 0 {
		buttons := make([]string, len(m.content.Actions))
		for i, a := range m.content.Actions {
			style := theme.Button
			if i == m.selected {
				style = theme.ButtonActive
			}
			buttons[i] = style.Render(a.Label)
		}
		lines = append(lines, "", strings.Join(buttons, "  "), "", theme.Muted.Render("←/→ choose · enter go"))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
