package templates

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	pagedto "landing/internal/modules/page/dto"
	"landing/internal/ui/components"
	"landing/internal/ui/theme"
)

// Owner is the listener owner name of this view.
const Owner = "template"

// Model shows the featured templates as markdown rendered by glamour in a
// scrollable viewport.
type Model struct {
	content  pagedto.ShowcaseOutput
	viewport viewport.Model
	renderer *glamour.TermRenderer
	scope    *components.Scope
	width    int
	height   int
}

func New(content pagedto.ShowcaseOutput) Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(0),
	)
	return Model{content: content, viewport: viewport.New(0, 0), renderer: r}
}

func (m Model) Mount(reg *components.Registry) (Model, tea.Cmd) {
	m.scope = components.NewScope()
	m.scope.Listen(reg, Owner, components.EventResize, components.EventScroll)
	m.viewport.GotoTop()
	m.viewport.SetContent(m.render())
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
		m.resize()
		m.viewport.SetContent(m.render())
	case components.ScrollMsg:
		if m.viewport.Height <= 0 {
			return m, nil
		}
		switch {
		case msg.Lines > 0:
			m.viewport.LineDown(msg.Lines)
		case msg.Lines < 0:
			m.viewport.LineUp(-msg.Lines)
		}
		switch {
		case msg.Pages > 0:
			m.viewport.ViewDown()
		case msg.Pages < 0:
			m.viewport.ViewUp()
		}
	case tea.KeyMsg:
		if msg.String() == "enter" && m.content.Action.Route != "" {
			route := m.content.Action.Route
			return m, func() tea.Msg { return components.NavigateMsg{Route: route} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	footer := theme.Muted.Render(fmt.Sprintf("%3.0f%%  j/k scroll · enter %s", m.viewport.ScrollPercent()*100, m.content.Action.Label))
	return m.viewport.View() + "\n" + footer
}

// Markdown is the showcase as a markdown document.
func (m Model) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n%s\n\n", m.content.Title, m.content.Subtitle)
	for _, t := range m.content.Items {
		fmt.Fprintf(&sb, "## %s\n\n", t.Title)
		fmt.Fprintf(&sb, "**%s** · ★ %s\n\n", t.Category, t.Rating)
		fmt.Fprintf(&sb, "%s\n\n", t.Description)
		if t.Image != "" {
			fmt.Fprintf(&sb, "`%s`\n\n", t.Image)
		}
	}
	if m.content.Action.Label != "" {
		fmt.Fprintf(&sb, "---\n\n[%s](%s)\n", m.content.Action.Label, m.content.Action.Route)
	}
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-1)
	if r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(m.width),
	); err == nil {
		m.renderer = r
	}
}

func (m Model) render() string {
	md := m.Markdown()
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
