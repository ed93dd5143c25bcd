package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dialogdto "landing/internal/modules/dialog/dto"
	"landing/internal/ui/components"
	"landing/internal/ui/theme"
)

// Owner is the listener owner name of the chat widget.
const Owner = "chat"

const (
	widgetWidth  = 56
	widgetHeight = 24
)

type DialogPort interface {
	Open(ctx context.Context) (dialogdto.StateOutput, error)
	ChooseAt(ctx context.Context, index int) (dialogdto.StateOutput, error)
	Reset(ctx context.Context) (dialogdto.StateOutput, error)
}

// CloseMsg asks the root model to hide the widget.
type CloseMsg struct{}

var (
	botStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Surface0).
			Padding(0, 1)

	userStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Purple).
			Padding(0, 1)

	frameStyle = theme.PaneActive.
			Background(theme.Mantle).
			Padding(0, 1)
)

// Model is the floating chatbot: a transcript viewport above the numbered
// options currently on offer.
type Model struct {
	port     DialogPort
	state    dialogdto.StateOutput
	viewport viewport.Model
	selected int
	scope    *components.Scope
	err      error
	width    int
	height   int
}

func New(port DialogPort) Model {
	return Model{port: port, viewport: viewport.New(widgetWidth-4, widgetHeight/2)}
}

// Mount opens the conversation, starting a fresh one on first use.
func (m Model) Mount(reg *components.Registry) (Model, tea.Cmd) {
	m.scope = components.NewScope()
	m.scope.Listen(reg, Owner, components.EventResize)
	if m.port == nil {
		return m, nil
	}
	state, err := m.port.Open(context.Background())
	m = m.apply(state, err)
	return m, nil
}

func (m Model) Unmount() Model {
	m.scope.Close()
	m.scope = nil
	return m
}

func (m Model) Mounted() bool { return !m.scope.Closed() }

func (m Model) State() dialogdto.StateOutput { return m.state }

func (m Model) Err() error { return m.err }

// Choose picks the option at a zero-based index.
func (m Model) Choose(index int) Model {
	if m.port == nil {
		return m
	}
	state, err := m.port.ChooseAt(context.Background(), index)
	m = m.apply(state, err)
	m.selected = 0
	return m
}

func (m Model) Reset() Model {
	if m.port == nil {
		return m
	}
	state, err := m.port.Reset(context.Background())
	m = m.apply(state, err)
	m.selected = 0
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
	case tea.KeyMsg:
		switch k := msg.String(); k {
		case "esc", "c":
			return m, func() tea.Msg { return CloseMsg{} }
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.state.Options)-1 {
				m.selected++
			}
		case "enter":
			return m.Choose(m.selected), nil
		case "r":
			return m.Reset(), nil
		case "pgup":
			m.viewport.HalfViewUp()
		case "pgdown":
			m.viewport.HalfViewDown()
		default:
			if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(m.state.Options) {
				return m.Choose(n - 1), nil
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	header := theme.Title.Render("💬 Template guide") + theme.Muted.Render("  esc close · r restart")
	var opts []string
	for i, o := range m.state.Options {
		label := fmt.Sprintf("%d. %s", i+1, o.Text)
		if o.HasFollowUps {
			label += " ›"
		}
		if i == m.selected {
			opts = append(opts, theme.Hot.Render("▸ "+label))
			continue
		}
		opts = append(opts, theme.Muted.Render("  "+label))
	}
	parts := []string{header, "", m.viewport.View(), ""}
	parts = append(parts, opts...)
	if m.err != nil {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(theme.Pink).Render(m.err.Error()))
	}
	return frameStyle.Width(m.viewport.Width + 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) apply(state dialogdto.StateOutput, err error) Model {
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.state = state
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m
}

func (m *Model) resize() {
	w := min(widgetWidth, m.width-2)
	h := min(widgetHeight, m.height-2)
	m.viewport.Width = max(10, w-4)
	m.viewport.Height = max(3, h-len(m.state.Options)-6)
}

// renderTranscript draws one bubble per block so multi-line bot answers read
// as separate paragraphs. Empty blocks keep their blank line.
func (m Model) renderTranscript() string {
	width := max(10, m.viewport.Width-4)
	var rows []string
	for _, turn := range m.state.Transcript {
		style, align := botStyle, lipgloss.Left
		if turn.Speaker == "user" {
			style, align = userStyle, lipgloss.Right
		}
		var bubble []string
		for _, b := range turn.Blocks {
			if strings.TrimSpace(b) == "" {
				bubble = append(bubble, "")
				continue
			}
			bubble = append(bubble, style.MaxWidth(width).Width(min(width, lipgloss.Width(b)+2)).Render(b))
		}
		block := lipgloss.JoinVertical(align, bubble...)
		rows = append(rows, lipgloss.PlaceHorizontal(m.viewport.Width, align, block), "")
	}
	return strings.Join(rows, "\n")
}
