package contact

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	pagedto "landing/internal/modules/page/dto"
	particlesdto "landing/internal/modules/particles/dto"
	"landing/internal/platform/clock"
	"landing/internal/ui/components"
	"landing/internal/ui/theme"
)

// Owner is the listener owner name of this view, and the id of its
// animation loop.
const Owner = "contact"

type ParticlesPort interface {
	Initialize(ctx context.Context, count int, radius float64) (particlesdto.FieldOutput, error)
	Frame(ctx context.Context, elapsedMs float64, viewportWidthPx int) (particlesdto.FrameOutput, error)
}

type Options struct {
	Count        int
	Radius       float64
	FramePeriod  time.Duration
	CellWidthPx  int
	CellHeightPx int
	Clock        clock.Clock
}

// Model is the call-to-action block next to the particle sphere. While
// mounted it redraws the sphere on every frame tick.
type Model struct {
	port    ParticlesPort
	content pagedto.CallToActionOutput
	opts    Options
	loop    *components.FrameLoop
	canvas  components.Canvas
	scope   *components.Scope
	frame   particlesdto.FrameOutput
	frames  int
	width   int
	height  int
}

func New(port ParticlesPort, content pagedto.CallToActionOutput, opts Options) Model {
	bg, _ := colorful.Hex(string(theme.Base))
	return Model{
		port:    port,
		content: content,
		opts:    opts,
		loop:    components.NewFrameLoop(Owner, opts.FramePeriod, opts.Clock),
		canvas:  components.Canvas{CellW: opts.CellWidthPx, CellH: opts.CellHeightPx, Background: bg},
	}
}

// Mount seeds a fresh particle field and starts the animation loop.
func (m Model) Mount(reg *components.Registry) (Model, tea.Cmd) {
	m.scope = components.NewScope()
	m.frame = particlesdto.FrameOutput{}
	m.frames = 0
	if m.port == nil {
		return m, nil
	}
	if _, err := m.port.Initialize(context.Background(), m.opts.Count, m.opts.Radius); err != nil {
		return m, func() tea.Msg { return components.StatusMsg{Text: "particles: " + err.Error()} }
	}
	m.scope.Listen(reg, Owner, components.EventResize)
	loop := m.loop
	cmd := loop.Start()
	m.scope.Add(loop.Stop)
	return m, cmd
}

func (m Model) Unmount() Model {
	m.scope.Close()
	m.scope = nil
	return m
}

func (m Model) Mounted() bool { return !m.scope.Closed() }

func (m Model) Animating() bool { return m.loop.Running() }

func (m Model) Frames() int { return m.frames }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case components.FrameMsg:
		elapsed, next, ok := m.loop.Handle(msg)
		if !ok {
			return m, nil
		}
		frame, err := m.port.Frame(context.Background(), elapsed, m.width*m.opts.CellWidthPx)
		if err != nil {
			m.loop.Stop()
			return m, func() tea.Msg { return components.StatusMsg{Text: "particles: " + err.Error()} }
		}
		m.frame = frame
		m.frames++
		return m, next
	case tea.KeyMsg:
		if msg.String() == "enter" && m.content.Action.Route != "" {
			route := m.content.Action.Route
			return m, func() tea.Msg { return components.NavigateMsg{Route: route} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var lines []string
	if m.content.Badge != "" {
		lines = append(lines, theme.Badge.Render(m.content.Badge), "")
	}
	lines = append(lines,
		lipgloss.NewStyle().Bold(true).Render(components.Gradient(m.content.Title, theme.BrandGradient)),
		lipgloss.NewStyle().Bold(true).Render(m.content.Subtitle),
		"",
	)
	for _, l := range m.content.Lines {
		lines = append(lines, theme.Muted.Render(l))
	}
	if m.content.Action.Label != "" {
		lines = append(lines, "", theme.ButtonActive.Render(m.content.Action.Label+" →"))
	}
	text := lipgloss.JoinVertical(lipgloss.Left, lines...)

	sphere := m.canvas.Render(m.frame.SurfacePx, Dots(m.frame.Points))
	body := text
	if sphere != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Center, text, "  ", sphere)
	}
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Dots converts projected particles to canvas dots.
func Dots(points []particlesdto.PointOutput) []components.Dot {
	dots := make([]components.Dot, len(points))
	for i, p := range points {
		dots[i] = components.Dot{
			X:     p.X,
			Y:     p.Y,
			R:     p.R,
			Color: colorful.Color{R: float64(p.Red) / 255, G: float64(p.Green) / 255, B: float64(p.Blue) / 255},
			Alpha: p.Alpha,
		}
	}
	return dots
}
