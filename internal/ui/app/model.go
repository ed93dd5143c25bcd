package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	pagedto "landing/internal/modules/page/dto"
	"landing/internal/platform/clock"
	"landing/internal/platform/logging"
	"landing/internal/platform/slug"
	"landing/internal/ui/components"
	"landing/internal/ui/theme"
	cardsview "landing/internal/ui/views/cards"
	chatview "landing/internal/ui/views/chat"
	contactview "landing/internal/ui/views/contact"
	heroview "landing/internal/ui/views/hero"
	templatesview "landing/internal/ui/views/templates"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type pagePort interface {
	Content(ctx context.Context) (pagedto.PageOutput, error)
	Navigate(ctx context.Context, route string) (pagedto.DestinationOutput, error)
}

type Ports struct {
	Page      pagePort
	Cards     cardsview.CardsPort
	Particles contactview.ParticlesPort
	Dialog    chatview.DialogPort
}

type Options struct {
	CellWidthPx   int
	CellHeightPx  int
	ParticleCount int
	SphereRadius  float64
	FramePeriod   time.Duration
	Clock         clock.Clock
	Logger        *slog.Logger
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabCards
	tabTemplates
	tabContact
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Stacked Cards", "Templates", "Contact",
}

// tabSections are the page section ids behind each tab.
var tabSections = [tabCount]string{
	heroview.Owner, cardsview.Owner, templatesview.Owner, contactview.Owner,
}

// chromeLines is the height taken by the tab bar and the status bar.
const chromeLines = 3

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Section key.Binding
	Scroll  key.Binding
	Page    key.Binding
	Enter   key.Binding
	Chat    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next section")),
		Section: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump to section")),
		Scroll:  key.NewBinding(key.WithKeys("j", "k", "down", "up"), key.WithHelp("j/k", "scroll")),
		Page:    key.NewBinding(key.WithKeys("pgdown", "pgup", " "), key.WithHelp("pgdn/pgup", "scroll a page")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "follow action")),
		Chat:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Chat, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Section, k.Enter},
		{k.Scroll, k.Page, k.Chat},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns section routing, the listener
// registry, the chat widget, the help overlay and the command palette.
// Exactly one section view is mounted at a time; switching sections
// unmounts the old one first, which releases its listeners and stops its
// animation loop.
type Model struct {
	page     pagePort
	logger   *slog.Logger
	registry *components.Registry

	hero      heroview.Model
	cards     cardsview.Model
	templates templatesview.Model
	contact   contactview.Model
	chat      chatview.Model

	activeTab tabID
	chatOpen  bool
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	pending   tea.Cmd
	width     int
	height    int
}

// NewModel loads the page content and mounts the first section.
func NewModel(ports Ports, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	m := Model{
		page:     ports.Page,
		logger:   logger,
		registry: components.NewRegistry(),
		chat:     chatview.New(ports.Dialog),
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(),
		status:   "ready",
	}

	var content pagedto.PageOutput
	if ports.Page != nil {
		c, err := ports.Page.Content(context.Background())
		if err != nil {
			m.status = "page: " + err.Error()
		}
		content = c
	}
	m.hero = heroview.New(content.Hero)
	m.cards = cardsview.New(ports.Cards, content.Stack, opts.CellWidthPx, opts.CellHeightPx)
	m.templates = templatesview.New(content.Templates)
	m.contact = contactview.New(ports.Particles, content.CTA, contactview.Options{
		Count:        opts.ParticleCount,
		Radius:       opts.SphereRadius,
		FramePeriod:  opts.FramePeriod,
		CellWidthPx:  opts.CellWidthPx,
		CellHeightPx: opts.CellHeightPx,
		Clock:        opts.Clock,
	})

	m.activeTab = tabHome
	m.pending = m.mountActive()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.pending
}

// ─── accessors ───────────────────────────────────────────────────────────────

func (m Model) ActiveSection() string { return tabSections[m.activeTab] }

func (m Model) ChatOpen() bool { return m.chatOpen }

func (m Model) Status() string { return m.status }

func (m Model) Registry() *components.Registry { return m.registry }

func (m Model) Hero() heroview.Model { return m.hero }

func (m Model) Cards() cardsview.Model { return m.cards }

func (m Model) Templates() templatesview.Model { return m.templates }

func (m Model) Contact() contactview.Model { return m.contact }

func (m Model) Chat() chatview.Model { return m.chat }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		return m, m.dispatch(components.EventResize, msg)

	case components.ScrollMsg:
		return m, m.dispatch(components.EventScroll, msg)

	case components.FrameMsg:
		// Ticks reach the view even after unmount; its loop drops stale ones.
		if msg.LoopID == contactview.Owner {
			var cmd tea.Cmd
			m.contact, cmd = m.contact.Update(msg)
			return m, cmd
		}
		return m, nil

	case components.NavigateMsg:
		return m.navigate(msg.Route)

	case components.StatusMsg:
		m.status = msg.Text
		return m, nil

	case chatview.CloseMsg:
		m.closeChat()
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return m, m.dispatch(components.EventScroll, components.ScrollMsg{Lines: 1})
		case tea.MouseButtonWheelUp:
			return m, m.dispatch(components.EventScroll, components.ScrollMsg{Lines: -1})
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m.quit()
	}
	if m.showHelp {
		if k == "?" || k == "esc" {
			m.showHelp = false
		}
		return m, nil
	}
	if m.chatOpen {
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		if err := m.chat.Err(); err != nil {
			m.status = "chat: " + err.Error()
		}
		return m, cmd
	}

	switch k {
	case "q":
		return m.quit()
	case "tab":
		return m, m.switchTo((m.activeTab + 1) % tabCount)
	case "shift+tab":
		return m, m.switchTo((m.activeTab + tabCount - 1) % tabCount)
	case "1", "2", "3", "4":
		return m, m.switchTo(tabID(k[0] - '1'))
	case "?":
		m.showHelp = true
		return m, nil
	case ":":
		return m, m.palette.Open()
	case "c":
		return m, m.openChat()
	case "j", "down":
		return m, m.dispatch(components.EventScroll, components.ScrollMsg{Lines: 1})
	case "k", "up":
		return m, m.dispatch(components.EventScroll, components.ScrollMsg{Lines: -1})
	case "pgdown", " ":
		return m, m.dispatch(components.EventScroll, components.ScrollMsg{Pages: 1})
	case "pgup":
		return m, m.dispatch(components.EventScroll, components.ScrollMsg{Pages: -1})
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.hero, cmd = m.hero.Update(msg)
	case tabCards:
		m.cards, cmd = m.cards.Update(msg)
	case tabTemplates:
		m.templates, cmd = m.templates.Update(msg)
	case tabContact:
		m.contact, cmd = m.contact.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(1, m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar))

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, theme.Pane.Render(m.help.View(m.keys)))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.chatOpen:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Right, lipgloss.Bottom, m.chat.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.hero.View()
	case tabCards:
		return m.cards.View()
	case tabTemplates:
		return m.templates.View()
	case tabContact:
		return m.contact.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := components.Gradient("◆ landing", theme.BrandGradient) + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  c:chat  :::palette  q:quit")
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "goto":
		if rest == "" {
			m.status = "usage: goto <section>"
			return m, nil
		}
		return m.navigate(slug.Anchor(rest))

	case "open":
		if rest == "" {
			m.status = "usage: open <route>"
			return m, nil
		}
		return m.navigate(rest)

	case "chat":
		return m, m.openChat()

	case "chat:reset":
		cmd := m.openChat()
		m.chat = m.chat.Reset()
		m.status = "chat restarted"
		return m, cmd

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── navigation & lifecycle ─────────────────────────────────────────────────

func (m Model) navigate(route string) (tea.Model, tea.Cmd) {
	if m.page == nil {
		return m, nil
	}
	dest, err := m.page.Navigate(context.Background(), route)
	if err != nil {
		m.status = "navigate: " + err.Error()
		return m, nil
	}
	if dest.External != "" {
		m.logger.Info("external navigation", "route", dest.External)
		m.status = "→ " + dest.External + " (outside the landing page)"
		return m, nil
	}
	for i, id := range tabSections {
		if id == dest.Section {
			cmd := m.switchTo(tabID(i))
			m.status = "→ " + dest.Label
			return m, cmd
		}
	}
	m.status = "section has no view: " + dest.Section
	return m, nil
}

func (m *Model) switchTo(tab tabID) tea.Cmd {
	if tab == m.activeTab {
		return nil
	}
	m.unmountActive()
	m.activeTab = tab
	return m.mountActive()
}

// mountActive mounts the current section and hands it the known size, the
// way a freshly attached view measures itself.
func (m *Model) mountActive() tea.Cmd {
	var mountCmd, sizeCmd tea.Cmd
	size := m.sectionSize()
	switch m.activeTab {
	case tabHome:
		m.hero, mountCmd = m.hero.Mount(m.registry)
		if size.Width > 0 {
			m.hero, sizeCmd = m.hero.Update(size)
		}
	case tabCards:
		m.cards, mountCmd = m.cards.Mount(m.registry)
		if size.Width > 0 && m.registry.Listening(components.EventResize, cardsview.Owner) {
			m.cards, sizeCmd = m.cards.Update(size)
		}
	case tabTemplates:
		m.templates, mountCmd = m.templates.Mount(m.registry)
		if size.Width > 0 {
			m.templates, sizeCmd = m.templates.Update(size)
		}
	case tabContact:
		m.contact, mountCmd = m.contact.Mount(m.registry)
		if size.Width > 0 {
			m.contact, sizeCmd = m.contact.Update(size)
		}
	}
	m.logger.Debug("section mounted", "section", tabSections[m.activeTab])
	return tea.Batch(mountCmd, sizeCmd)
}

func (m *Model) unmountActive() {
	switch m.activeTab {
	case tabHome:
		m.hero = m.hero.Unmount()
	case tabCards:
		m.cards = m.cards.Unmount()
	case tabTemplates:
		m.templates = m.templates.Unmount()
	case tabContact:
		m.contact = m.contact.Unmount()
	}
	m.logger.Debug("section unmounted", "section", tabSections[m.activeTab])
}

func (m *Model) openChat() tea.Cmd {
	if m.chatOpen {
		return nil
	}
	m.chatOpen = true
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Mount(m.registry)
	if err := m.chat.Err(); err != nil {
		m.status = "chat: " + err.Error()
	}
	if m.width > 0 {
		var sized tea.Cmd
		m.chat, sized = m.chat.Update(tea.WindowSizeMsg{Width: m.width, Height: max(1, m.height-chromeLines)})
		cmd = tea.Batch(cmd, sized)
	}
	return cmd
}

func (m *Model) closeChat() {
	if !m.chatOpen {
		return
	}
	m.chatOpen = false
	m.chat = m.chat.Unmount()
}

// quit tears down every mounted view before leaving the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.closeChat()
	m.unmountActive()
	return m, tea.Quit
}

// dispatch forwards a host event to the views currently listening to it.
func (m *Model) dispatch(event components.Event, msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		msg = tea.WindowSizeMsg{Width: size.Width, Height: max(1, size.Height-chromeLines)}
	}
	var cmds []tea.Cmd
	for _, owner := range m.registry.Subscribers(event) {
		var cmd tea.Cmd
		switch owner {
		case heroview.Owner:
			m.hero, cmd = m.hero.Update(msg)
		case cardsview.Owner:
			m.cards, cmd = m.cards.Update(msg)
		case templatesview.Owner:
			m.templates, cmd = m.templates.Update(msg)
		case contactview.Owner:
			m.contact, cmd = m.contact.Update(msg)
		case chatview.Owner:
			m.chat, cmd = m.chat.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) sectionSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(1, m.height-chromeLines)}
}
