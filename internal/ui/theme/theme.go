package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#0a0a0a")
	Mantle   = lipgloss.Color("#111827")
	Surface0 = lipgloss.Color("#1f2937")
	Surface1 = lipgloss.Color("#374151")
	Text     = lipgloss.Color("#f3f4f6")
	Subtext0 = lipgloss.Color("#9ca3af")
	Blue     = lipgloss.Color("#3b82f6")
	Purple   = lipgloss.Color("#a855f7")
	Pink     = lipgloss.Color("#ec4899")

	// BrandGradient is the blue to purple sweep used on headlines and
	// highlighted words.
	BrandGradient = []string{"#3b82f6", "#a855f7"}

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(1)

	// PaneActive frames the overlay that currently owns the keyboard.
	PaneActive = Pane.BorderForeground(Purple)

	Badge = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Subtext0).
		Padding(0, 1)

	Button = lipgloss.NewStyle().
		Foreground(Text).
		Background(Surface0).
		Padding(0, 2)

	ButtonActive = Button.Background(Purple).Bold(true)

	Title = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Purple).Bold(true)
)
