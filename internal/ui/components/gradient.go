package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend returns the color at t in [0,1] along the hex stops, blended in
// Lab space. Unparseable stops are skipped.
func Blend(stops []string, t float64) colorful.Color {
	colors := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		if c, err := colorful.Hex(s); err == nil {
			colors = append(colors, c)
		}
	}
	switch len(colors) {
	case 0:
		return colorful.Color{R: 1, G: 1, B: 1}
	case 1:
		return colors[0]
	}
	t = max(0, min(1, t))
	seg := t * float64(len(colors)-1)
	i := int(seg)
	if i >= len(colors)-1 {
		return colors[len(colors)-1]
	}
	return colors[i].BlendLab(colors[i+1], seg-float64(i)).Clamped()
}

// Gradient colors each rune of text along the stops, left to right.
func Gradient(text string, stops []string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := Blend(stops, t)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return sb.String()
}
