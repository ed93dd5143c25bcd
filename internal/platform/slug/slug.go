package slug

import (
	"regexp"
	"strings"
)

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}

// Anchor turns a section label into an in-page route ("Stacked Cards" ->
// "#stacked-cards"). Inputs that already start with '#' are normalized.
func Anchor(label string) string {
	return "#" + Make(strings.TrimPrefix(strings.TrimSpace(label), "#"))
}
