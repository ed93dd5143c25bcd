package domain

import (
	"fmt"
	"strings"

	apperrors "landing/internal/platform/errors"
)

type Section struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Action struct {
	Label string `yaml:"label"`
	Route string `yaml:"route"`
}

type Hero struct {
	Badge       string   `yaml:"badge"`
	Headline    []string `yaml:"headline"`
	Gradient    []string `yaml:"gradient"`
	Description string   `yaml:"description"`
	Actions     []Action `yaml:"actions"`
}

// StackPanel is the sticky text shown next to the stacked cards.
type StackPanel struct {
	Headline []string `yaml:"headline"`
	Lines    []string `yaml:"lines"`
	Action   Action   `yaml:"action"`
}

type Template struct {
	Title       string   `yaml:"title"`
	Rating      string   `yaml:"rating"`
	Category    string   `yaml:"category"`
	Image       string   `yaml:"image"`
	Description string   `yaml:"description"`
	Gradient    []string `yaml:"gradient"`
}

type Showcase struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Items    []Template `yaml:"items"`
	Action   Action     `yaml:"action"`
}

type CallToAction struct {
	Badge    string   `yaml:"badge"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Lines    []string `yaml:"lines"`
	Action   Action   `yaml:"action"`
}

type Page struct {
	Sections  []Section    `yaml:"sections"`
	Hero      Hero         `yaml:"hero"`
	Stack     StackPanel   `yaml:"stack"`
	Templates Showcase     `yaml:"templates"`
	CTA       CallToAction `yaml:"cta"`
}

// Destination is where a route leads: an in-page section or a location
// outside the landing page.
type Destination struct {
	Section  string
	External string
}

func (d Destination) IsExternal() bool {
	return d.External != ""
}

func (p Page) Actions() []Action {
	actions := append([]Action(nil), p.Hero.Actions...)
	return append(actions, p.Stack.Action, p.Templates.Action, p.CTA.Action)
}

func (p Page) Validate() error {
	if len(p.Sections) == 0 {
		return fmt.Errorf("%w: page has no sections", apperrors.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(p.Sections))
	for _, s := range p.Sections {
		id := strings.TrimSpace(s.ID)
		if id == "" || strings.TrimSpace(s.Label) == "" {
			return fmt.Errorf("%w: section needs id and label", apperrors.ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate section %q", apperrors.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}
	for _, a := range p.Actions() {
		if strings.TrimSpace(a.Label) == "" || strings.TrimSpace(a.Route) == "" {
			return fmt.Errorf("%w: action %q needs label and route", apperrors.ErrInvalidInput, a.Label)
		}
	}
	return nil
}

func (p Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
