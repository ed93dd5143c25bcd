package domain

import (
	"fmt"
	"strings"

	apperrors "landing/internal/platform/errors"
)

// MaxDepth bounds how deeply options may nest in a loaded script.
const MaxDepth = 16

// LineBreak separates the display blocks of a response.
const LineBreak = "\n"

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Node is one entry of the static conversation tree. Nodes are never
// mutated after the script is loaded.
type Node struct {
	ID       string `yaml:"id"`
	Prompt   string `yaml:"text"`
	Response string `yaml:"response"`
	Children []Node `yaml:"next,omitempty"`
}

func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

type Turn struct {
	Speaker Speaker
	Text    string
}

// Script is the whole conversation: the greeting and the root menu.
type Script struct {
	Greeting string `yaml:"greeting"`
	Options  []Node `yaml:"options"`
}

func (s Script) Validate() error {
	if strings.TrimSpace(s.Greeting) == "" {
		return fmt.Errorf("%w: greeting is required", apperrors.ErrInvalidInput)
	}
	if len(s.Options) == 0 {
		return fmt.Errorf("%w: root menu is empty", apperrors.ErrInvalidInput)
	}
	seen := map[string]struct{}{}
	return validateNodes(s.Options, 1, seen)
}

func validateNodes(nodes []Node, depth int, seen map[string]struct{}) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: options nested deeper than %d", apperrors.ErrInvalidInput, MaxDepth)
	}
	for _, n := range nodes {
		if strings.TrimSpace(n.ID) == "" {
			return fmt.Errorf("%w: option with prompt %q has no id", apperrors.ErrInvalidInput, n.Prompt)
		}
		if _, ok := seen[n.ID]; ok {
			return fmt.Errorf("%w: duplicate option id %q", apperrors.ErrInvalidInput, n.ID)
		}
		seen[n.ID] = struct{}{}
		if strings.TrimSpace(n.Prompt) == "" {
			return fmt.Errorf("%w: option %q has no text", apperrors.ErrInvalidInput, n.ID)
		}
		if strings.TrimSpace(n.Response) == "" {
			return fmt.Errorf("%w: option %q has no response", apperrors.ErrInvalidInput, n.ID)
		}
		if err := validateNodes(n.Children, depth+1, seen); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the tree and its depth.
func (s Script) Count() (nodes, depth int) {
	var walk func([]Node, int)
	walk = func(ns []Node, d int) {
		if len(ns) > 0 && d > depth {
			depth = d
		}
		for _, n := range ns {
			nodes++
			walk(n.Children, d+1)
		}
	}
	walk(s.Options, 1)
	return nodes, depth
}

// Find looks up id among nodes (not recursively).
func Find(nodes []Node, id string) (Node, bool) {
	for _, n := range nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Blocks splits text into display blocks on LineBreak, preserving order and
// empty segments.
func Blocks(text string) []string {
	return strings.Split(text, LineBreak)
}
