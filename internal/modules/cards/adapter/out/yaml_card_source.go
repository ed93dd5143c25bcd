package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"landing/internal/modules/cards/domain"
	cardsout "landing/internal/modules/cards/port/out"
	apperrors "landing/internal/platform/errors"
)

// YAMLCardSource reads the `cards` list of the page content file.
type YAMLCardSource struct {
	fsys fs.FS
	name string
}

func NewYAMLCardSource(fsys fs.FS, name string) cardsout.CardSource {
	return &YAMLCardSource{fsys: fsys, name: name}
}

func (s *YAMLCardSource) LoadCards(_ context.Context) ([]domain.Card, error) {
	b, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("page content %s: %w", s.name, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read page content: %w", err)
	}
	var doc struct {
		Cards []domain.Card `yaml:"cards"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return doc.Cards, nil
}
