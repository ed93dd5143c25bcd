package out

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"landing/internal/modules/page/domain"
	pageout "landing/internal/modules/page/port/out"
	apperrors "landing/internal/platform/errors"
)

// YAMLPageSource decodes the page content file. Keys owned by other
// modules (cards) are skipped.
type YAMLPageSource struct {
	fsys fs.FS
	name string
}

func NewYAMLPageSource(fsys fs.FS, name string) pageout.PageSource {
	return &YAMLPageSource{fsys: fsys, name: name}
}

func (s *YAMLPageSource) LoadPage(_ context.Context) (domain.Page, error) {
	b, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Page{}, fmt.Errorf("page content %s: %w", s.name, apperrors.ErrNotFound)
		}
		return domain.Page{}, fmt.Errorf("read page content: %w", err)
	}
	var page domain.Page
	if err := yaml.Unmarshal(b, &page); err != nil {
		return domain.Page{}, fmt.Errorf("decode page content: %w", err)
	}
	return page, nil
}
