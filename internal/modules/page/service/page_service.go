package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"landing/internal/modules/page/domain"
	pageout "landing/internal/modules/page/port/out"
	apperrors "landing/internal/platform/errors"
	"landing/internal/platform/slug"
)

type PageService struct {
	source pageout.PageSource
	logger *slog.Logger
	page   *domain.Page
}

func NewPageService(source pageout.PageSource, logger *slog.Logger) *PageService {
	return &PageService{source: source, logger: logger}
}

// Page loads and validates the content once.
func (s *PageService) Page(ctx context.Context) (domain.Page, error) {
	if s.page != nil {
		return *s.page, nil
	}
	page, err := s.source.LoadPage(ctx)
	if err != nil {
		return domain.Page{}, err
	}
	if err := page.Validate(); err != nil {
		return domain.Page{}, err
	}
	s.page = &page
	s.logger.Debug("page content loaded", "sections", len(page.Sections), "templates", len(page.Templates.Items))
	return page, nil
}

// Resolve maps a route to a destination. "#id" routes must name a section;
// anything else leaves the landing page.
func (s *PageService) Resolve(ctx context.Context, route string) (domain.Destination, error) {
	route = strings.TrimSpace(route)
	if route == "" {
		return domain.Destination{}, fmt.Errorf("%w: empty route", apperrors.ErrInvalidInput)
	}
	if !strings.HasPrefix(route, "#") {
		s.logger.Debug("external navigation", "route", route)
		return domain.Destination{External: route}, nil
	}
	page, err := s.Page(ctx)
	if err != nil {
		return domain.Destination{}, err
	}
	id := strings.TrimPrefix(route, "#")
	if _, ok := page.Section(id); ok {
		return domain.Destination{Section: id}, nil
	}
	// Section labels are accepted too ("#Stacked Cards").
	anchor := slug.Anchor(id)
	for _, sec := range page.Sections {
		if slug.Anchor(sec.Label) == anchor || slug.Anchor(sec.ID) == anchor {
			return domain.Destination{Section: sec.ID}, nil
		}
	}
	return domain.Destination{}, fmt.Errorf("section %q: %w", id, apperrors.ErrNotFound)
}
