package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pageoutadapter "landing/internal/modules/page/adapter/out"
	"landing/internal/modules/page/domain"
	pagedto "landing/internal/modules/page/dto"
	pagein "landing/internal/modules/page/port/in"
	"landing/internal/modules/page/service"
	"landing/internal/modules/page/usecase"
	"landing/internal/platform/content"
	apperrors "landing/internal/platform/errors"
	"landing/internal/platform/logging"
)

type countingSource struct {
	page  domain.Page
	calls int
}

func (c *countingSource) LoadPage(context.Context) (domain.Page, error) {
	c.calls++
	return c.page, nil
}

func newEmbedded(t *testing.T) pagein.Usecase {
	t.Helper()
	src := pageoutadapter.NewYAMLPageSource(content.Embedded(), content.PageFile)
	return usecase.NewInteractor(service.NewPageService(src, logging.NewNop()))
}

func TestContentFromEmbeddedPage(t *testing.T) {
	t.Parallel()
	out, err := newEmbedded(t).Content(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Sections, 4)
	assert.Equal(t, "#stacked-cards", out.Sections[1].Route)
	require.Len(t, out.Hero.Actions, 2)
	assert.Equal(t, "/marketplace", out.Hero.Actions[0].Route)
	assert.Equal(t, "/contact", out.Hero.Actions[1].Route)
	assert.Len(t, out.Templates.Items, 4)
	assert.Len(t, out.CTA.Lines, 3)
	assert.Equal(t, "/templates", out.CTA.Action.Route)
}

func TestNavigate(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)
	ctx := context.Background()

	tests := []struct {
		route string
		want  pagedto.DestinationOutput
	}{
		{route: "#contact", want: pagedto.DestinationOutput{Section: "contact", Label: "Contact"}},
		{route: "#Stacked Cards", want: pagedto.DestinationOutput{Section: "stacked-cards", Label: "Stacked Cards"}},
		{route: " #home ", want: pagedto.DestinationOutput{Section: "home", Label: "Home"}},
		{route: "/marketplace", want: pagedto.DestinationOutput{External: "/marketplace"}},
	}
	for _, tt := range tests {
		got, err := uc.Navigate(ctx, pagedto.NavigateInput{Route: tt.route})
		require.NoError(t, err, tt.route)
		assert.Equal(t, tt.want, got, tt.route)
	}
}

func TestNavigateUnknownSection(t *testing.T) {
	t.Parallel()
	_, err := newEmbedded(t).Navigate(context.Background(), pagedto.NavigateInput{Route: "#pricing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestNavigateEmptyRoute(t *testing.T) {
	t.Parallel()
	_, err := newEmbedded(t).Navigate(context.Background(), pagedto.NavigateInput{Route: "  "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestPageLoadedOnce(t *testing.T) {
	t.Parallel()
	action := domain.Action{Label: "go", Route: "/x"}
	src := &countingSource{page: domain.Page{
		Sections:  []domain.Section{{ID: "home", Label: "Home"}},
		Stack:     domain.StackPanel{Action: action},
		Templates: domain.Showcase{Action: action},
		CTA:       domain.CallToAction{Action: action},
	}}
	uc := usecase.NewInteractor(service.NewPageService(src, logging.NewNop()))
	ctx := context.Background()

	_, err := uc.Content(ctx)
	require.NoError(t, err)
	_, err = uc.Navigate(ctx, pagedto.NavigateInput{Route: "#home"})
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
}

func TestInvalidPageRejected(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewPageService(&countingSource{}, logging.NewNop()))
	_, err := uc.Content(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
