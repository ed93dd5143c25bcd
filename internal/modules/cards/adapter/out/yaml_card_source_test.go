package out

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/platform/content"
	apperrors "landing/internal/platform/errors"
)

func TestLoadCardsFromEmbeddedPage(t *testing.T) {
	t.Parallel()
	src := NewYAMLCardSource(content.Embedded(), content.PageFile)

	cards, err := src.LoadCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 6)
	for _, c := range cards {
		assert.NotEmpty(t, c.Title)
		assert.Len(t, c.Gradient, 2)
	}
}

func TestLoadCardsIgnoresOtherPageKeys(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{"page.yaml": {Data: []byte("hero:\n  badge: x\ncards:\n  - title: One\n    icon: star\n")}}

	cards, err := NewYAMLCardSource(fsys, "page.yaml").LoadCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "One", cards[0].Title)
	assert.Equal(t, "star", cards[0].Icon)
}

func TestLoadCardsMissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewYAMLCardSource(fstest.MapFS{}, "page.yaml").LoadCards(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
