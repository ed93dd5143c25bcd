package out_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dialogout "landing/internal/modules/dialog/adapter/out"
	"landing/internal/platform/content"
	apperrors "landing/internal/platform/errors"
)

func TestEmbeddedScriptLoadsAndValidates(t *testing.T) {
	t.Parallel()
	src := dialogout.NewYAMLScriptSource(content.Embedded(), content.DialogFile)

	script, err := src.LoadScript(context.Background())
	require.NoError(t, err)
	require.NoError(t, script.Validate())

	require.Len(t, script.Options, 4)
	assert.Equal(t, "What is this template?", script.Options[0].Prompt)
	assert.Len(t, script.Options[0].Children, 2)
	assert.Equal(t, "Back to main menu", script.Options[3].Prompt)
	assert.True(t, script.Options[3].IsLeaf())
}

func TestMissingScriptIsNotFound(t *testing.T) {
	t.Parallel()
	src := dialogout.NewYAMLScriptSource(fstest.MapFS{}, "dialog.yaml")
	_, err := src.LoadScript(context.Background())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnknownFieldsAreRejected(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{"dialog.yaml": {Data: []byte("greeting: hi\nmenu: []\n")}}
	_, err := dialogout.NewYAMLScriptSource(fsys, "dialog.yaml").LoadScript(context.Background())
	require.ErrorContains(t, err, "decode dialog script")
}
