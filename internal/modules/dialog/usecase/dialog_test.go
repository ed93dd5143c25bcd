package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dialogoutadapter "landing/internal/modules/dialog/adapter/out"
	"landing/internal/modules/dialog/domain"
	dialogdto "landing/internal/modules/dialog/dto"
	dialogin "landing/internal/modules/dialog/port/in"
	"landing/internal/modules/dialog/service"
	"landing/internal/modules/dialog/usecase"
	"landing/internal/platform/content"
	apperrors "landing/internal/platform/errors"
	"landing/internal/platform/logging"
)

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("sess-%d", s.n)
}

type fakeSource struct {
	script domain.Script
	err    error
	calls  int
}

func (f *fakeSource) LoadScript(context.Context) (domain.Script, error) {
	f.calls++
	return f.script, f.err
}

func newEmbedded(t *testing.T) dialogin.Usecase {
	t.Helper()
	src := dialogoutadapter.NewYAMLScriptSource(content.Embedded(), content.DialogFile)
	return usecase.NewInteractor(service.NewDialogService(src, &seqID{}, logging.NewNop()))
}

func optionIDs(opts []dialogdto.OptionOutput) []string {
	ids := make([]string, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	return ids
}

func TestOpenSeedsGreetingAndRootMenu(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)

	state, err := uc.Open(context.Background())
	require.NoError(t, err)

	require.Len(t, state.Transcript, 1)
	assert.Equal(t, "bot", state.Transcript[0].Speaker)
	assert.Contains(t, state.Transcript[0].Text, "template guide")
	assert.Equal(t, []string{"1", "2", "3", "4"}, optionIDs(state.Options))
	assert.Equal(t, "sess-1", state.SessionID)
}

func TestChoosingFirstOptionOffersItsChildren(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)
	_, err := uc.Open(context.Background())
	require.NoError(t, err)

	state, err := uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: "1"})
	require.NoError(t, err)

	require.Len(t, state.Transcript, 3)
	assert.Equal(t, dialogdto.TurnOutput{Speaker: "user", Text: "What is this template?", Blocks: []string{"What is this template?"}}, state.Transcript[1])
	assert.Equal(t, "bot", state.Transcript[2].Speaker)
	assert.Contains(t, state.Transcript[2].Text, "Next.js 14")
	assert.Equal(t, []string{"1-1", "1-2"}, optionIDs(state.Options))
	assert.Equal(t, "sess-1", state.SessionID)
}

func TestBackToMainMenuResetsCursorToRoot(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)

	state, err := uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: "4"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4"}, optionIDs(state.Options))
	require.Len(t, state.Transcript, 3)
	assert.Equal(t, "Back to main menu", state.Transcript[1].Text)
}

func TestLeafChildReturnsToRootMenu(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)
	_, err := uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: "1"})
	require.NoError(t, err)

	state, err := uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: "1-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4"}, optionIDs(state.Options))
	require.Len(t, state.Transcript, 5)
	last := state.Transcript[4]
	assert.Equal(t, "Getting started is easy:", last.Blocks[0])
	assert.Equal(t, "", last.Blocks[5], "blank line must survive as its own block")
	assert.Len(t, last.Blocks, 7)
}

func TestChooseRejectsOptionsNotOnOffer(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)

	for _, id := range []string{"", "1-1", "missing"} {
		_, err := uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: id})
		require.Error(t, err, "id %q", id)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}
	state, err := uc.State(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Transcript, 1, "rejected choices leave the transcript untouched")
}

func TestResetStartsFreshSession(t *testing.T) {
	t.Parallel()
	uc := newEmbedded(t)
	_, err := uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: "2"})
	require.NoError(t, err)

	state, err := uc.Reset(context.Background())
	require.NoError(t, err)

	assert.Len(t, state.Transcript, 1)
	assert.Equal(t, []string{"1", "2", "3", "4"}, optionIDs(state.Options))
	assert.Equal(t, "sess-2", state.SessionID)
}

func TestScriptIsLoadedOnceAndValidated(t *testing.T) {
	t.Parallel()
	src := &fakeSource{script: domain.Script{Greeting: "hi", Options: []domain.Node{{ID: "x", Prompt: "X", Response: "Y"}}}}
	uc := usecase.NewInteractor(service.NewDialogService(src, &seqID{}, logging.NewNop()))

	_, err := uc.Open(context.Background())
	require.NoError(t, err)
	_, err = uc.Choose(context.Background(), dialogdto.ChooseInput{OptionID: "x"})
	require.NoError(t, err)
	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, dialogdto.ScriptSummaryOutput{Greeting: "hi", RootOptions: 1, Nodes: 1, Depth: 1}, summary)
}

func TestInvalidScriptSurfacesOnOpen(t *testing.T) {
	t.Parallel()
	src := &fakeSource{script: domain.Script{Greeting: "hi"}}
	uc := usecase.NewInteractor(service.NewDialogService(src, &seqID{}, logging.NewNop()))

	_, err := uc.Open(context.Background())
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
