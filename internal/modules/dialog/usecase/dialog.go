package usecase

import (
	"context"
	"fmt"
	"strings"

	"landing/internal/modules/dialog/domain"
	dialogdto "landing/internal/modules/dialog/dto"
	dialogin "landing/internal/modules/dialog/port/in"
	"landing/internal/modules/dialog/service"
	apperrors "landing/internal/platform/errors"
)

type Interactor struct {
	svc *service.DialogService
}

func NewInteractor(svc *service.DialogService) dialogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Open(ctx context.Context) (dialogdto.StateOutput, error) {
	sessionID, conv, err := i.svc.Session(ctx)
	if err != nil {
		return dialogdto.StateOutput{}, err
	}
	return toState(sessionID, conv), nil
}

// Choose resolves the option among the ones currently offered. Ids from
// elsewhere in the tree are rejected so the walk stays on the tree's edges.
func (i *Interactor) Choose(ctx context.Context, input dialogdto.ChooseInput) (dialogdto.StateOutput, error) {
	optionID := strings.TrimSpace(input.OptionID)
	if optionID == "" {
		return dialogdto.StateOutput{}, fmt.Errorf("%w: option id is required", apperrors.ErrInvalidInput)
	}
	_, conv, err := i.svc.Session(ctx)
	if err != nil {
		return dialogdto.StateOutput{}, err
	}
	node, ok := domain.Find(conv.Cursor(), optionID)
	if !ok {
		return dialogdto.StateOutput{}, fmt.Errorf("%w: option %q is not offered", apperrors.ErrInvalidInput, optionID)
	}
	sessionID, conv, err := i.svc.Choose(ctx, node)
	if err != nil {
		return dialogdto.StateOutput{}, err
	}
	return toState(sessionID, conv), nil
}

func (i *Interactor) Reset(ctx context.Context) (dialogdto.StateOutput, error) {
	sessionID, conv, err := i.svc.Reset(ctx)
	if err != nil {
		return dialogdto.StateOutput{}, err
	}
	return toState(sessionID, conv), nil
}

func (i *Interactor) State(ctx context.Context) (dialogdto.StateOutput, error) {
	return i.Open(ctx)
}

func (i *Interactor) Summary(ctx context.Context) (dialogdto.ScriptSummaryOutput, error) {
	script, err := i.svc.Script(ctx)
	if err != nil {
		return dialogdto.ScriptSummaryOutput{}, err
	}
	nodes, depth := script.Count()
	return dialogdto.ScriptSummaryOutput{
		Greeting:    script.Greeting,
		RootOptions: len(script.Options),
		Nodes:       nodes,
		Depth:       depth,
	}, nil
}

func toState(sessionID string, conv *domain.Conversation) dialogdto.StateOutput {
	transcript := conv.Transcript()
	turns := make([]dialogdto.TurnOutput, len(transcript))
	for idx, t := range transcript {
		turns[idx] = dialogdto.TurnOutput{Speaker: string(t.Speaker), Text: t.Text, Blocks: domain.Blocks(t.Text)}
	}
	cursor := conv.Cursor()
	options := make([]dialogdto.OptionOutput, len(cursor))
	for idx, n := range cursor {
		options[idx] = dialogdto.OptionOutput{ID: n.ID, Text: n.Prompt, HasFollowUps: !n.IsLeaf()}
	}
	return dialogdto.StateOutput{SessionID: sessionID, Transcript: turns, Options: options}
}
