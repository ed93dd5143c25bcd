package usecase

import (
	"context"
	"fmt"

	"landing/internal/modules/cards/domain"
	cardsdto "landing/internal/modules/cards/dto"
	cardsin "landing/internal/modules/cards/port/in"
	"landing/internal/modules/cards/service"
	apperrors "landing/internal/platform/errors"
)

// Interactor keeps the stack state for the mounted cards section: the
// active index and where the text panel sits.
type Interactor struct {
	svc       *service.StackService
	cards     []domain.Card
	active    int
	placement domain.Placement
}

func NewInteractor(svc *service.StackService) cardsin.Usecase {
	return &Interactor{svc: svc, active: domain.NoCardExited, placement: domain.PlacementInside}
}

// Load returns the stack in its initial state: nothing exited and the panel
// inside the track. The host calls it each time the section mounts.
func (i *Interactor) Load(ctx context.Context) (cardsdto.StackOutput, error) {
	if err := i.ensureCards(ctx); err != nil {
		return cardsdto.StackOutput{}, err
	}
	i.active = domain.NoCardExited
	i.placement = domain.PlacementInside
	return i.output(), nil
}

func (i *Interactor) ensureCards(ctx context.Context) error {
	if i.cards != nil {
		return nil
	}
	cards, err := i.svc.Cards(ctx)
	if err != nil {
		return err
	}
	i.cards = cards
	return nil
}

// Scroll recomputes the active index for one scroll event. While the track
// is still below the viewport top the previous index is kept.
func (i *Interactor) Scroll(ctx context.Context, input cardsdto.ScrollInput) (cardsdto.StackOutput, error) {
	if err := i.ensureCards(ctx); err != nil {
		return cardsdto.StackOutput{}, err
	}
	top := domain.TrackTopOffset(input.TrackStartPx, input.ScrollPx)
	if idx, ok := domain.ComputeActiveIndex(top, input.ViewportHeightPx, len(i.cards)); ok {
		i.active = idx
	}
	return i.output(), nil
}

// Resize only moves the text panel; card poses are left as they are.
func (i *Interactor) Resize(ctx context.Context, input cardsdto.ResizeInput) (cardsdto.StackOutput, error) {
	if err := i.ensureCards(ctx); err != nil {
		return cardsdto.StackOutput{}, err
	}
	if input.WidthPx > 0 {
		i.placement = i.svc.Placement(input.WidthPx)
	}
	return i.output(), nil
}

// Pose is the stateless form used by the CLI.
func (i *Interactor) Pose(ctx context.Context, input cardsdto.PoseInput) (cardsdto.StackOutput, error) {
	cards, err := i.svc.Cards(ctx)
	if err != nil {
		return cardsdto.StackOutput{}, err
	}
	count := input.CardCount
	if count <= 0 {
		count = len(cards)
	}
	if count > len(cards) {
		return cardsdto.StackOutput{}, fmt.Errorf("%w: only %d cards available", apperrors.ErrInvalidInput, len(cards))
	}
	active := domain.NoCardExited
	if idx, ok := domain.ComputeActiveIndex(input.TrackTopPx, input.ViewportHeightPx, count); ok {
		active = idx
	}
	return render(cards[:count], i.svc.Poses(count, active), active, domain.PlacementInside), nil
}

func (i *Interactor) output() cardsdto.StackOutput {
	return render(i.cards, i.svc.Poses(len(i.cards), i.active), i.active, i.placement)
}

func render(cards []domain.Card, poses []domain.Pose, active int, placement domain.Placement) cardsdto.StackOutput {
	out := cardsdto.StackOutput{
		ActiveIndex:    active,
		Placement:      string(placement),
		TrackViewports: domain.TrackViewports,
		Cards:          make([]cardsdto.CardPoseOutput, len(cards)),
	}
	for idx, c := range cards {
		p := poses[idx]
		out.Cards[idx] = cardsdto.CardPoseOutput{
			Index:       idx,
			Title:       c.Title,
			Description: c.Description,
			Gradient:    c.Gradient,
			Icon:        c.Icon,
			Kind:        string(p.Kind),
			RotationDeg: p.RotationDeg,
			Z:           p.Z,
			Transform:   p.Transform(),
		}
	}
	return out
}
