package service

import (
	"context"
	"fmt"
	"strings"

	"landing/internal/modules/cards/domain"
	cardsout "landing/internal/modules/cards/port/out"
	apperrors "landing/internal/platform/errors"
)

type StackService struct {
	source       cardsout.CardSource
	breakpointPx int
}

func NewStackService(source cardsout.CardSource, breakpointPx int) *StackService {
	return &StackService{source: source, breakpointPx: breakpointPx}
}

func (s *StackService) Cards(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.source.LoadCards(ctx)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no cards to stack", apperrors.ErrInvalidInput)
	}
	for i, c := range cards {
		if strings.TrimSpace(c.Title) == "" {
			return nil, fmt.Errorf("%w: card %d has no title", apperrors.ErrInvalidInput, i)
		}
	}
	return cards, nil
}

// Poses lays out every card for the active index.
func (s *StackService) Poses(count, activeIndex int) []domain.Pose {
	poses := make([]domain.Pose, count)
	for i := range poses {
		poses[i] = domain.TransformFor(i, activeIndex, count)
	}
	return poses
}

func (s *StackService) Placement(widthPx int) domain.Placement {
	return domain.PlacementFor(widthPx, s.breakpointPx)
}
