package out

import (
	"context"

	"landing/internal/modules/cards/domain"
)

type CardSource interface {
	LoadCards(ctx context.Context) ([]domain.Card, error)
}
