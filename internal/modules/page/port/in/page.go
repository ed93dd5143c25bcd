package in

import (
	"context"

	"landing/internal/modules/page/dto"
)

type Usecase interface {
	Content(ctx context.Context) (dto.PageOutput, error)
	Navigate(ctx context.Context, input dto.NavigateInput) (dto.DestinationOutput, error)
}
