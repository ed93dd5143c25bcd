package in

import (
	"context"

	"landing/internal/modules/cards/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.StackOutput, error)
	Scroll(ctx context.Context, input dto.ScrollInput) (dto.StackOutput, error)
	Resize(ctx context.Context, input dto.ResizeInput) (dto.StackOutput, error)
	Pose(ctx context.Context, input dto.PoseInput) (dto.StackOutput, error)
}
