package in

import (
	"context"

	"landing/internal/modules/particles/dto"
)

type Usecase interface {
	Initialize(ctx context.Context, input dto.InitInput) (dto.FieldOutput, error)
	Frame(ctx context.Context, input dto.FrameInput) (dto.FrameOutput, error)
}
