package in

import (
	"context"

	"landing/internal/modules/dialog/dto"
)

type Usecase interface {
	Open(ctx context.Context) (dto.StateOutput, error)
	Choose(ctx context.Context, input dto.ChooseInput) (dto.StateOutput, error)
	Reset(ctx context.Context) (dto.StateOutput, error)
	State(ctx context.Context) (dto.StateOutput, error)
	Summary(ctx context.Context) (dto.ScriptSummaryOutput, error)
}
