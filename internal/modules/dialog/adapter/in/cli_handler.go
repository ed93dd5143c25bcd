package in

import (
	"context"

	dialogdto "landing/internal/modules/dialog/dto"
	dialogin "landing/internal/modules/dialog/port/in"
)

type CLIHandler struct {
	usecase dialogin.Usecase
}

func NewCLIHandler(usecase dialogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Open(ctx context.Context) (dialogdto.StateOutput, error) {
	return h.usecase.Open(ctx)
}

func (h CLIHandler) Choose(ctx context.Context, optionID string) (dialogdto.StateOutput, error) {
	return h.usecase.Choose(ctx, dialogdto.ChooseInput{OptionID: optionID})
}

func (h CLIHandler) Reset(ctx context.Context) (dialogdto.StateOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Summary(ctx context.Context) (dialogdto.ScriptSummaryOutput, error) {
	return h.usecase.Summary(ctx)
}
