package in

import (
	"context"

	dialogdto "landing/internal/modules/dialog/dto"
	dialogin "landing/internal/modules/dialog/port/in"
)

type TUIHandler struct {
	usecase dialogin.Usecase
}

func NewTUIHandler(usecase dialogin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Open(ctx context.Context) (dialogdto.StateOutput, error) {
	return h.usecase.Open(ctx)
}

// ChooseAt picks the option at a zero-based position in the current menu,
// the way the widget's numbered buttons address it.
func (h TUIHandler) ChooseAt(ctx context.Context, index int) (dialogdto.StateOutput, error) {
	state, err := h.usecase.State(ctx)
	if err != nil {
		return dialogdto.StateOutput{}, err
	}
	if index < 0 || index >= len(state.Options) {
		return state, nil
	}
	return h.usecase.Choose(ctx, dialogdto.ChooseInput{OptionID: state.Options[index].ID})
}

func (h TUIHandler) Reset(ctx context.Context) (dialogdto.StateOutput, error) {
	return h.usecase.Reset(ctx)
}
