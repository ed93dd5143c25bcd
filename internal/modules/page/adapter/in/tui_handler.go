package in

import (
	"context"

	pagedto "landing/internal/modules/page/dto"
	pagein "landing/internal/modules/page/port/in"
)

type TUIHandler struct {
	usecase pagein.Usecase
}

func NewTUIHandler(usecase pagein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Content(ctx context.Context) (pagedto.PageOutput, error) {
	return h.usecase.Content(ctx)
}

func (h TUIHandler) Navigate(ctx context.Context, route string) (pagedto.DestinationOutput, error) {
	return h.usecase.Navigate(ctx, pagedto.NavigateInput{Route: route})
}
