package in

import (
	"context"

	cardsdto "landing/internal/modules/cards/dto"
	cardsin "landing/internal/modules/cards/port/in"
)

type TUIHandler struct {
	usecase cardsin.Usecase
}

func NewTUIHandler(usecase cardsin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Load(ctx context.Context) (cardsdto.StackOutput, error) {
	return h.usecase.Load(ctx)
}

func (h TUIHandler) Scroll(ctx context.Context, trackStartPx, scrollPx, viewportHeightPx float64) (cardsdto.StackOutput, error) {
	return h.usecase.Scroll(ctx, cardsdto.ScrollInput{TrackStartPx: trackStartPx, ScrollPx: scrollPx, ViewportHeightPx: viewportHeightPx})
}

func (h TUIHandler) Resize(ctx context.Context, widthPx int) (cardsdto.StackOutput, error) {
	return h.usecase.Resize(ctx, cardsdto.ResizeInput{WidthPx: widthPx})
}
