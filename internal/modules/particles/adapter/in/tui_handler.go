package in

import (
	"context"

	particlesdto "landing/internal/modules/particles/dto"
	particlesin "landing/internal/modules/particles/port/in"
)

type TUIHandler struct {
	usecase particlesin.Usecase
}

func NewTUIHandler(usecase particlesin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Initialize(ctx context.Context, count int, radius float64) (particlesdto.FieldOutput, error) {
	return h.usecase.Initialize(ctx, particlesdto.InitInput{Count: count, Radius: radius})
}

func (h TUIHandler) Frame(ctx context.Context, elapsedMs float64, viewportWidthPx int) (particlesdto.FrameOutput, error) {
	return h.usecase.Frame(ctx, particlesdto.FrameInput{ElapsedMs: elapsedMs, ViewportWidthPx: viewportWidthPx})
}
