package in

import (
	"context"

	cardsdto "landing/internal/modules/cards/dto"
	cardsin "landing/internal/modules/cards/port/in"
)

type CLIHandler struct {
	usecase cardsin.Usecase
}

func NewCLIHandler(usecase cardsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Pose(ctx context.Context, trackTopPx, viewportHeightPx float64, count int) (cardsdto.StackOutput, error) {
	return h.usecase.Pose(ctx, cardsdto.PoseInput{TrackTopPx: trackTopPx, ViewportHeightPx: viewportHeightPx, CardCount: count})
}
