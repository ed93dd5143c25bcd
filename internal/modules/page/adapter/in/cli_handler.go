package in

import (
	"context"

	pagedto "landing/internal/modules/page/dto"
	pagein "landing/internal/modules/page/port/in"
)

type CLIHandler struct {
	usecase pagein.Usecase
}

func NewCLIHandler(usecase pagein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Content(ctx context.Context) (pagedto.PageOutput, error) {
	return h.usecase.Content(ctx)
}
