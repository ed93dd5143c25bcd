package out

import (
	"context"

	"landing/internal/modules/page/domain"
)

type PageSource interface {
	LoadPage(ctx context.Context) (domain.Page, error)
}
