package out

import (
	"context"

	"landing/internal/modules/dialog/domain"
)

type ScriptSource interface {
	LoadScript(ctx context.Context) (domain.Script, error)
}
