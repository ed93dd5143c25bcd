package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"landing/internal/modules/particles/domain"
	particlesdto "landing/internal/modules/particles/dto"
	particlesin "landing/internal/modules/particles/port/in"
	"landing/internal/modules/particles/service"
	apperrors "landing/internal/platform/errors"
)

type Interactor struct {
	svc       *service.FieldService
	particles []domain.Particle
	radius    float64
}

func NewInteractor(svc *service.FieldService) particlesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Initialize(_ context.Context, input particlesdto.InitInput) (particlesdto.FieldOutput, error) {
	if input.Count <= 0 {
		return particlesdto.FieldOutput{}, fmt.Errorf("%w: particle count must be positive", apperrors.ErrInvalidInput)
	}
	if input.Radius <= 0 {
		return particlesdto.FieldOutput{}, fmt.Errorf("%w: sphere radius must be positive", apperrors.ErrInvalidInput)
	}
	i.particles = i.svc.Initialize(input.Count, input.Radius)
	i.radius = input.Radius
	return particlesdto.FieldOutput{Count: len(i.particles), Radius: i.radius}, nil
}

// Frame advances the field to the given time and projects it onto the
// surface derived from the viewport width. A zero-size surface yields an
// empty frame.
func (i *Interactor) Frame(_ context.Context, input particlesdto.FrameInput) (particlesdto.FrameOutput, error) {
	if i.particles == nil {
		return particlesdto.FrameOutput{}, fmt.Errorf("%w: particle field", apperrors.ErrNotMounted)
	}
	size := domain.SurfaceSize(input.ViewportWidthPx)
	if size == 0 {
		return particlesdto.FrameOutput{}, nil
	}
	i.svc.Advance(i.particles, input.ElapsedMs)
	projected := i.svc.Project(i.particles, size)
	sort.SliceStable(projected, func(a, b int) bool { return projected[a].Depth > projected[b].Depth })

	points := make([]particlesdto.PointOutput, len(projected))
	for idx, p := range projected {
		points[idx] = particlesdto.PointOutput{
			X: p.X, Y: p.Y, R: p.R, Depth: p.Depth,
			Red:   channel(p.Color.R),
			Green: channel(p.Color.G),
			Blue:  channel(p.Color.B),
			Alpha: p.Color.A,
		}
	}
	return particlesdto.FrameOutput{SurfacePx: size, Points: points}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
