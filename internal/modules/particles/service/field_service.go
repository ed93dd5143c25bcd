package service

import (
	"landing/internal/modules/particles/domain"
	particlesout "landing/internal/modules/particles/port/out"
)

type FieldService struct {
	sampler particlesout.Sampler
}

func NewFieldService(sampler particlesout.Sampler) *FieldService {
	return &FieldService{sampler: sampler}
}

// Initialize samples count particles uniformly on the sphere surface.
func (s *FieldService) Initialize(count int, sphereRadius float64) []domain.Particle {
	particles := make([]domain.Particle, count)
	for i := range particles {
		base := domain.SpherePoint(sphereRadius, s.sampler.Float64(), s.sampler.Float64())
		particles[i] = domain.Particle{
			Base:    base,
			Current: base,
			Radius:  s.sampler.Float64()*1.5 + 0.5,
			Color: domain.RGBA{
				R: s.sampler.Float64()*100 + 100,
				G: s.sampler.Float64()*50 + 100,
				B: 255,
				A: 0.6,
			},
		}
	}
	return particles
}

// Advance recomputes every particle's derived position and color in place.
func (s *FieldService) Advance(particles []domain.Particle, elapsedMs float64) {
	for i := range particles {
		particles[i] = particles[i].At(elapsedMs)
	}
}

// Project maps particles onto a square surface of side surfacePx.
func (s *FieldService) Project(particles []domain.Particle, surfacePx int) []domain.Projected {
	if surfacePx <= 0 {
		return nil
	}
	center := float64(surfacePx) / 2
	out := make([]domain.Projected, len(particles))
	for i, p := range particles {
		out[i] = p.Project(center, center)
	}
	return out
}
