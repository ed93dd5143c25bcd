package out

import (
	"math/rand/v2"

	particlesout "landing/internal/modules/particles/port/out"
)

// PCGSampler is a seeded generator, so a given seed always builds the same
// sphere.
type PCGSampler struct {
	rng *rand.Rand
}

func NewPCGSampler(seed uint64) particlesout.Sampler {
	return &PCGSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *PCGSampler) Float64() float64 {
	return s.rng.Float64()
}
