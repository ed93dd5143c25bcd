package out

// Sampler yields uniform values in [0, 1).
type Sampler interface {
	Float64() float64
}
