package domain

import "math"

// Motion and projection constants. Times are in milliseconds.
const (
	RotationSpeed  = 0.0003 // radians per ms about the vertical axis
	BobFrequency   = 0.001
	BobAmplitude   = 5.0
	ColorFrequency = 0.002
	ColorSwing     = 50.0

	Perspective    = 1000.0
	CameraDistance = 200.0
	MinDrawRadius  = 0.5

	MaxSurfacePx  = 500
	SurfaceMargin = 40
)

type Vec3 struct {
	X, Y, Z float64
}

// RGBA holds 0-255 channels and a 0-1 alpha.
type RGBA struct {
	R, G, B float64
	A       float64
}

type Particle struct {
	Base    Vec3
	Current Vec3
	Radius  float64
	Color   RGBA
}

type Projected struct {
	X, Y  float64
	R     float64
	Depth float64
	Color RGBA
}

// SpherePoint maps two uniform samples in [0,1) onto a sphere of the given
// radius. The polar angle goes through arccos so points do not bunch up at
// the poles.
func SpherePoint(radius, u, v float64) Vec3 {
	theta := u * 2 * math.Pi
	phi := math.Acos(v*2 - 1)
	return Vec3{
		X: radius * math.Sin(phi) * math.Cos(theta),
		Y: radius * math.Sin(phi) * math.Sin(theta),
		Z: radius * math.Cos(phi),
	}
}

// ColorAt is the shared palette at a point in time.
func ColorAt(elapsedMs float64) RGBA {
	c := math.Sin(elapsedMs*ColorFrequency) * ColorSwing
	return RGBA{R: 150 + c, G: 100 + c, B: 255, A: 0.6}
}

// PositionAt derives a particle position from its base position only, so a
// dropped frame never carries error into the next one.
func PositionAt(base Vec3, elapsedMs float64) Vec3 {
	angle := elapsedMs * RotationSpeed
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: base.X*cos - base.Z*sin,
		Y: base.Y + math.Sin(elapsedMs*BobFrequency)*BobAmplitude,
		Z: base.X*sin + base.Z*cos,
	}
}

// At returns the particle as it looks elapsedMs after the animation started.
func (p Particle) At(elapsedMs float64) Particle {
	p.Current = PositionAt(p.Base, elapsedMs)
	p.Color = ColorAt(elapsedMs)
	return p
}

// Project maps the current position onto the drawing surface around center.
func (p Particle) Project(cx, cy float64) Projected {
	scale := Perspective / (Perspective + p.Current.Z + CameraDistance)
	return Projected{
		X:     p.Current.X*scale + cx,
		Y:     p.Current.Y*scale + cy,
		R:     math.Max(MinDrawRadius, p.Radius*scale),
		Depth: p.Current.Z,
		Color: p.Color,
	}
}

// SurfaceSize is the side of the square drawing surface for a viewport.
func SurfaceSize(viewportWidthPx int) int {
	size := viewportWidthPx - SurfaceMargin
	if size > MaxSurfacePx {
		size = MaxSurfacePx
	}
	if size < 0 {
		return 0
	}
	return size
}
