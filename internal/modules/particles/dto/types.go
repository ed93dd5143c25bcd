package dto

type InitInput struct {
	Count  int
	Radius float64
}

type FieldOutput struct {
	Count  int
	Radius float64
}

type FrameInput struct {
	ElapsedMs       float64
	ViewportWidthPx int
}

type PointOutput struct {
	X, Y  float64
	R     float64
	Depth float64
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha float64
}

// FrameOutput lists projected points far-to-near on a square surface.
type FrameOutput struct {
	SurfacePx int
	Points    []PointOutput
}
