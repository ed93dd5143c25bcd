package dto

// ScrollInput is one scroll event: where the track starts in the scroll
// container and how far the container is scrolled.
type ScrollInput struct {
	TrackStartPx     float64
	ScrollPx         float64
	ViewportHeightPx float64
}

type ResizeInput struct {
	WidthPx int
}

type PoseInput struct {
	TrackTopPx       float64
	ViewportHeightPx float64
	CardCount        int
}

type CardPoseOutput struct {
	Index       int
	Title       string
	Description string
	Gradient    []string
	Icon        string
	Kind        string
	RotationDeg float64
	Z           int
	Transform   string
}

type StackOutput struct {
	ActiveIndex int
	Placement   string
	// TrackViewports is the scroll track height in viewport heights.
	TrackViewports int
	Cards          []CardPoseOutput
}
