package domain

import (
	"fmt"
	"math"
)

const (
	// TrackViewports is the scroll track height in viewport heights.
	TrackViewports = 3

	ExitedTranslateVH = -120.0
	ExitedRotationDeg = -48.0
	StackStepDeg      = -10.0
	CenterPct         = -50.0

	// NoCardExited is the active index before any card has left the stack.
	NoCardExited = -1
)

type Card struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Gradient    []string `yaml:"gradient"`
	Icon        string   `yaml:"icon"`
}

type PoseKind string

const (
	PoseExited  PoseKind = "exited"
	PoseActive  PoseKind = "active"
	PoseStacked PoseKind = "stacked"
)

type Length struct {
	Value float64
	Unit  string
}

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}

// Pose is a card's transform. Z is fixed per card, so earlier cards stay on
// top of later ones until they exit.
type Pose struct {
	Kind        PoseKind
	X, Y        Length
	RotationDeg float64
	Z           int
}

func (p Pose) Transform() string {
	return fmt.Sprintf("translate(%s, %s) rotate(%gdeg)", p.X, p.Y, p.RotationDeg)
}

type Placement string

const (
	// PlacementBefore stacks the text panel above the scroll track.
	PlacementBefore Placement = "before"
	// PlacementInside puts the text panel beside the cards in the track.
	PlacementInside Placement = "inside"
)

// ComputeActiveIndex maps the scroll track's top offset (relative to the
// viewport top) to the index of the last exited card. ok is false while the
// track has not reached the top of the viewport; callers keep their previous
// index then. The result is clamped to [NoCardExited, cardCount-1].
func ComputeActiveIndex(topOffset, viewportHeight float64, cardCount int) (int, bool) {
	if viewportHeight <= 0 || cardCount <= 0 {
		return 0, false
	}
	p := topOffset / viewportHeight
	if p > 0 {
		return 0, false
	}
	index := int(math.Abs(math.Ceil(p*float64(cardCount)/2))) - 1
	return ClampIndex(index, cardCount), true
}

func ClampIndex(index, cardCount int) int {
	if index < NoCardExited {
		return NoCardExited
	}
	if index > cardCount-1 {
		return cardCount - 1
	}
	return index
}

// TransformFor poses card cardIndex given the active index.
func TransformFor(cardIndex, activeIndex, cardCount int) Pose {
	z := cardCount - cardIndex
	centered := Length{Value: CenterPct, Unit: "%"}
	switch {
	case cardIndex <= activeIndex:
		return Pose{
			Kind:        PoseExited,
			X:           centered,
			Y:           Length{Value: ExitedTranslateVH, Unit: "vh"},
			RotationDeg: ExitedRotationDeg,
			Z:           z,
		}
	case cardIndex == activeIndex+1:
		return Pose{Kind: PoseActive, X: centered, Y: centered, RotationDeg: 0, Z: z}
	default:
		return Pose{
			Kind:        PoseStacked,
			X:           centered,
			Y:           centered,
			RotationDeg: StackStepDeg * float64(cardIndex-activeIndex-1),
			Z:           z,
		}
	}
}

// PlacementFor relocates the text panel at the width breakpoint.
func PlacementFor(widthPx, breakpointPx int) Placement {
	if widthPx < breakpointPx {
		return PlacementBefore
	}
	return PlacementInside
}

// TrackTopOffset is where the track's top sits relative to the viewport top
// when the page is scrolled by scrollPx and the track starts at trackStartPx.
func TrackTopOffset(trackStartPx, scrollPx float64) float64 {
	return trackStartPx - scrollPx
}
