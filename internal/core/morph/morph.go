// Package morph implements the per-tile morph cycle: the tagged tile state,
// the stage timing and the easing curve.
package morph

import (
	"time"

	"chosenoffset.com/ripplegrid/internal/core/shape"
)

// State is the lifecycle of one tile within the current ripple. The concrete
// types are Idle, Morphing and Settled.
type State interface {
	isState()
}

// Idle tiles have not been reached by the current ripple.
type Idle struct{}

// Morphing tiles run their cycle on a timer that started at Start.
type Morphing struct {
	Start time.Duration
}

// Settled tiles have finished one cycle and rest on the square.
type Settled struct{}

func (Idle) isState()     {}
func (Morphing) isState() {}
func (Settled) isState()  {}

// Stage is one segment of the cycle.
type Stage int

const (
	SquareToCircle Stage = iota
	CircleToTriangle
	TriangleToSquare
	stageCount
)

// Resting is the shape idle and settled tiles show.
const Resting = shape.Square

var stageKinds = [stageCount][2]shape.Kind{
	SquareToCircle:   {shape.Square, shape.Circle},
	CircleToTriangle: {shape.Circle, shape.Triangle},
	TriangleToSquare: {shape.Triangle, shape.Square},
}

// Source returns the shape a stage morphs from.
func (s Stage) Source() shape.Kind {
	return stageKinds[s][0]
}

// Target returns the shape a stage morphs to.
func (s Stage) Target() shape.Kind {
	return stageKinds[s][1]
}

func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "invalid"
	}
	return s.Source().String() + "->" + s.Target().String()
}

// Timing describes one segment: a morph followed by a hold on the target.
type Timing struct {
	Morph time.Duration
	Hold  time.Duration
}

// Segment returns the length of one stage.
func (t Timing) Segment() time.Duration {
	return t.Morph + t.Hold
}

// Total returns the length of the full three-stage cycle.
func (t Timing) Total() time.Duration {
	return time.Duration(stageCount) * t.Segment()
}

// Progress is the evaluated position inside a cycle.
type Progress struct {
	Stage Stage
	K     float64 // eased blend factor between Stage.Source and Stage.Target
	Done  bool
}

// At evaluates the cycle at elapsed time since the tile started morphing.
// Negative elapsed time is treated as zero.
func (t Timing) At(elapsed time.Duration) Progress {
	elapsed = max(elapsed, 0)
	seg := t.Segment()
	total := t.Total()
	if elapsed >= total || seg <= 0 {
		return Progress{Stage: TriangleToSquare, K: 1, Done: true}
	}

	p := elapsed % total
	stage := Stage(p / seg)
	pin := p - time.Duration(stage)*seg

	k := 1.0
	if pin < t.Morph {
		k = EaseInOutCubic(float64(pin) / float64(t.Morph))
	}
	return Progress{Stage: stage, K: k}
}

// EaseInOutCubic is the symmetric cubic ease: 4x³ below 0.5,
// 1-(-2x+2)³/2 above.
func EaseInOutCubic(x float64) float64 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	f := -2*x + 2
	return 1 - f*f*f/2
}
