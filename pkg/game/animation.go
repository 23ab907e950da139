package game

import (
	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Facing is the horizontal direction a pawn sprite looks at.
type Facing uint8

const (
	FacingLeft Facing = iota
	FacingRight
)

func (f Facing) String() string {
	if f == FacingRight {
		return "right"
	}
	return "left"
}

// Frame is one rendered step of a pawn animation.
type Frame struct {
	Position board.Point
	Facing   Facing
	// Jump is set on frames that place the pawn without walking (teleport, sent home)
	Jump bool
}

// Animation is the queue of frames a pawn still has to play.
// Game state is already final when frames are queued; frames are cosmetic.
type Animation struct {
	frames []Frame
	index  int
}

// Moving reports whether frames remain to be played.
func (a *Animation) Moving() bool {
	return a.index < len(a.frames)
}

// Pending returns the number of frames left to play.
func (a *Animation) Pending() int {
	return len(a.frames) - a.index
}

// Advance pops the next frame.
func (a *Animation) Advance() (Frame, bool) {
	if !a.Moving() {
		return Frame{}, false
	}
	frame := a.frames[a.index]
	a.index++
	if !a.Moving() {
		a.frames = a.frames[:0]
		a.index = 0
	}
	return frame, true
}

// Skip drops every pending frame and returns the last one.
func (a *Animation) Skip() (Frame, bool) {
	if !a.Moving() {
		return Frame{}, false
	}
	last := a.frames[len(a.frames)-1]
	a.frames = a.frames[:0]
	a.index = 0
	return last, true
}

// tail returns where the queued animation will leave the pawn.
func (a *Animation) tail(position board.Point, facing Facing) (board.Point, Facing) {
	if !a.Moving() {
		return position, facing
	}
	last := a.frames[len(a.frames)-1]
	return last.Position, last.Facing
}

// walk queues stepsPerSquare interpolated frames towards each square in turn.
// The facing follows the dominant horizontal movement and is kept on vertical steps.
func (a *Animation) walk(start board.Point, facing Facing, squares []board.Point, stepsPerSquare int) {
	if stepsPerSquare < 1 {
		stepsPerSquare = 1
	}
	current := start
	for _, target := range squares {
		dx := target.X - current.X
		dy := target.Y - current.Y
		if abs(dx) > abs(dy) {
			if dx > 0 {
				facing = FacingRight
			} else {
				facing = FacingLeft
			}
		}

		tweenX := gween.New(float32(current.X), float32(target.X), float32(stepsPerSquare), ease.Linear)
		tweenY := gween.New(float32(current.Y), float32(target.Y), float32(stepsPerSquare), ease.Linear)
		for step := 1; step <= stepsPerSquare; step++ {
			x, _ := tweenX.Update(1)
			y, _ := tweenY.Update(1)
			position := board.Point{X: float64(x), Y: float64(y)}
			if step == stepsPerSquare {
				position = target
			}
			a.frames = append(a.frames, Frame{Position: position, Facing: facing})
		}
		current = target
	}
}

// jump queues a single frame placing the pawn at target.
func (a *Animation) jump(target board.Point, facing Facing) {
	a.frames = append(a.frames, Frame{Position: target, Facing: facing, Jump: true})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
