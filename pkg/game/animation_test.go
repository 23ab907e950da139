package game

import (
	"testing"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimation_walk(t *testing.T) {
	tests := []struct {
		name       string
		start      board.Point
		facing     Facing
		squares    []board.Point
		steps      int
		wantFrames int
		wantFacing Facing
	}{
		{
			name:       "right",
			start:      board.Point{X: 12, Y: 12},
			facing:     FacingLeft,
			squares:    []board.Point{{X: 37, Y: 12}},
			steps:      10,
			wantFrames: 10,
			wantFacing: FacingRight,
		},
		{
			name:       "left",
			start:      board.Point{X: 37, Y: 12},
			facing:     FacingRight,
			squares:    []board.Point{{X: 12, Y: 12}},
			steps:      10,
			wantFrames: 10,
			wantFacing: FacingLeft,
		},
		{
			name:       "vertical keeps facing",
			start:      board.Point{X: 12, Y: 12},
			facing:     FacingRight,
			squares:    []board.Point{{X: 12, Y: 37}, {X: 12, Y: 62}},
			steps:      10,
			wantFrames: 20,
			wantFacing: FacingRight,
		},
		{
			name:       "at least one frame per square",
			start:      board.Point{X: 12, Y: 12},
			facing:     FacingLeft,
			squares:    []board.Point{{X: 37, Y: 12}},
			steps:      0,
			wantFrames: 1,
			wantFacing: FacingRight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Animation
			a.walk(tt.start, tt.facing, tt.squares, tt.steps)
			assert.Equal(t, tt.wantFrames, a.Pending())

			var last Frame
			for a.Moving() {
				frame, ok := a.Advance()
				require.True(t, ok)
				assert.False(t, frame.Jump)
				last = frame
			}
			assert.Equal(t, tt.squares[len(tt.squares)-1], last.Position)
			assert.Equal(t, tt.wantFacing, last.Facing)
		})
	}
}

func TestAnimation_walkInterpolates(t *testing.T) {
	var a Animation
	a.walk(board.Point{X: 0, Y: 0}, FacingLeft, []board.Point{{X: 10, Y: 0}}, 10)

	for i := 1; i <= 10; i++ {
		frame, ok := a.Advance()
		require.True(t, ok)
		assert.InDelta(t, float64(i), frame.Position.X, 0.001)
		assert.Equal(t, 0.0, frame.Position.Y)
	}
	_, ok := a.Advance()
	assert.False(t, ok)
}

func TestAnimation_Skip(t *testing.T) {
	var a Animation
	_, ok := a.Skip()
	assert.False(t, ok)

	a.walk(board.Point{X: 0, Y: 0}, FacingLeft, []board.Point{{X: 25, Y: 0}, {X: 25, Y: 25}}, 10)
	a.jump(board.Point{X: 100, Y: 100}, FacingLeft)

	frame, ok := a.Skip()
	require.True(t, ok)
	assert.Equal(t, board.Point{X: 100, Y: 100}, frame.Position)
	assert.True(t, frame.Jump)
	assert.False(t, a.Moving())
	assert.Equal(t, 0, a.Pending())
}

func TestAnimation_tail(t *testing.T) {
	var a Animation
	pos, facing := a.tail(board.Point{X: 1, Y: 2}, FacingRight)
	assert.Equal(t, board.Point{X: 1, Y: 2}, pos)
	assert.Equal(t, FacingRight, facing)

	a.walk(board.Point{X: 50, Y: 0}, FacingRight, []board.Point{{X: 25, Y: 0}}, 5)
	pos, facing = a.tail(board.Point{X: 1, Y: 2}, FacingRight)
	assert.Equal(t, board.Point{X: 25, Y: 0}, pos)
	assert.Equal(t, FacingLeft, facing)
}
