package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manhattan(a, b Coordinate) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func TestStandard_PathsAreTotalAndDeterministic(t *testing.T) {
	b := Standard()
	again := Standard()

	for _, color := range Colors {
		for pos := EntryPosition; pos <= MaxPosition; pos++ {
			got, err := b.PositionToCoordinate(color, pos)
			require.NoError(t, err, "color %s position %d", color, pos)
			want, err := again.PositionToCoordinate(color, pos)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.True(t, got.inBounds(), "color %s position %d at %s", color, pos, got)
		}
	}
}

func TestStandard_KnownSquares(t *testing.T) {
	b := Standard()

	tests := []struct {
		name  string
		color Color
		pos   int
		want  Coordinate
	}{
		{name: "red entry", color: Red, pos: EntryPosition, want: Coordinate{X: 4, Y: 13}},
		{name: "red exit", color: Red, pos: ExitPosition, want: Coordinate{X: 3, Y: 13}},
		{name: "red lane start", color: Red, pos: FinishLaneStart, want: Coordinate{X: 4, Y: 14}},
		{name: "red terminal", color: Red, pos: MaxPosition, want: Coordinate{X: 8, Y: 14}},
		{name: "blue entry", color: Blue, pos: EntryPosition, want: Coordinate{X: 16, Y: 4}},
		{name: "yellow entry", color: Yellow, pos: EntryPosition, want: Coordinate{X: 25, Y: 16}},
		{name: "green entry", color: Green, pos: EntryPosition, want: Coordinate{X: 13, Y: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.PositionToCoordinate(tt.color, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStandard_LoopIsSharedAndConnected(t *testing.T) {
	b := Standard()
	loop := b.LoopCoordinates()
	require.Len(t, loop, LoopLength)

	for _, color := range Colors {
		for pos := EntryPosition; pos <= ExitPosition; pos++ {
			c, err := b.PositionToCoordinate(color, pos)
			require.NoError(t, err)
			assert.True(t, b.OnLoop(c), "%s position %d", color, pos)

			next := pos%LoopLength + 1
			n, err := b.PositionToCoordinate(color, next)
			require.NoError(t, err)
			assert.Equal(t, 1, manhattan(c, n), "%s %d->%d", color, pos, next)
		}
		for pos := FinishLaneStart; pos <= MaxPosition; pos++ {
			c, err := b.PositionToCoordinate(color, pos)
			require.NoError(t, err)
			assert.False(t, b.OnLoop(c), "%s lane position %d", color, pos)
		}
	}
}

func TestStandard_ColorsAreOffsetAlongTheLoop(t *testing.T) {
	b := Standard()
	for _, color := range Colors {
		next := color.Next()
		for pos := EntryPosition; pos <= ExitPosition-ColorOffset; pos++ {
			a, err := b.PositionToCoordinate(color, pos+ColorOffset)
			require.NoError(t, err)
			n, err := b.PositionToCoordinate(next, pos)
			require.NoError(t, err)
			assert.Equal(t, a, n, "%s %d vs %s %d", color, pos+ColorOffset, next, pos)
		}
	}
}

func TestBoard_PositionOutOfRange(t *testing.T) {
	b := Standard()
	for _, pos := range []int{-1, 0, MaxPosition + 1} {
		_, err := b.PositionToCoordinate(Red, pos)
		assert.ErrorIs(t, err, ErrPositionOutOfRange, "position %d", pos)
	}
	_, err := b.PositionToCoordinate(Color(9), 1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	_, err = b.YardCoordinate(Red, 0)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	yard, err := b.YardCoordinate(Red, 1)
	require.NoError(t, err)
	assert.False(t, b.OnLoop(yard))
}

func TestNew_RejectsCorruptGeometry(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *Geometry)
	}{
		{
			name:    "missing position",
			corrupt: func(g *Geometry) { delete(g.Paths[Blue], 40) },
		},
		{
			name:    "missing path",
			corrupt: func(g *Geometry) { g.Paths[Green] = nil },
		},
		{
			name:    "off the board",
			corrupt: func(g *Geometry) { g.Paths[Red][95] = Coordinate{X: 0, Y: 40} },
		},
		{
			name:    "duplicate loop square",
			corrupt: func(g *Geometry) { g.Paths[Red][2] = g.Paths[Red][1] },
		},
		{
			name:    "lane on the loop",
			corrupt: func(g *Geometry) { g.Paths[Yellow][94] = g.Paths[Yellow][10] },
		},
		{
			name:    "loop square not shared",
			corrupt: func(g *Geometry) { g.Paths[Blue][5] = Coordinate{X: 1, Y: 1} },
		},
		{
			name:    "yard on the loop",
			corrupt: func(g *Geometry) { g.Yards[Red][2] = g.Paths[Red][30] },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := StandardGeometry()
			tt.corrupt(&g)
			_, err := New(g)
			assert.ErrorIs(t, err, ErrCorruptGeometry)
		})
	}
}

func TestCoordinate_InBounds(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want bool
	}{
		{c: Coordinate{X: 1, Y: 1}, want: true},
		{c: Coordinate{X: GridSize - 1, Y: GridSize - 1}, want: true},
		{c: Coordinate{X: 0, Y: 5}, want: false},
		{c: Coordinate{X: 5, Y: GridSize}, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.inBounds(), "%s", tt.c)
	}
	assert.Equal(t, 28, GridSize-1)
}

func TestToPixel(t *testing.T) {
	assert.Equal(t, Point{X: 12, Y: 87}, ToPixel(Coordinate{X: 1, Y: 4}))
}

func TestPositionClassification(t *testing.T) {
	assert.True(t, IsSharedLoop(1))
	assert.True(t, IsSharedLoop(92))
	assert.False(t, IsSharedLoop(93))
	assert.True(t, IsFinishLane(93))
	assert.True(t, IsFinishLane(95))
	assert.False(t, IsFinishLane(96))
	assert.True(t, IsHome(96))
	assert.True(t, IsHome(97))
	assert.False(t, IsHome(0))
}

func TestColor(t *testing.T) {
	assert.Equal(t, Blue, Red.Next())
	assert.Equal(t, Red, Green.Next())
	c, err := ParseColor("yellow")
	require.NoError(t, err)
	assert.Equal(t, Yellow, c)
	_, err = ParseColor("purple")
	assert.Error(t, err)
}
