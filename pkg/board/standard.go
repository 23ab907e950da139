package board

import "fmt"

// The standard board is a cross on a 28x28 tile grid (coordinates 1..GridSize-1).
// Each arm is three tiles wide: the pawns walk its two outer lines and the
// finish lane runs down the middle. Red owns the left arm; every other
// color is Red rotated clockwise by a quarter turn per step in turn order.

// armSquares is the top arm of the loop walked clockwise, starting right
// after the top-left inner corner and ending on the top-right one.
func armSquares() []Coordinate {
	squares := make([]Coordinate, 0, ColorOffset)
	for y := 12; y >= 3; y-- {
		squares = append(squares, Coordinate{X: 13, Y: y})
	}
	for x := 14; x <= 16; x++ {
		squares = append(squares, Coordinate{X: x, Y: 3})
	}
	for y := 4; y <= 13; y++ {
		squares = append(squares, Coordinate{X: 16, Y: y})
	}
	return squares
}

// rotate turns c clockwise around the board center, times quarter turns.
func rotate(c Coordinate, times int) Coordinate {
	for i := 0; i < times%4; i++ {
		c = Coordinate{X: GridSize - c.Y, Y: c.X}
	}
	return c
}

// redEntryIndex is the index of Red's entry square in the clockwise loop
// that starts with the top arm.
const redEntryIndex = 3*ColorOffset + 13

var (
	redLane = [MaxPosition - ExitPosition]Coordinate{
		{X: 4, Y: 14}, {X: 5, Y: 14}, {X: 6, Y: 14}, {X: 7, Y: 14}, {X: 8, Y: 14},
	}
	redYard = [PawnsPerColor]Coordinate{
		{X: 6, Y: 6}, {X: 9, Y: 6}, {X: 6, Y: 9}, {X: 9, Y: 9},
	}
)

// StandardGeometry returns the fixed geometry of the game board.
func StandardGeometry() Geometry {
	arm := armSquares()
	loop := make([]Coordinate, 0, LoopLength)
	for quarter := 0; quarter < NumColors; quarter++ {
		for _, c := range arm {
			loop = append(loop, rotate(c, quarter))
		}
	}

	var g Geometry
	for _, color := range Colors {
		turns := int(color)
		path := make(map[int]Coordinate, MaxPosition)
		start := (redEntryIndex + turns*ColorOffset) % LoopLength
		for pos := EntryPosition; pos <= ExitPosition; pos++ {
			path[pos] = loop[(start+pos-1)%LoopLength]
		}
		for i, c := range redLane {
			path[FinishLaneStart+i] = rotate(c, turns)
		}
		g.Paths[color] = path
		for i, c := range redYard {
			g.Yards[color][i] = rotate(c, turns)
		}
	}
	return g
}

// Standard returns the validated standard board. It panics if the built-in
// geometry is inconsistent, which can only happen through a code change.
func Standard() *Board {
	b, err := New(StandardGeometry())
	if err != nil {
		panic(fmt.Sprintf("standard board geometry is invalid: %v", err))
	}
	return b
}
