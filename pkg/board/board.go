package board

import (
	"errors"
	"fmt"
)

const (
	// NumColors is the number of players and paths on the board
	NumColors = 4
	// PawnsPerColor is the number of pawns each player owns
	PawnsPerColor = 4

	// LoopLength is the number of squares in the outer loop shared by every color
	LoopLength = 92
	// ColorOffset is the distance along the loop between two consecutive colors' entry squares
	ColorOffset = LoopLength / NumColors
	// EntryPosition is the first square a pawn occupies after leaving the yard
	EntryPosition = 1
	// ExitPosition is the last shared square before a color turns into its finish lane
	ExitPosition = LoopLength
	// FinishLaneStart is the first square private to a color
	FinishLaneStart = LoopLength + 1
	// HomePosition is the first "reached home" position
	HomePosition = 96
	// MaxPosition is the terminal position; moves beyond it are illegal
	MaxPosition = 97

	// GridSize is one past the last tile coordinate; tiles run 1..GridSize-1 on each side
	GridSize = 29
	// TileSize is the size of a board tile in pixels
	TileSize = 25
	// TileOffset centers a sprite on its tile
	TileOffset = 13
)

var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrCorruptGeometry    = errors.New("corrupt board geometry")
)

// Coordinate is a square on the board grid.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coordinate) inBounds() bool {
	return c.X >= 1 && c.X < GridSize && c.Y >= 1 && c.Y < GridSize
}

// Point is a position in render space.
type Point struct {
	X float64
	Y float64
}

// ToPixel converts a grid coordinate to the render position of a sprite centered on it.
func ToPixel(c Coordinate) Point {
	return Point{
		X: float64(c.X*TileSize - TileOffset),
		Y: float64(c.Y*TileSize - TileOffset),
	}
}

// Geometry is the raw board description supplied to New.
type Geometry struct {
	// Paths maps every position 1..MaxPosition to a coordinate, per color
	Paths [NumColors]map[int]Coordinate
	// Yards holds the home-yard square of each pawn number, per color
	Yards [NumColors][PawnsPerColor]Coordinate
}

// Board is an immutable, validated lookup from (color, position) to board coordinates.
type Board struct {
	paths [NumColors][MaxPosition + 1]Coordinate
	yards [NumColors][PawnsPerColor]Coordinate
	loop  map[Coordinate]struct{}
	// loopOrder lists the loop squares in Red's walking order
	loopOrder []Coordinate
}

// New validates g and builds a Board from it.
func New(g Geometry) (*Board, error) {
	b := &Board{
		loop: make(map[Coordinate]struct{}, LoopLength),
	}

	for _, color := range Colors {
		path := g.Paths[color]
		if path == nil {
			return nil, fmt.Errorf("%w: no path for %s", ErrCorruptGeometry, color)
		}
		seen := make(map[Coordinate]int, LoopLength)
		for pos := EntryPosition; pos <= MaxPosition; pos++ {
			coord, ok := path[pos]
			if !ok {
				return nil, fmt.Errorf("%w: %s has no coordinate for position %d", ErrCorruptGeometry, color, pos)
			}
			if !coord.inBounds() {
				return nil, fmt.Errorf("%w: %s position %d at %s is off the board", ErrCorruptGeometry, color, pos, coord)
			}
			if pos <= ExitPosition {
				if prev, dup := seen[coord]; dup {
					return nil, fmt.Errorf("%w: %s positions %d and %d share %s", ErrCorruptGeometry, color, prev, pos, coord)
				}
				seen[coord] = pos
			}
			b.paths[color][pos] = coord
		}

		if color == Red {
			for pos := EntryPosition; pos <= ExitPosition; pos++ {
				b.loop[path[pos]] = struct{}{}
				b.loopOrder = append(b.loopOrder, path[pos])
			}
		} else {
			for pos := EntryPosition; pos <= ExitPosition; pos++ {
				if _, ok := b.loop[path[pos]]; !ok {
					return nil, fmt.Errorf("%w: %s position %d at %s is not on the shared loop", ErrCorruptGeometry, color, pos, path[pos])
				}
			}
		}

		for number, coord := range g.Yards[color] {
			if !coord.inBounds() {
				return nil, fmt.Errorf("%w: %s yard %d at %s is off the board", ErrCorruptGeometry, color, number+1, coord)
			}
			b.yards[color][number] = coord
		}
	}

	// lanes and yards must stay off the shared loop
	for _, color := range Colors {
		for pos := FinishLaneStart; pos <= MaxPosition; pos++ {
			if _, ok := b.loop[b.paths[color][pos]]; ok {
				return nil, fmt.Errorf("%w: %s lane position %d overlaps the loop", ErrCorruptGeometry, color, pos)
			}
		}
		for number, coord := range b.yards[color] {
			if _, ok := b.loop[coord]; ok {
				return nil, fmt.Errorf("%w: %s yard %d overlaps the loop", ErrCorruptGeometry, color, number+1)
			}
		}
	}

	return b, nil
}

// PositionToCoordinate resolves a color's linear position to its board square.
func (b *Board) PositionToCoordinate(color Color, pos int) (Coordinate, error) {
	if !color.Valid() {
		return Coordinate{}, fmt.Errorf("%w: invalid color %s", ErrPositionOutOfRange, color)
	}
	if pos < EntryPosition || pos > MaxPosition {
		return Coordinate{}, fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos)
	}
	return b.paths[color][pos], nil
}

// YardCoordinate returns the home-yard square of a pawn.
// number is 1-based.
func (b *Board) YardCoordinate(color Color, number int) (Coordinate, error) {
	if !color.Valid() || number < 1 || number > PawnsPerColor {
		return Coordinate{}, fmt.Errorf("%w: yard %s/%d", ErrPositionOutOfRange, color, number)
	}
	return b.yards[color][number-1], nil
}

// LoopCoordinates returns the shared loop squares in Red's path order.
func (b *Board) LoopCoordinates() []Coordinate {
	out := make([]Coordinate, len(b.loopOrder))
	copy(out, b.loopOrder)
	return out
}

// OnLoop reports whether c is one of the shared loop squares.
func (b *Board) OnLoop(c Coordinate) bool {
	_, ok := b.loop[c]
	return ok
}

// IsSharedLoop reports whether pos lies on the loop shared by every color.
func IsSharedLoop(pos int) bool {
	return pos >= EntryPosition && pos <= ExitPosition
}

// IsFinishLane reports whether pos lies in a color's private finish lane.
func IsFinishLane(pos int) bool {
	return pos >= FinishLaneStart && pos < HomePosition
}

// IsHome reports whether pos is one of the "reached home" positions.
func IsHome(pos int) bool {
	return pos == HomePosition || pos == MaxPosition
}
