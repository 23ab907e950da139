package types

import (
	"fmt"

	"github.com/cbodonnell/cangua/pkg/board"
)

// GameEvent is published by a session for the presentation layer.
// The set of events is closed; consumers switch on the concrete type.
type GameEvent interface {
	fmt.Stringer
	isGameEvent()
}

type DiceRolledEvent struct {
	Color board.Color
	Dice1 int
	Dice2 int
}

func (e DiceRolledEvent) Total() int { return e.Dice1 + e.Dice2 }

type PawnEnteredEvent struct {
	Color board.Color
	Pawn  int
}

type PawnMovedEvent struct {
	Color board.Color
	Pawn  int
	From  int
	To    int
}

type MoveRejectedEvent struct {
	Color  board.Color
	Pawn   int
	From   int
	Steps  int
	Reason RejectReason
}

type PawnCapturedEvent struct {
	Color       board.Color
	Pawn        int
	VictimColor board.Color
	VictimPawn  int
	At          board.Coordinate
}

type PawnFinishedEvent struct {
	Color     board.Color
	Pawn      int
	PawnsHome int
}

type StarEffectEvent struct {
	Color   board.Color
	Pawn    int
	Star    board.Coordinate
	Outcome StarOutcome
	// From and To are the pawn counters before and after the effect
	From int
	To   int
}

type TurnAdvancedEvent struct {
	From board.Color
	To   board.Color
}

type PlayerWonEvent struct {
	Color board.Color
	Name  string
}

func (DiceRolledEvent) isGameEvent()   {}
func (PawnEnteredEvent) isGameEvent()  {}
func (PawnMovedEvent) isGameEvent()    {}
func (MoveRejectedEvent) isGameEvent() {}
func (PawnCapturedEvent) isGameEvent() {}
func (PawnFinishedEvent) isGameEvent() {}
func (StarEffectEvent) isGameEvent()   {}
func (TurnAdvancedEvent) isGameEvent() {}
func (PlayerWonEvent) isGameEvent()    {}

func (e DiceRolledEvent) String() string {
	return fmt.Sprintf("%s rolled %d+%d=%d", e.Color, e.Dice1, e.Dice2, e.Total())
}

func (e PawnEnteredEvent) String() string {
	return fmt.Sprintf("%s pawn %d entered the board", e.Color, e.Pawn)
}

func (e PawnMovedEvent) String() string {
	return fmt.Sprintf("%s pawn %d moved %d -> %d", e.Color, e.Pawn, e.From, e.To)
}

func (e MoveRejectedEvent) String() string {
	return fmt.Sprintf("%s pawn %d cannot move %d from %d: %s", e.Color, e.Pawn, e.Steps, e.From, e.Reason)
}

func (e PawnCapturedEvent) String() string {
	return fmt.Sprintf("%s pawn %d captured %s pawn %d at %s", e.Color, e.Pawn, e.VictimColor, e.VictimPawn, e.At)
}

func (e PawnFinishedEvent) String() string {
	return fmt.Sprintf("%s pawn %d reached home (%d/4)", e.Color, e.Pawn, e.PawnsHome)
}

func (e StarEffectEvent) String() string {
	return fmt.Sprintf("star at %s: %s pawn %d %s", e.Star, e.Color, e.Pawn, e.Outcome)
}

func (e TurnAdvancedEvent) String() string {
	return fmt.Sprintf("turn %s -> %s", e.From, e.To)
}

func (e PlayerWonEvent) String() string {
	return fmt.Sprintf("%s (%s) won", e.Name, e.Color)
}
