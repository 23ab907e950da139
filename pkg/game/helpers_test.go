package game

import (
	"io"
	"testing"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/dice"
	"github.com/cbodonnell/cangua/pkg/game/types"
	"github.com/cbodonnell/cangua/pkg/log"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0, log.LogLevelError)
}

// newTestSession builds a session on the standard board. A nil stars slice
// places no stars.
func newTestSession(t *testing.T, roller dice.Roller, source dice.Source, stars []board.Coordinate) *Session {
	t.Helper()
	if stars == nil {
		stars = []board.Coordinate{}
	}
	s, err := NewSession(NewSessionOptions{
		Roller:          roller,
		Source:          source,
		StarCoordinates: stars,
		Logger:          quietLogger(),
	})
	require.NoError(t, err)
	return s
}

// place puts a pawn on counter, keeping its owner's pawnsOnBoard consistent.
func place(s *Session, color board.Color, number, counter int) *Pawn {
	pl := s.statekeep.Player(color)
	p := pl.Pawn(number)
	if p.counter == 0 && counter > 0 {
		pl.pawnsOnBoard++
	} else if p.counter > 0 && counter == 0 {
		pl.pawnsOnBoard--
	}
	p.counter = counter
	return p
}

// activate makes number the only active pawn of color.
func activate(s *Session, color board.Color, number int) {
	for _, p := range s.statekeep.Player(color).pawns {
		p.active = p.number == number
	}
}

// finish marks a pawn as home.
func finish(s *Session, color board.Color, number int) {
	pl := s.statekeep.Player(color)
	p := place(s, color, number, board.HomePosition)
	p.finished = true
	p.active = false
	pl.pawnsHome++
}

func coordinateOf(t *testing.T, s *Session, color board.Color, pos int) board.Coordinate {
	t.Helper()
	c, err := s.board.PositionToCoordinate(color, pos)
	require.NoError(t, err)
	return c
}

func drainEvents(t *testing.T, s *Session) []types.GameEvent {
	t.Helper()
	events, err := s.Events().ReadAllMessages()
	require.NoError(t, err)
	return events
}
