package game

import (
	"testing"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winAll(s *Session, colors ...board.Color) {
	for _, color := range colors {
		for n := 1; n <= board.PawnsPerColor; n++ {
			finish(s, color, n)
		}
	}
}

func TestStatekeep_Initial(t *testing.T) {
	s := newTestSession(t, nil, nil, nil)
	sk := s.Statekeep()

	assert.Equal(t, board.Red, sk.Turn())
	assert.Same(t, sk.Player(board.Red), sk.Current())
	for _, pl := range sk.Players() {
		assert.Equal(t, pl.Color() == board.Red, pl.IsTurn())
		assert.Equal(t, 0, pl.PawnsOnBoard())
		assert.True(t, pl.Pawn(1).Active())
	}
	assert.Nil(t, sk.Player(board.Color(9)))
}

func TestStatekeep_AdvanceTurn(t *testing.T) {
	tests := []struct {
		name  string
		turn  board.Color
		won   []board.Color
		want  board.Color
	}{
		{
			name: "next in order",
			turn: board.Red,
			want: board.Blue,
		},
		{
			name: "wraps around",
			turn: board.Green,
			want: board.Red,
		},
		{
			name: "skips players who won",
			turn: board.Red,
			won:  []board.Color{board.Blue},
			want: board.Yellow,
		},
		{
			name: "skips several",
			turn: board.Yellow,
			won:  []board.Color{board.Green, board.Red},
			want: board.Blue,
		},
		{
			name: "stays when everyone else won",
			turn: board.Red,
			won:  []board.Color{board.Blue, board.Yellow, board.Green},
			want: board.Red,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, nil, nil)
			sk := s.Statekeep()
			sk.setTurn(tt.turn)
			winAll(s, tt.won...)

			next := sk.AdvanceTurn()

			assert.Equal(t, tt.want, next.Color())
			assert.Equal(t, tt.want, sk.Turn())
			for _, pl := range sk.Players() {
				assert.Equal(t, pl.Color() == tt.want, pl.IsTurn())
			}
		})
	}
}

func TestStatekeep_CheckWin(t *testing.T) {
	s := newTestSession(t, nil, nil, nil)
	sk := s.Statekeep()
	assert.Nil(t, sk.CheckWin())

	for n := 1; n < board.PawnsPerColor; n++ {
		finish(s, board.Yellow, n)
	}
	assert.Nil(t, sk.CheckWin())

	finish(s, board.Yellow, board.PawnsPerColor)
	winner := sk.CheckWin()
	require.NotNil(t, winner)
	assert.Equal(t, board.Yellow, winner.Color())

	winAll(s, board.Blue)
	assert.Equal(t, board.Blue, sk.CheckWin().Color())
}

func TestStatekeep_Counters(t *testing.T) {
	s := newTestSession(t, nil, nil, nil)
	sk := s.Statekeep()
	place(s, board.Green, 3, 44)
	assert.Equal(t, [board.PawnsPerColor]int{}, sk.Counters(board.Green))

	sk.RefreshCounters()

	assert.Equal(t, [board.PawnsPerColor]int{0, 0, 44, 0}, sk.Counters(board.Green))
	assert.Equal(t, [board.PawnsPerColor]int{}, sk.Counters(board.Color(7)))
}

func TestStatekeep_ActivePlayers(t *testing.T) {
	s := newTestSession(t, nil, nil, nil)
	sk := s.Statekeep()
	assert.Len(t, sk.ActivePlayers(), board.NumColors)
	assert.False(t, sk.GameComplete())

	winAll(s, board.Red, board.Green)
	active := sk.ActivePlayers()
	require.Len(t, active, 2)
	assert.Equal(t, board.Blue, active[0].Color())
	assert.Equal(t, board.Yellow, active[1].Color())
	assert.False(t, sk.GameComplete())

	winAll(s, board.Blue)
	assert.True(t, sk.GameComplete())
}
