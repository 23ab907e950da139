package game

import (
	"github.com/cbodonnell/cangua/pkg/board"
)

// Statekeep owns the four players and whose turn it is.
type Statekeep struct {
	players [board.NumColors]*Player
	turn    board.Color
	// counters mirrors every pawn's counter, refreshed after each move
	counters [board.NumColors][board.PawnsPerColor]int
}

func newStatekeep(players [board.NumColors]*Player) *Statekeep {
	sk := &Statekeep{
		players: players,
		turn:    board.Red,
	}
	sk.setTurn(board.Red)
	sk.RefreshCounters()
	return sk
}

// Current returns the player whose turn it is.
func (sk *Statekeep) Current() *Player {
	return sk.players[sk.turn]
}

func (sk *Statekeep) Turn() board.Color { return sk.turn }

func (sk *Statekeep) Player(color board.Color) *Player {
	if !color.Valid() {
		return nil
	}
	return sk.players[color]
}

func (sk *Statekeep) Players() [board.NumColors]*Player { return sk.players }

// next returns the player seated after pl.
func (sk *Statekeep) next(pl *Player) *Player {
	return sk.players[pl.color.Next()]
}

// AdvanceTurn passes the turn to the next player in seating order that has not
// yet won. If every other player has won, the turn stays where it is.
func (sk *Statekeep) AdvanceTurn() *Player {
	for i := 1; i < board.NumColors; i++ {
		candidate := board.Color((int(sk.turn) + i) % board.NumColors)
		if !sk.players[candidate].Won() {
			sk.setTurn(candidate)
			break
		}
	}
	return sk.Current()
}

// CheckWin returns the first player in seating order with all pawns home.
func (sk *Statekeep) CheckWin() *Player {
	for _, pl := range sk.players {
		if pl.Won() {
			return pl
		}
	}
	return nil
}

// RefreshCounters copies every pawn counter into the shared snapshot.
func (sk *Statekeep) RefreshCounters() {
	for c, pl := range sk.players {
		for i, pawn := range pl.pawns {
			sk.counters[c][i] = pawn.counter
		}
	}
}

// Counters returns the last snapshot of color's pawn counters.
func (sk *Statekeep) Counters(color board.Color) [board.PawnsPerColor]int {
	if !color.Valid() {
		return [board.PawnsPerColor]int{}
	}
	return sk.counters[color]
}

// ActivePlayers returns the players that have not won, in seating order.
func (sk *Statekeep) ActivePlayers() []*Player {
	out := make([]*Player, 0, board.NumColors)
	for _, pl := range sk.players {
		if !pl.Won() {
			out = append(out, pl)
		}
	}
	return out
}

// GameComplete reports whether at most one player is still racing.
func (sk *Statekeep) GameComplete() bool {
	return len(sk.ActivePlayers()) <= 1
}

func (sk *Statekeep) setTurn(color board.Color) {
	sk.turn = color
	for c, pl := range sk.players {
		pl.isTurn = board.Color(c) == color
	}
}
