package game

import (
	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/dice"
	"github.com/cbodonnell/cangua/pkg/game/constants"
	"github.com/cbodonnell/cangua/pkg/game/types"
	"github.com/cbodonnell/cangua/pkg/log"
)

// Player owns four pawns of one color and takes turns with them.
type Player struct {
	name  string
	color board.Color
	pawns [board.PawnsPerColor]*Pawn

	// pawnsOnBoard counts pawns that left the yard and were not sent back
	pawnsOnBoard int
	pawnsHome    int
	isTurn       bool
	hasActivated bool
	// timesKicked counts this player's pawns captured by opponents
	timesKicked int
	lastDice    [2]int

	roller dice.Roller
	logger *log.Logger
}

func newPlayer(name string, color board.Color, b *board.Board, roller dice.Roller, logger *log.Logger) *Player {
	p := &Player{
		name:   name,
		color:  color,
		roller: roller,
		logger: logger.WithField("color", color.String()),
	}
	for i := range p.pawns {
		yard, _ := b.YardCoordinate(color, i+1)
		p.pawns[i] = newPawn(color, i+1, board.ToPixel(yard))
	}
	return p
}

func (p *Player) Name() string { return p.name }

func (p *Player) Color() board.Color { return p.color }

// Pawns returns the player's pawns ordered by number.
func (p *Player) Pawns() [board.PawnsPerColor]*Pawn { return p.pawns }

// Pawn returns the pawn with the given 1-based number, or nil.
func (p *Player) Pawn(number int) *Pawn {
	if number < 1 || number > board.PawnsPerColor {
		return nil
	}
	return p.pawns[number-1]
}

func (p *Player) PawnsOnBoard() int { return p.pawnsOnBoard }

func (p *Player) PawnsHome() int { return p.pawnsHome }

func (p *Player) IsTurn() bool { return p.isTurn }

func (p *Player) HasActivated() bool { return p.hasActivated }

func (p *Player) TimesKicked() int { return p.timesKicked }

func (p *Player) LastDice() (int, int) { return p.lastDice[0], p.lastDice[1] }

// Won reports whether all four pawns reached home.
func (p *Player) Won() bool { return p.pawnsHome == board.PawnsPerColor }

// RollDice rolls both dice and returns them with their total.
func (p *Player) RollDice() (int, int, int) {
	d1, d2 := p.roller.Roll()
	p.lastDice = [2]int{d1, d2}
	return d1, d2, d1 + d2
}

// TurnResult describes one turn taken by a player.
type TurnResult struct {
	Color board.Color
	Dice  [2]int
	// Rolled is false when the turn ended before the dice were thrown
	Rolled  bool
	Entered bool
	// Rejected is set when the turn request itself was invalid
	Rejected types.RejectReason
	Move     *MoveResult
}

func (r TurnResult) Total() int {
	return r.Dice[0] + r.Dice[1]
}

// RollAgain reports whether a star granted another turn.
func (r TurnResult) RollAgain() bool {
	return r.Move != nil && r.Move.StarHit && r.Move.Star == types.StarRollAgain
}

// TakeTurn rolls and moves the active pawn, or tries to bring a pawn onto
// the board when none is in play.
func (p *Player) TakeTurn(s *Session) TurnResult {
	if p.pawnsOnBoard < 1 {
		return p.MoveOntoBoard(s)
	}

	result := TurnResult{Color: p.color}
	pawn := p.ActivePawn()
	if pawn == nil {
		p.logger.Debug("No pawn left to move")
		return result
	}

	p.roll(&result, s)
	if pawn.counter == 0 {
		// the rotation handed the turn to a pawn still in the yard
		return p.enter(pawn, result, s)
	}

	move := pawn.Move(result.Total(), s)
	result.Move = &move
	return result
}

// MoveOntoBoard rolls for a pawn to leave the yard. A total of at least
// constants.EntryRollThreshold brings the active pawn to the entry square and
// the same total is then walked as its first move.
func (p *Player) MoveOntoBoard(s *Session) TurnResult {
	result := TurnResult{Color: p.color}
	if p.pawnsOnBoard > 0 {
		result.Rejected = types.RejectPawnsOnBoard
		p.logger.Debug("Entry requested with %d pawns on board", p.pawnsOnBoard)
		return result
	}

	pawn := p.ActivePawn()
	if pawn == nil {
		return result
	}

	p.roll(&result, s)
	return p.enter(pawn, result, s)
}

func (p *Player) roll(result *TurnResult, s *Session) {
	d1, d2, _ := p.RollDice()
	result.Dice = [2]int{d1, d2}
	result.Rolled = true
	s.publish(types.DiceRolledEvent{Color: p.color, Dice1: d1, Dice2: d2})
}

func (p *Player) enter(pawn *Pawn, result TurnResult, s *Session) TurnResult {
	total := result.Total()
	if total < constants.EntryRollThreshold {
		p.logger.Debug("Rolled %d, pawn %d stays in the yard", total, pawn.number)
		return result
	}

	pawn.counter = board.EntryPosition
	s.animateWalk(pawn, 0, board.EntryPosition)
	p.pawnsOnBoard++
	p.hasActivated = true
	result.Entered = true
	p.logger.Debug("Pawn %d entered the board", pawn.number)
	s.publish(types.PawnEnteredEvent{Color: p.color, Pawn: pawn.number})

	move := pawn.Move(total, s)
	result.Move = &move
	return result
}

// ActivePawn returns the pawn eligible to move next, repairing the active
// flags if they are inconsistent. It returns nil once every pawn is home.
func (p *Player) ActivePawn() *Pawn {
	var active *Pawn
	for _, pawn := range p.pawns {
		if !pawn.active {
			continue
		}
		if pawn.finished {
			p.logger.Warn("Finished pawn %d was active, deactivating", pawn.number)
			pawn.active = false
			continue
		}
		if active != nil {
			p.logger.Warn("Pawns %d and %d both active, keeping %d", active.number, pawn.number, active.number)
			pawn.active = false
			continue
		}
		active = pawn
	}
	if active != nil {
		return active
	}

	for _, pawn := range p.pawns {
		if !pawn.finished {
			p.logger.Warn("No active pawn, activating pawn %d", pawn.number)
			pawn.active = true
			return pawn
		}
	}
	return nil
}

// handOff deactivates the pawn that just moved and activates the next
// unfinished pawn in rotation, then reconfirms the next player's active pawn.
func (p *Player) handOff(moved *Pawn, s *Session) {
	moved.active = false
	for i := 0; i < board.PawnsPerColor; i++ {
		next := p.pawns[(moved.number+i)%board.PawnsPerColor]
		if !next.finished {
			next.active = true
			break
		}
	}
	s.statekeep.next(p).ActivePawn()
}

// creditFinish marks pawn as home and counts it once.
func (p *Player) creditFinish(pawn *Pawn, s *Session) bool {
	if pawn.finished {
		return false
	}
	pawn.finished = true
	p.pawnsHome++
	p.logger.Info("Pawn %d reached home (%d/%d)", pawn.number, p.pawnsHome, board.PawnsPerColor)
	s.publish(types.PawnFinishedEvent{
		Color:     p.color,
		Pawn:      pawn.number,
		PawnsHome: p.pawnsHome,
	})
	return true
}
