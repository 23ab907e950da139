package game

import (
	"fmt"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/game/types"
)

// PawnState is the stage of a pawn's journey.
type PawnState uint8

const (
	PawnAtHome PawnState = iota
	PawnOnPath
	PawnInFinishLane
	PawnFinished
)

func (s PawnState) String() string {
	switch s {
	case PawnAtHome:
		return "at_home"
	case PawnOnPath:
		return "on_path"
	case PawnInFinishLane:
		return "in_finish_lane"
	case PawnFinished:
		return "finished"
	default:
		return fmt.Sprintf("PawnState(%d)", uint8(s))
	}
}

// Pawn is one of a player's four pieces.
type Pawn struct {
	color  board.Color
	number int
	// counter is the position along the color's path; 0 is the yard
	counter  int
	active   bool
	finished bool

	// position and facing are the render state, driven by animation
	position  board.Point
	facing    Facing
	animation Animation
}

func newPawn(color board.Color, number int, yard board.Point) *Pawn {
	return &Pawn{
		color:    color,
		number:   number,
		active:   number == 1,
		position: yard,
	}
}

func (p *Pawn) Color() board.Color { return p.color }

// Number is the pawn's 1-based index within its player.
func (p *Pawn) Number() int { return p.number }

func (p *Pawn) Counter() int { return p.counter }

func (p *Pawn) Active() bool { return p.active }

func (p *Pawn) Finished() bool { return p.finished }

func (p *Pawn) Position() board.Point { return p.position }

func (p *Pawn) Facing() Facing { return p.facing }

// Moving reports whether the pawn still has animation frames to play.
func (p *Pawn) Moving() bool { return p.animation.Moving() }

func (p *Pawn) State() PawnState {
	switch {
	case p.finished || board.IsHome(p.counter):
		return PawnFinished
	case p.counter == 0:
		return PawnAtHome
	case board.IsFinishLane(p.counter):
		return PawnInFinishLane
	default:
		return PawnOnPath
	}
}

func (p *Pawn) String() string {
	return fmt.Sprintf("%s#%d@%d", p.color, p.number, p.counter)
}

// MoveResult describes what a call to Move did.
type MoveResult struct {
	Color   board.Color
	Pawn    int
	Outcome types.MoveOutcome
	Reason  types.RejectReason
	From    int
	// To is the landing position, before any star effect
	To       int
	Captured []*Pawn
	// StarHit is set when the pawn landed on a star; Star holds its effect
	StarHit bool
	Star    types.StarOutcome
}

func (r MoveResult) Rejected() bool {
	return r.Outcome == types.MoveRejected
}

func (p *Pawn) checkMove(steps int) types.RejectReason {
	switch {
	case p.finished:
		return types.RejectFinished
	case p.counter == 0:
		return types.RejectInYard
	case !p.active:
		return types.RejectInactive
	case steps <= 0:
		return types.RejectInvalidSteps
	case p.counter+steps > board.MaxPosition:
		return types.RejectOvershoot
	}
	return types.RejectNone
}

// Move advances the pawn by steps along its color's path.
// Illegal requests, including overshooting the terminal position, leave the
// pawn untouched and return a rejected result.
func (p *Pawn) Move(steps int, s *Session) MoveResult {
	result := MoveResult{
		Color: p.color,
		Pawn:  p.number,
		From:  p.counter,
		To:    p.counter,
	}

	if reason := p.checkMove(steps); reason != types.RejectNone {
		result.Outcome = types.MoveRejected
		result.Reason = reason
		s.logger.Debug("Rejected move of %s by %d: %s", p, steps, reason)
		s.publish(types.MoveRejectedEvent{
			Color:  p.color,
			Pawn:   p.number,
			From:   p.counter,
			Steps:  steps,
			Reason: reason,
		})
		return result
	}

	owner := s.statekeep.Player(p.color)
	target := p.counter + steps
	s.animateWalk(p, p.counter, target)
	p.counter = target
	result.To = target
	s.publish(types.PawnMovedEvent{
		Color: p.color,
		Pawn:  p.number,
		From:  result.From,
		To:    target,
	})

	if board.IsHome(target) {
		result.Outcome = types.MoveFinished
		owner.creditFinish(p, s)
	} else {
		result.Outcome = types.MoveAdvanced
		result.Captured = s.capture(p)
	}

	owner.handOff(p, s)

	if result.Outcome == types.MoveAdvanced {
		if star := s.starAt(p); star != nil {
			result.StarHit = true
			result.Star = star.OnLanding(p, s)
		}
	}

	s.statekeep.RefreshCounters()
	return result
}

func (p *Pawn) walk(squares []board.Point, stepsPerSquare int) {
	start, facing := p.animation.tail(p.position, p.facing)
	p.animation.walk(start, facing, squares, stepsPerSquare)
}

func (p *Pawn) jumpTo(target board.Point) {
	start, facing := p.animation.tail(p.position, p.facing)
	if target.X > start.X {
		facing = FacingRight
	} else if target.X < start.X {
		facing = FacingLeft
	}
	p.animation.jump(target, facing)
}

// advance plays one animation frame.
func (p *Pawn) advance() {
	if frame, ok := p.animation.Advance(); ok {
		p.position = frame.Position
		p.facing = frame.Facing
	}
}

func (p *Pawn) skipAnimation() {
	if frame, ok := p.animation.Skip(); ok {
		p.position = frame.Position
		p.facing = frame.Facing
	}
}
