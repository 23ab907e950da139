package game

import (
	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/dice"
	"github.com/cbodonnell/cangua/pkg/game/constants"
	"github.com/cbodonnell/cangua/pkg/game/types"
)

// Star is a bonus tile on the shared loop. A pawn that ends a move on it
// triggers one randomly chosen effect.
type Star struct {
	coordinate board.Coordinate
}

func NewStar(c board.Coordinate) *Star {
	return &Star{coordinate: c}
}

func (st *Star) Coordinate() board.Coordinate { return st.coordinate }

// OnLanding applies a star effect to p and returns it.
func (st *Star) OnLanding(p *Pawn, s *Session) types.StarOutcome {
	from := p.counter
	var outcome types.StarOutcome
	switch s.source.IntN(constants.StarEffectCount) {
	case 0:
		s.sendHome(p)
		outcome = types.StarSentHome
	case 1:
		outcome = types.StarRollAgain
	default:
		outcome = st.teleport(p, s)
	}

	s.logger.Info("Star at %s: %s %s", st.coordinate, p, outcome)
	s.publish(types.StarEffectEvent{
		Color:   p.color,
		Pawn:    p.number,
		Star:    st.coordinate,
		Outcome: outcome,
		From:    from,
		To:      p.counter,
	})
	return outcome
}

// teleport moves p to a uniformly chosen free position of its own path.
// This is the one move that may send a pawn backwards.
func (st *Star) teleport(p *Pawn, s *Session) types.StarOutcome {
	free := freePositions(p, s)
	if len(free) == 0 {
		return types.StarNoEffect
	}

	target := free[s.source.IntN(len(free))]
	p.counter = target
	s.animateJump(p, target)

	if board.IsHome(target) {
		owner := s.statekeep.Player(p.color)
		owner.creditFinish(p, s)
		if p.active {
			owner.handOff(p, s)
		}
	}
	return types.StarTeleported
}

// freePositions lists the positions 1..HomePosition of p's path whose square
// no other pawn in play stands on.
func freePositions(p *Pawn, s *Session) []int {
	occupied := s.occupiedSquares(p)
	free := make([]int, 0, board.HomePosition)
	for pos := board.EntryPosition; pos <= board.HomePosition; pos++ {
		c, err := s.board.PositionToCoordinate(p.color, pos)
		if err != nil {
			continue
		}
		if _, taken := occupied[c]; !taken {
			free = append(free, pos)
		}
	}
	return free
}

// placeStars picks count distinct loop squares, excluding every color's entry
// and exit squares, by a partial Fisher-Yates shuffle.
func placeStars(b *board.Board, count int, source dice.Source) ([]*Star, error) {
	reserved, err := reservedSquares(b)
	if err != nil {
		return nil, err
	}

	candidates := make([]board.Coordinate, 0, board.LoopLength)
	for _, c := range b.LoopCoordinates() {
		if _, ok := reserved[c]; !ok {
			candidates = append(candidates, c)
		}
	}
	if count > len(candidates) {
		return nil, ErrTooManyStars
	}

	stars := make([]*Star, 0, count)
	for i := 0; i < count; i++ {
		j := i + source.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		stars = append(stars, NewStar(candidates[i]))
	}
	return stars, nil
}

// reservedSquares returns every color's entry and exit squares, where no star
// may be placed.
func reservedSquares(b *board.Board) (map[board.Coordinate]struct{}, error) {
	reserved := make(map[board.Coordinate]struct{}, 2*board.NumColors)
	for _, color := range board.Colors {
		for _, pos := range []int{board.EntryPosition, board.ExitPosition} {
			c, err := b.PositionToCoordinate(color, pos)
			if err != nil {
				return nil, err
			}
			reserved[c] = struct{}{}
		}
	}
	return reserved, nil
}
