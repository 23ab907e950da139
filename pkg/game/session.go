package game

import (
	"errors"
	"fmt"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/dice"
	"github.com/cbodonnell/cangua/pkg/game/constants"
	"github.com/cbodonnell/cangua/pkg/game/types"
	"github.com/cbodonnell/cangua/pkg/log"
	"github.com/cbodonnell/cangua/pkg/queue"
	"github.com/google/uuid"
)

var (
	ErrMoveInProgress   = errors.New("a pawn is still moving")
	ErrGameOver         = errors.New("game is over")
	ErrInvalidStar      = errors.New("invalid star coordinate")
	ErrInvalidStarCount = errors.New("star count must not be negative")
	ErrTooManyStars     = errors.New("not enough free loop squares for stars")
)

// Session owns the board, the players and the stars of one game.
type Session struct {
	id        uuid.UUID
	board     *board.Board
	statekeep *Statekeep
	stars     []*Star

	source dice.Source
	events queue.Queue[types.GameEvent]
	logger *log.Logger

	maxBonusTurns  int
	stepsPerSquare int
	winner         *Player
}

// NewSessionOptions contains options for creating a new Session.
// Zero values fall back to the defaults in the constants package.
type NewSessionOptions struct {
	// Board defaults to board.Standard()
	Board *board.Board
	// PlayerNames are assigned in turn order; empty names get a default
	PlayerNames []string
	// Source drives star placement and star effects; defaults to a PCG seeded with Seed
	Source dice.Source
	// Roller defaults to two fair dice drawn from Source
	Roller dice.Roller
	Seed   uint64
	// StarCount is the number of randomly placed stars; negative counts are rejected
	StarCount int
	// StarCoordinates places stars explicitly when non-nil; an empty slice places none
	StarCoordinates []board.Coordinate
	MaxBonusTurns   int
	StepsPerSquare  int
	Events          queue.Queue[types.GameEvent]
	Logger          *log.Logger
}

func NewSession(opts NewSessionOptions) (*Session, error) {
	b := opts.Board
	if b == nil {
		b = board.Standard()
	}
	source := opts.Source
	if source == nil {
		source = dice.NewSource(opts.Seed)
	}
	roller := opts.Roller
	if roller == nil {
		roller = dice.NewSourceRoller(source)
	}
	events := opts.Events
	if events == nil {
		events = queue.NewInMemoryQueue[types.GameEvent](constants.EventQueueSize)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	id := uuid.New()
	s := &Session{
		id:             id,
		board:          b,
		source:         source,
		events:         events,
		logger:         logger.WithField("session", id.String()),
		maxBonusTurns:  opts.MaxBonusTurns,
		stepsPerSquare: opts.StepsPerSquare,
	}
	if s.maxBonusTurns <= 0 {
		s.maxBonusTurns = constants.MaxBonusTurns
	}
	if s.stepsPerSquare <= 0 {
		s.stepsPerSquare = constants.StepsPerSquare
	}

	var players [board.NumColors]*Player
	for i, color := range board.Colors {
		name := constants.DefaultPlayerNames[i]
		if i < len(opts.PlayerNames) && opts.PlayerNames[i] != "" {
			name = opts.PlayerNames[i]
		}
		players[i] = newPlayer(name, color, b, roller, s.logger)
	}
	s.statekeep = newStatekeep(players)

	if opts.StarCoordinates != nil {
		stars, err := explicitStars(b, opts.StarCoordinates)
		if err != nil {
			return nil, fmt.Errorf("failed to place stars: %w", err)
		}
		s.stars = stars
	} else {
		if opts.StarCount < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidStarCount, opts.StarCount)
		}
		count := opts.StarCount
		if count == 0 {
			count = constants.StarCount
		}
		stars, err := placeStars(b, count, source)
		if err != nil {
			s.logger.Error("Failed to place %d stars, playing without: %v", count, err)
		}
		s.stars = stars
	}

	s.logger.Info("Session started with %d stars", len(s.stars))
	return s, nil
}

func explicitStars(b *board.Board, coords []board.Coordinate) ([]*Star, error) {
	reserved, err := reservedSquares(b)
	if err != nil {
		return nil, err
	}
	seen := make(map[board.Coordinate]struct{}, len(coords))
	stars := make([]*Star, 0, len(coords))
	for _, c := range coords {
		if !b.OnLoop(c) {
			return nil, fmt.Errorf("%w: %s is not on the loop", ErrInvalidStar, c)
		}
		if _, ok := reserved[c]; ok {
			return nil, fmt.Errorf("%w: %s is an entry or exit square", ErrInvalidStar, c)
		}
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidStar, c)
		}
		seen[c] = struct{}{}
		stars = append(stars, NewStar(c))
	}
	return stars, nil
}

// TurnReport summarizes one call to Roll.
type TurnReport struct {
	Color board.Color
	// Turns holds the initial turn followed by any bonus turns
	Turns  []TurnResult
	Won    bool
	Winner board.Color
	// Next is the player whose turn it is after the roll
	Next board.Color
}

// Roll plays the current player's turn, including star bonus turns, then
// checks for a winner and passes the turn on.
func (s *Session) Roll() (*TurnReport, error) {
	if s.winner != nil {
		return nil, ErrGameOver
	}
	if s.Moving() {
		return nil, ErrMoveInProgress
	}

	current := s.statekeep.Current()
	report := &TurnReport{Color: current.color}
	for {
		result := current.TakeTurn(s)
		report.Turns = append(report.Turns, result)
		if !result.RollAgain() || current.Won() {
			break
		}
		if len(report.Turns) > s.maxBonusTurns {
			s.logger.Warn("%s reached %d bonus turns, ending turn", current.color, s.maxBonusTurns)
			break
		}
		s.logger.Debug("%s rolls again", current.color)
	}
	s.statekeep.RefreshCounters()

	if winner := s.statekeep.CheckWin(); winner != nil {
		s.winner = winner
		report.Won = true
		report.Winner = winner.color
		report.Next = s.statekeep.Turn()
		s.logger.Info("%s (%s) won the game", winner.name, winner.color)
		s.publish(types.PlayerWonEvent{Color: winner.color, Name: winner.name})
		return report, nil
	}

	next := s.statekeep.AdvanceTurn()
	report.Next = next.color
	s.publish(types.TurnAdvancedEvent{From: current.color, To: next.color})
	return report, nil
}

// Update plays one animation frame for every moving pawn.
func (s *Session) Update() {
	for _, p := range s.Pawns() {
		p.advance()
	}
}

// SkipAnimations moves every pawn straight to the end of its animation.
func (s *Session) SkipAnimations() {
	for _, p := range s.Pawns() {
		p.skipAnimation()
	}
}

// Moving reports whether any pawn still has animation frames queued.
func (s *Session) Moving() bool {
	for _, p := range s.Pawns() {
		if p.Moving() {
			return true
		}
	}
	return false
}

func (s *Session) Winner() *Player { return s.winner }

func (s *Session) Over() bool { return s.winner != nil }

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Board() *board.Board { return s.board }

func (s *Session) Statekeep() *Statekeep { return s.statekeep }

func (s *Session) Stars() []*Star { return s.stars }

func (s *Session) Events() queue.Queue[types.GameEvent] { return s.events }

// Pawns returns all sixteen pawns in turn order.
func (s *Session) Pawns() []*Pawn {
	pawns := make([]*Pawn, 0, board.NumColors*board.PawnsPerColor)
	for _, pl := range s.statekeep.players {
		pawns = append(pawns, pl.pawns[:]...)
	}
	return pawns
}

func (s *Session) publish(event types.GameEvent) {
	if err := s.events.Enqueue(event); err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			s.logger.Warn("Dropping event %T: %v", event, err)
			return
		}
		s.logger.Error("Failed to publish event %T: %v", event, err)
	}
}

// pixelOf returns where p is drawn when its counter is pos.
func (s *Session) pixelOf(p *Pawn, pos int) (board.Point, error) {
	var (
		c   board.Coordinate
		err error
	)
	if pos == 0 {
		c, err = s.board.YardCoordinate(p.color, p.number)
	} else {
		c, err = s.board.PositionToCoordinate(p.color, pos)
	}
	if err != nil {
		return board.Point{}, err
	}
	return board.ToPixel(c), nil
}

// animateWalk queues the walk from position from to position to, one square at a time.
func (s *Session) animateWalk(p *Pawn, from, to int) {
	squares := make([]board.Point, 0, to-from)
	for pos := max(from+1, board.EntryPosition); pos <= to; pos++ {
		point, err := s.pixelOf(p, pos)
		if err != nil {
			s.logger.Error("Failed to resolve %s square %d: %v", p, pos, err)
			return
		}
		squares = append(squares, point)
	}
	p.walk(squares, s.stepsPerSquare)
}

// animateJump queues a single frame placing p on position pos.
func (s *Session) animateJump(p *Pawn, pos int) {
	point, err := s.pixelOf(p, pos)
	if err != nil {
		s.logger.Error("Failed to resolve %s square %d: %v", p, pos, err)
		return
	}
	p.jumpTo(point)
}

// capture sends home every opponent pawn sharing p's loop square.
func (s *Session) capture(p *Pawn) []*Pawn {
	if !board.IsSharedLoop(p.counter) {
		return nil
	}
	at, err := s.board.PositionToCoordinate(p.color, p.counter)
	if err != nil {
		s.logger.Error("Failed to resolve %s: %v", p, err)
		return nil
	}

	var captured []*Pawn
	for _, pl := range s.statekeep.players {
		if pl.color == p.color {
			continue
		}
		for _, victim := range pl.pawns {
			if !board.IsSharedLoop(victim.counter) {
				continue
			}
			c, err := s.board.PositionToCoordinate(victim.color, victim.counter)
			if err != nil || c != at {
				continue
			}
			s.sendHome(victim)
			pl.timesKicked++
			captured = append(captured, victim)
			s.logger.Info("%s captured %s at %s", p, victim, at)
			s.publish(types.PawnCapturedEvent{
				Color:       p.color,
				Pawn:        p.number,
				VictimColor: victim.color,
				VictimPawn:  victim.number,
				At:          at,
			})
		}
	}
	return captured
}

// sendHome returns p to its yard.
func (s *Session) sendHome(p *Pawn) {
	owner := s.statekeep.Player(p.color)
	p.counter = 0
	if owner.pawnsOnBoard > 0 {
		owner.pawnsOnBoard--
	}
	s.animateJump(p, 0)
}

// starAt returns the star under p, if any.
func (s *Session) starAt(p *Pawn) *Star {
	if !board.IsSharedLoop(p.counter) {
		return nil
	}
	c, err := s.board.PositionToCoordinate(p.color, p.counter)
	if err != nil {
		return nil
	}
	for _, star := range s.stars {
		if star.coordinate == c {
			return star
		}
	}
	return nil
}

// occupiedSquares returns the squares of every pawn in play other than except.
func (s *Session) occupiedSquares(except *Pawn) map[board.Coordinate]struct{} {
	occupied := make(map[board.Coordinate]struct{})
	for _, p := range s.Pawns() {
		if p == except || p.counter == 0 || p.finished {
			continue
		}
		c, err := s.board.PositionToCoordinate(p.color, p.counter)
		if err != nil {
			continue
		}
		occupied[c] = struct{}{}
	}
	return occupied
}
