package game

import (
	"testing"

	mocks "github.com/cbodonnell/cangua/mocks/github.com/cbodonnell/cangua/pkg/dice"
	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/dice"
	"github.com/cbodonnell/cangua/pkg/game/constants"
	"github.com/cbodonnell/cangua/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStar_OnLandingSendsHome(t *testing.T) {
	source := mocks.NewSource(t)
	source.EXPECT().IntN(constants.StarEffectCount).Return(0).Once()
	s := newTestSession(t, nil, source, nil)
	p := place(s, board.Red, 1, 40)
	star := NewStar(coordinateOf(t, s, board.Red, 40))

	outcome := star.OnLanding(p, s)

	assert.Equal(t, types.StarSentHome, outcome)
	assert.Equal(t, 0, p.Counter())
	assert.Equal(t, 0, s.statekeep.Player(board.Red).PawnsOnBoard())
	assert.Equal(t, 0, s.statekeep.Player(board.Red).TimesKicked())
	assert.Equal(t, []types.GameEvent{
		types.StarEffectEvent{
			Color:   board.Red,
			Pawn:    1,
			Star:    star.Coordinate(),
			Outcome: types.StarSentHome,
			From:    40,
			To:      0,
		},
	}, drainEvents(t, s))
}

func TestStar_OnLandingRollAgain(t *testing.T) {
	source := mocks.NewSource(t)
	source.EXPECT().IntN(constants.StarEffectCount).Return(1).Once()
	s := newTestSession(t, nil, source, nil)
	p := place(s, board.Red, 1, 40)

	outcome := NewStar(coordinateOf(t, s, board.Red, 40)).OnLanding(p, s)

	assert.Equal(t, types.StarRollAgain, outcome)
	assert.Equal(t, 40, p.Counter())
}

func TestStar_OnLandingTeleports(t *testing.T) {
	source := mocks.NewSource(t)
	source.EXPECT().IntN(constants.StarEffectCount).Return(2).Once()
	// Blue on its 12 stands on Red's 35, leaving 95 free positions
	source.EXPECT().IntN(95).Return(34).Once()
	s := newTestSession(t, nil, source, nil)
	p := place(s, board.Red, 1, 50)
	blue := place(s, board.Blue, 1, 12)

	outcome := NewStar(coordinateOf(t, s, board.Red, 50)).OnLanding(p, s)

	assert.Equal(t, types.StarTeleported, outcome)
	assert.Equal(t, 36, p.Counter())
	assert.Equal(t, 12, blue.Counter())
	assert.Equal(t, 1, p.animation.Pending())
}

func TestStar_OnLandingTeleportsHome(t *testing.T) {
	source := mocks.NewSource(t)
	source.EXPECT().IntN(constants.StarEffectCount).Return(2).Once()
	source.EXPECT().IntN(board.HomePosition).Return(board.HomePosition - 1).Once()
	s := newTestSession(t, nil, source, nil)
	p := place(s, board.Red, 1, 50)
	red := s.statekeep.Player(board.Red)

	outcome := NewStar(coordinateOf(t, s, board.Red, 50)).OnLanding(p, s)

	assert.Equal(t, types.StarTeleported, outcome)
	assert.Equal(t, board.HomePosition, p.Counter())
	assert.True(t, p.Finished())
	assert.False(t, p.Active())
	assert.True(t, red.Pawn(2).Active())
	assert.Equal(t, 1, red.PawnsHome())
}

func TestFreePositions(t *testing.T) {
	s := newTestSession(t, nil, nil, nil)
	p := place(s, board.Red, 1, 10)
	place(s, board.Red, 2, 20)
	place(s, board.Yellow, 1, 5)
	finish(s, board.Red, 3)

	free := freePositions(p, s)

	assert.Len(t, free, board.HomePosition-2)
	assert.NotContains(t, free, 20)
	assert.NotContains(t, free, 5+2*board.ColorOffset)
	assert.Contains(t, free, 10)
	assert.Contains(t, free, board.HomePosition)
}

func TestPawn_MoveOntoStar(t *testing.T) {
	source := mocks.NewSource(t)
	source.EXPECT().IntN(constants.StarEffectCount).Return(1).Once()
	s := newTestSession(t, nil, source, nil)
	s.stars = []*Star{NewStar(coordinateOf(t, s, board.Red, 15))}
	p := place(s, board.Red, 1, 10)

	result := p.Move(5, s)

	assert.True(t, result.StarHit)
	assert.Equal(t, types.StarRollAgain, result.Star)
}

func TestPawn_MoveIntoLaneIgnoresStars(t *testing.T) {
	s := newTestSession(t, nil, mocks.NewSource(t), nil)
	s.stars = []*Star{NewStar(coordinateOf(t, s, board.Red, 40))}
	p := place(s, board.Red, 1, 90)

	result := p.Move(4, s)

	assert.False(t, result.StarHit)
}

func TestPlaceStars(t *testing.T) {
	b := board.Standard()
	reserved := map[board.Coordinate]bool{}
	for _, color := range board.Colors {
		for _, pos := range []int{board.EntryPosition, board.ExitPosition} {
			c, err := b.PositionToCoordinate(color, pos)
			require.NoError(t, err)
			reserved[c] = true
		}
	}

	for seed := uint64(0); seed < 20; seed++ {
		stars, err := placeStars(b, constants.StarCount, dice.NewSource(seed))
		require.NoError(t, err)
		require.Len(t, stars, constants.StarCount)

		seen := map[board.Coordinate]bool{}
		for _, star := range stars {
			assert.True(t, b.OnLoop(star.Coordinate()))
			assert.False(t, reserved[star.Coordinate()])
			assert.False(t, seen[star.Coordinate()])
			seen[star.Coordinate()] = true
		}
	}
}

func TestPlaceStarsTooMany(t *testing.T) {
	_, err := placeStars(board.Standard(), board.LoopLength, dice.NewSource(1))
	assert.ErrorIs(t, err, ErrTooManyStars)
}
