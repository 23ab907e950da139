package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceRoller_RollsWithinRange(t *testing.T) {
	roller := NewSourceRoller(NewSource(42))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		d1, d2 := roller.Roll()
		assert.GreaterOrEqual(t, d1, 1)
		assert.LessOrEqual(t, d1, Faces)
		assert.GreaterOrEqual(t, d2, 1)
		assert.LessOrEqual(t, d2, Faces)
		seen[d1] = true
		seen[d2] = true
	}
	assert.Len(t, seen, Faces)
}

func TestNewSource_IsDeterministic(t *testing.T) {
	a := NewSourceRoller(NewSource(7))
	b := NewSourceRoller(NewSource(7))
	for i := 0; i < 50; i++ {
		a1, a2 := a.Roll()
		b1, b2 := b.Roll()
		assert.Equal(t, a1, b1)
		assert.Equal(t, a2, b2)
	}
}
