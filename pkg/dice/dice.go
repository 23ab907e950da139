package dice

import (
	"math/rand/v2"
)

const (
	// Faces is the number of faces on a die
	Faces = 6
)

// Source is a uniform integer source in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Roller rolls the pair of dice used each turn.
type Roller interface {
	// Roll returns the two die faces, each in [1, Faces].
	Roll() (int, int)
}

// SourceRoller rolls two independent fair dice drawn from a Source.
type SourceRoller struct {
	source Source
}

func NewSourceRoller(source Source) *SourceRoller {
	return &SourceRoller{
		source: source,
	}
}

func (r *SourceRoller) Roll() (int, int) {
	return r.source.IntN(Faces) + 1, r.source.IntN(Faces) + 1
}

// NewSource returns a seeded pseudo-random Source.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
