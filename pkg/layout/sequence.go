package layout

import (
	"math"
	"unicode/utf16"
)

// LCG parameters of the seeded sequence. Changing any of them changes every
// shared layout, so they are fixed.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Sequence is a deterministic pseudo-random stream keyed by a string seed.
// Build one per shuffle and discard it afterwards; it is not safe for
// concurrent use.
type Sequence struct {
	state int64
}

// NewSequence hashes seed into the initial state.
func NewSequence(seed string) *Sequence {
	return &Sequence{state: int64(math.Abs(float64(HashSeed(seed))))}
}

// HashSeed folds seed into a 32-bit integer with hash = hash*31 + unit over its
// UTF-16 code units, wrapping on overflow.
func HashSeed(seed string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		hash = hash*31 + int32(unit)
	}
	return hash
}

// Next advances the sequence and returns a value in [0, 1).
func (s *Sequence) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / lcgModulus
}

// NextInt returns an integer in [0, n].
func (s *Sequence) NextInt(n int) int {
	return int(math.Floor(s.Next() * float64(n+1)))
}
