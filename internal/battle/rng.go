package battle

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a PCG-backed source and the seed it used.
// A zero seed is replaced with one derived from the current time so the
// caller can log it for reproducibility.
func NewSeededSource(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)), seed
}

// intn maps one uniform draw onto [0, n).
func intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Sequence replays a fixed list of draws, starting over when exhausted.
type Sequence struct {
	draws []float64
	used  int
}

// NewSequence returns a scripted source yielding draws in order
func NewSequence(draws ...float64) *Sequence {
	return &Sequence{draws: draws}
}

// Float64 returns the next scripted draw
func (s *Sequence) Float64() float64 {
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.used%len(s.draws)]
	s.used++
	return v
}

// Used reports how many draws have been taken so far.
func (s *Sequence) Used() int {
	return s.used
}
