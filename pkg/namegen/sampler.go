package namegen

import (
	"math/rand/v2"
	"time"
)

// Source is the random number source used for sampling. IntN returns a value
// in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sampler draws symbol positions from count rows with probability
// proportional to each count. It holds one Source for its whole lifetime.
type Sampler struct {
	src Source
}

// NewSampler returns a sampler drawing from src.
func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Choose picks a position from row. A row that sums to zero was never observed
// during training and yields ErrUnseenContext.
func (s *Sampler) Choose(row []int) (int, error) {
	total := 0
	for _, c := range row {
		total += c
	}
	if total == 0 {
		return -1, ErrUnseenContext
	}

	r := s.src.IntN(total)
	sum := 0
	for i, c := range row {
		sum += c
		if sum > r {
			return i, nil
		}
	}
	// unreachable while r < total
	return len(row) - 1, nil
}
