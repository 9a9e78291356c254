package sample

import (
	"math/rand/v2"
)

// Sampler draws k distinct indices uniformly at random from [0, n). The returned slice may be
// reused by the next call to Sample and must not be modified by the caller.
type Sampler interface {
	Sample(n, k int) []int
}

// RandSampler draws indices with a partial Fisher-Yates shuffle over a persistent index buffer.
// It is not safe for concurrent use.
type RandSampler struct {
	rng *rand.Rand
	idx []int
}

// NewRandSampler creates a sampler backed by the provided source. If no source is provided
// a randomly seeded PCG source is used.
func NewRandSampler(src rand.Source) *RandSampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandSampler{
		rng: rand.New(src),
	}
}

// NewSeededSampler creates a deterministic sampler from a single seed
func NewSeededSampler(seed uint64) *RandSampler {
	return NewRandSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample returns k distinct indices from [0, n). k is capped at n.
func (s *RandSampler) Sample(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	// any arrangement of the buffer is a valid starting point for a partial shuffle
	if len(s.idx) != n {
		s.idx = make([]int, n)
		for i := range n {
			s.idx[i] = i
		}
	}

	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(n-i)
		s.idx[i], s.idx[j] = s.idx[j], s.idx[i]
	}
	return s.idx[:k]
}
