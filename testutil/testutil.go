package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [lo, hi). Values may repeat.
func (r *RNG) Ints(n, lo, hi int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = lo + r.rand.Intn(hi-lo)
	}
	return out
}

// ActiveSet returns active distinct positions drawn from [0, width), sorted.
// If active exceeds width, every position is returned.
func (r *RNG) ActiveSet(width, active int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeSetLocked(width, active)
}

func (r *RNG) activeSetLocked(width, active int) []int {
	active = min(active, width)
	set := r.rand.Perm(width)[:active]
	slices.Sort(set)
	return set
}

// ActiveSets returns num independent active sets.
func (r *RNG) ActiveSets(num, width, active int) [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	sets := make([][]int, num)
	for i := range sets {
		sets[i] = r.activeSetLocked(width, active)
	}
	return sets
}

// Jitter returns a copy of set where every position is moved by at most
// spread, clamped to [0, width). Order is preserved; duplicates may appear.
func (r *RNG) Jitter(set []int, spread, width int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(set))
	for i, p := range set {
		p += r.rand.Intn(2*spread+1) - spread
		out[i] = max(0, min(width-1, p))
	}
	return out
}
