// Package rng centralizes deterministic random generation for every
// randomized routine in the module (random-order greedy, random restarts,
// instance generation).
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Explicit threading: callers pass a *rand.Rand down the call path; nothing
//     here touches the math/rand global source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for restarts.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// OrDefault returns r unchanged when non-nil, otherwise a fresh stream seeded
// with DefaultSeed.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return FromSeed(0)
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer; small input changes give large,
// well-distributed output changes.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream
// identifier. If base==nil, DefaultSeed is used as the parent. Otherwise
// base.Int63() is consumed once, so deriving twice with the same stream id
// still yields different children.
//
// Call during setup (not in hot loops), e.g. once per restart.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		src *rand.Rand
		i   int
		j   int
	)
	src = OrDefault(r)

	for i = n - 1; i > 0; i-- {
		j = src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 generated deterministically from r.
// Negative n yields an empty permutation.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, r *rand.Rand) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	Shuffle(p, r)
	return p
}

// Uniform draws a float64 from [lo, hi) using r.
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*OrDefault(r).Float64()
}
