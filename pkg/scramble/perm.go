package scramble

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrLengthMismatch = errors.New("permutation length does not match buffer length")
)

// PermutationEngine produces a deterministic permutation of 0..n-1 from a
// seed. Implementations must return the identical permutation for identical
// (n, seed) on every call, in every process, on every platform; the whole
// shuffle round trip depends on both sides rebuilding the same permutation.
type PermutationEngine interface {
	// Permutation returns a slice p of length n where p[i] is the source
	// index that lands at position i. Every value in 0..n-1 appears exactly
	// once. n must be non-negative.
	Permutation(n int, seed uint64) []int
}

// DefaultEngine returns the PermutationEngine used when none is supplied:
// a Fisher-Yates shuffle driven by the PCG generator from math/rand/v2,
// whose seeding and output stream are specified and stable across Go
// releases.
func DefaultEngine() PermutationEngine {
	return pcgEngine{}
}

type pcgEngine struct{}

func (pcgEngine) Permutation(n int, seed uint64) []int {
	if n < 0 {
		panic(fmt.Sprintf("negative permutation length %d", n))
	}
	// Both PCG state words come from the seed so the stream is a function
	// of the derived key material alone.
	rng := rand.New(rand.NewPCG(seed, seed))
	return rng.Perm(n)
}

// InvertPermutation returns inv such that inv[perm[i]] = i for all i.
// Applying a buffer gather by perm and then by inv restores the original
// order. Runs in linear time.
func InvertPermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}

// applyPermutation gathers data into a new buffer: out[i] = data[perm[i]].
// The permutation length must match the buffer length; anything else is an
// internal invariant violation and is reported rather than truncated.
func applyPermutation(data []byte, perm []int) ([]byte, error) {
	if len(perm) != len(data) {
		return nil, fmt.Errorf("%w: perm len %d, buffer len %d", ErrLengthMismatch, len(perm), len(data))
	}
	out := make([]byte, len(data))
	for i, p := range perm {
		out[i] = data[p]
	}
	return out, nil
}
