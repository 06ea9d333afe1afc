// SPDX-License-Identifier: MIT
// Package matrix: generation-time initializer for the transition matrix.

package matrix

import "math/rand"

// NewRandom creates the n×n transition matrix that seeds a generation run:
// every off-diagonal cell is drawn independently and uniformly from [0,1),
// the diagonal is exactly zero (self-transitions are forbidden).
//
// Stage 1 (Validate): n >= 2 (ErrTooSmall) and rng non-nil (ErrNilRand).
// Stage 2 (Execute): fill off-diagonal cells in row-major order, one draw
// per cell, so a fixed rng stream yields a byte-identical matrix.
//
// rng is NOT goroutine-safe; the caller owns the stream and its seed.
//
// Complexity: O(n²) time and memory.
func NewRandom(n int, rng *rand.Rand) (*Dense, error) {
	// Validate the random source before allocating anything.
	if rng == nil {
		return nil, ErrNilRand
	}

	// Allocate the zeroed backing matrix (validates n >= 2).
	m, err := NewDense(n)
	if err != nil {
		return nil, err
	}

	// Fill off-diagonal cells in deterministic row-major order.
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n // cache row base offset
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays exactly zero
			}
			m.data[base+j] = rng.Float64() // uniform [0,1)
		}
	}

	return m, nil
}
