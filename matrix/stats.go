// SPDX-License-Identifier: MIT
// Package matrix: derived transition statistics.
//
// Purpose:
//   - Count realized transitions of a finished sequence set into a fresh
//     matrix (the derived matrix is count-based, unrelated in value to the
//     generation-time matrix).
//   - Normalize rows in-place (L1) to obtain a row-stochastic probability
//     matrix, with an explicit degenerate-row policy.
//
// Determinism & Performance:
//   - Fixed sequence → pair traversal; stable results.
//   - All loops operate on the row-major flat buffer directly.

package matrix

// CountTransitions increments cell [s[i], s[i+1]] for every consecutive
// pair of every sequence in seqs. Counting is faithful: it does not skip
// diagonal pairs, so feeding sequences with immediate repeats is visible in
// the result rather than silently dropped.
//
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange when any symbol
// falls outside [0, n).
//
// Complexity: O(total sequence length) time, O(1) space.
func (m *Dense) CountTransitions(seqs [][]int) error {
	if m == nil {
		return ErrNilMatrix
	}

	var cur, next int
	for _, seq := range seqs {
		for i := 0; i+1 < len(seq); i++ {
			cur, next = seq[i], seq[i+1]
			// Validate both symbols against the matrix dimension.
			if cur < 0 || cur >= m.n || next < 0 || next >= m.n {
				return denseErrorf("CountTransitions", cur, next, ErrOutOfRange)
			}
			m.data[cur*m.n+next]++ // one observed transition cur→next
		}
	}

	return nil
}

// NormalizeRows divides each row by its sum, in place, turning a count
// matrix into a row-stochastic probability matrix.
//
// Degenerate rows (sum == 0) occur when a symbol never appears as a
// non-terminal element across the whole set. Policy:
//   - strict == false: the row is left all-zero (never NaN), documented as
//     "no observed transitions".
//   - strict == true: ErrDegenerateRow is returned and the matrix is left
//     untouched, so callers never see a half-normalized buffer.
//
// Complexity: O(n²) time, O(1) space.
func (m *Dense) NormalizeRows(strict bool) error {
	if m == nil {
		return ErrNilMatrix
	}

	// Stage 1 (Validate): under strict policy, scan for degenerate rows
	// before touching any cell.
	var i, j int
	if strict {
		for i = 0; i < m.n; i++ {
			var sum float64
			base := i * m.n
			for j = 0; j < m.n; j++ {
				sum += m.data[base+j]
			}
			if sum == 0 {
				return denseErrorf("NormalizeRows", i, 0, ErrDegenerateRow)
			}
		}
	}

	// Stage 2 (Execute): normalize row by row; zero-sum rows stay all-zero.
	for i = 0; i < m.n; i++ {
		var sum float64
		base := i * m.n
		for j = 0; j < m.n; j++ {
			sum += m.data[base+j]
		}
		if sum == 0 {
			continue // degenerate row: all-zero by policy, never NaN
		}
		inv := 1.0 / sum
		for j = 0; j < m.n; j++ {
			m.data[base+j] *= inv
		}
	}

	return nil
}
