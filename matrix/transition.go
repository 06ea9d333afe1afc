// SPDX-License-Identifier: MIT
// Package matrix: off-diagonal argmin scans and the cooldown update.
//
// These three operations are the bookkeeping half of balanced sequence
// generation:
//
//   - ArgMinOffDiag seeds a sequence from the globally least-used transition.
//   - RowArgMinOffDiag extends a sequence from the least-used transition out
//     of the previous symbol.
//   - Reinforce applies the cooldown after a pick: the used cell is rounded
//     up to the next integer tier plus a fresh random in [0,1), so it cannot
//     be the minimum again until every other candidate in its row has been
//     raised to the same tier.
//
// Tie-break policy (documented, enforced in tests): strict `<` comparison
// during a row-major scan, so the FIRST cell attaining the minimum wins.
// Deterministic inputs therefore yield deterministic picks.

package matrix

import (
	"math"
	"math/rand"
)

// ArgMinOffDiag returns the coordinates of the minimum value among all
// off-diagonal cells, resolving ties to the first match in row-major order.
//
// Errors: ErrNilMatrix on a nil receiver. The n >= 2 invariant is enforced
// at construction, so a non-nil Dense always has an off-diagonal cell.
//
// Complexity: O(n²) time, O(1) space.
func (m *Dense) ArgMinOffDiag() (row, col int, err error) {
	if m == nil {
		return 0, 0, ErrNilMatrix
	}

	// Start from the first off-diagonal cell (0,1); guaranteed to exist.
	var (
		bestRow = 0
		bestCol = 1
		best    = m.data[1]
		i, j    int
	)
	for i = 0; i < m.n; i++ { // deterministic row order
		base := i * m.n
		for j = 0; j < m.n; j++ { // deterministic column order
			if i == j {
				continue // diagonal is structurally excluded
			}
			if v := m.data[base+j]; v < best { // strict `<`: first minimum wins
				best, bestRow, bestCol = v, i, j
			}
		}
	}

	return bestRow, bestCol, nil
}

// RowArgMinOffDiag returns the column of the minimum value within one row,
// skipping the diagonal cell, with the same first-match tie-break as
// ArgMinOffDiag.
//
// Errors: ErrNilMatrix on a nil receiver, ErrOutOfRange for an invalid row.
//
// Complexity: O(n) time, O(1) space.
func (m *Dense) RowArgMinOffDiag(row int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.n {
		return 0, denseErrorf("RowArgMinOffDiag", row, 0, ErrOutOfRange)
	}

	// First candidate column: 0, or 1 when the row starts on the diagonal.
	var bestCol int
	if row == 0 {
		bestCol = 1
	}

	base := row * m.n
	best := m.data[base+bestCol]
	var j int
	for j = bestCol + 1; j < m.n; j++ {
		if j == row {
			continue // never consider the self-transition
		}
		if v := m.data[base+j]; v < best { // strict `<`: first minimum wins
			best, bestCol = v, j
		}
	}

	return bestCol, nil
}

// Reinforce applies the cooldown update to cell (row, col) after the
// transition row→col has been used:
//
//	cell = ceil(cell) + rng.Float64()
//
// A fresh cell in [0,1) jumps to [1,2), so it cannot be selected again
// before every less-used transition in its row catches up; the fractional
// part re-randomizes the order within the next tier.
//
// Errors: ErrNilMatrix, ErrNilRand, ErrOutOfRange, and ErrDiagonal when
// (row, col) is a self-transition — the diagonal is never reinforced, which
// keeps the zero-diagonal invariant unconditional.
//
// Complexity: O(1).
func (m *Dense) Reinforce(row, col int, rng *rand.Rand) error {
	if m == nil {
		return ErrNilMatrix
	}
	if rng == nil {
		return ErrNilRand
	}

	// Bounds check via the shared indexer.
	idx, err := m.indexOf("Reinforce", row, col)
	if err != nil {
		return err
	}
	// Self-transitions are structurally forbidden.
	if row == col {
		return denseErrorf("Reinforce", row, col, ErrDiagonal)
	}

	// Cooldown: next integer tier plus fresh variability.
	m.data[idx] = math.Ceil(m.data[idx]) + rng.Float64()

	return nil
}
