// Package seqgen generates sets of fixed-length symbol sequences whose
// pairwise transition statistics are as uniform as possible across all
// non-self transitions.
//
// Algorithm Outline:
//  1. Initialize an n×n transition matrix with random noise in [0,1),
//     diagonal fixed at zero (matrix.NewRandom).
//  2. Seed a sequence from the coordinates of the global off-diagonal
//     minimum: its row is the first symbol, its column the second.
//  3. Reinforce the used cell: round up to the next integer and add a
//     fresh random in [0,1) — the "cooldown" that keeps a transition out
//     of contention until its row neighbors catch up.
//  4. Extend: the next symbol is the column of the minimum within the row
//     of the previous symbol (diagonal ignored); reinforce that cell.
//  5. Repeat step 4 until the sequence reaches length n.
//  6. Repeat steps 2–5 against the SAME evolving matrix until m sequences
//     exist. Cross-sequence sharing is intentional: balance is a property
//     of the aggregate set, not of any single sequence.
//  7. Derive the realized transition-probability matrix by counting
//     consecutive pairs over the finished set and normalizing each row.
//
// Guarantees:
//   - Every sequence has length exactly n with no immediate repetition.
//   - The maintained matrix keeps an exactly-zero diagonal throughout.
//   - Given a fixed seed, runs are byte-identical: all tie-breaks resolve
//     to the first match in row-major order and no ambient randomness is
//     consumed anywhere.
//
// The procedure is a greedy heuristic, not an optimizer: it spreads usage
// across transitions, it does not guarantee a globally optimal balance.
// Generation is strictly sequential per run — the matrix is a single-owner
// mutable buffer. Independent runs (own matrix, own seed) may execute in
// parallel without locking.
//
// Complexity:
//
//	Time   = O(m·n²) (one full-matrix scan plus n−2 row scans per sequence)
//	Memory = O(n²) for the matrix + O(m·n) for the set
//
// Errors:
//   - matrix.ErrTooSmall — n < 2: no off-diagonal cell exists to seed from.
//   - ErrBadCount        — m < 1: nothing to generate.
//   - ErrBadSet          — empty or ragged set handed to the stats stage.
package seqgen
