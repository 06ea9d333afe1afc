// Package matrix provides the square transition matrix that drives
// balanced sequence generation.
//
// The matrix package provides:
//
//   - Dense, a row-major n×n float64 matrix with O(1) cell access and
//     O(n²) memory, specialized to transition bookkeeping (rows are the
//     current symbol, columns the next symbol, the diagonal is zero).
//   - NewRandom, the generation-time initializer: off-diagonal cells
//     drawn uniformly from [0,1), diagonal exactly zero.
//   - Off-diagonal argmin scans (ArgMinOffDiag, RowArgMinOffDiag) with a
//     deterministic row-major first-match tie-break, and the Reinforce
//     cooldown update (ceil + fresh random) used after every pick.
//   - Transition counting and L1 row normalization for deriving the
//     realized transition-probability matrix from a finished set.
//
// Self-transitions are forbidden throughout: the argmin scans never look
// at the diagonal, Reinforce rejects diagonal targets, and NewRandom
// leaves the diagonal at exactly zero. Dense is a single-owner mutable
// buffer — callers mutating it (Reinforce, CountTransitions,
// NormalizeRows) must hold exclusive write access for the duration.
//
// See the examples in this package and seqgen for usage patterns.
package matrix
