// Package seqgen - greedy builder, batch driver and derived statistics.
package seqgen

import (
	"math/rand"

	"github.com/andresbrocco/balanced-sequence-generator/matrix"
)

// BuildSequence grows one sequence of length n == mat.N() against a live
// transition matrix, mutating it as a side effect so later calls (for
// other sequences of the same batch) see updated weights.
//
// Contract: BuildSequence takes exclusive write access to mat for its
// duration. There are no concurrent readers during mutation, so no
// synchronization is required — but the matrix must not be shared.
//
// Stage 1 (Seed): the global off-diagonal minimum at (r,c) contributes two
// symbols from one lookup — append r, then c — and is reinforced.
// Stage 2 (Extend): each of the remaining n−2 symbols is the column of the
// minimum within the previous symbol's row (diagonal excluded); the used
// cell is reinforced with the same ceil+random rule.
//
// The result never repeats a symbol immediately: the seed pair has r != c
// (diagonal excluded from the scan) and every extension skips the
// self-transition column.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNilRand, and matrix sentinels
// surfaced by the scans.
//
// Complexity: O(n²) time (one full scan + n−2 row scans), O(n) space.
func BuildSequence(mat *matrix.Dense, rng *rand.Rand) (Sequence, error) {
	// Stage 0 (Validate): fail fast before consuming any entropy.
	if mat == nil {
		return nil, matrix.ErrNilMatrix
	}
	if rng == nil {
		return nil, matrix.ErrNilRand
	}

	n := mat.N()
	seq := make(Sequence, 0, n)

	// Stage 1 (Seed): the least-used transition anywhere yields symbols 1 and 2.
	r, c, err := mat.ArgMinOffDiag()
	if err != nil {
		return nil, err
	}
	seq = append(seq, r, c)
	if err = mat.Reinforce(r, c, rng); err != nil {
		return nil, err
	}

	// Stage 2 (Extend): row-local minimum of the previous symbol, n−2 times.
	var prev, next int
	for i := 2; i < n; i++ {
		prev = seq[i-1]
		next, err = mat.RowArgMinOffDiag(prev)
		if err != nil {
			return nil, err
		}
		seq = append(seq, next)
		if err = mat.Reinforce(prev, next, rng); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// Generate runs the full pipeline: initialize a fresh n×n matrix, build m
// sequences against it (one shared, persistently mutated matrix — state
// after sequence i is visible to sequence i+1, by design), then derive the
// realized transition-probability matrix from the finished set.
//
// Either a complete Result is returned or an error with no partial output.
//
// Errors: matrix.ErrTooSmall (n < 2), ErrBadCount (m < 1), and the strict
// degenerate-row sentinel when WithStrictRows is set.
//
// Complexity: O(m·n²) time, O(n² + m·n) space.
func Generate(n, m int, opts ...Option) (*Result, error) {
	// Stage 1 (Validate): count first — cheap, and no entropy consumed on failure.
	if m < 1 {
		return nil, ErrBadCount
	}
	o := gatherOptions(opts...)

	// Stage 2 (Initialize): random noise matrix, zero diagonal. Rejects n < 2.
	mat, err := matrix.NewRandom(n, o.rng)
	if err != nil {
		return nil, err
	}

	// Stage 3 (Build): m sequences over the one evolving matrix, in order.
	set := make(SequenceSet, 0, m)
	var seq Sequence
	for i := 0; i < m; i++ {
		if seq, err = BuildSequence(mat, o.rng); err != nil {
			return nil, err
		}
		set = append(set, seq)
	}

	// Stage 4 (Derive): fresh count-based probability matrix from the set.
	probs, err := TransitionProbabilities(set, o.strictRows)
	if err != nil {
		return nil, err
	}

	return &Result{Sequences: set, Probabilities: probs}, nil
}

// TransitionProbabilities computes the realized row-stochastic transition
// matrix of a finalized set: count every consecutive pair, then normalize
// each row by its sum. The dimension is the common sequence length.
//
// Degenerate rows (a symbol never observed as a non-terminal element)
// follow the strict flag: all-zero row when false, matrix.ErrDegenerateRow
// when true.
//
// Errors: ErrBadSet for an empty set or ragged lengths; matrix sentinels
// from counting and normalization.
//
// Complexity: O(m·n) counting + O(n²) normalization.
func TransitionProbabilities(seqs SequenceSet, strict bool) (*matrix.Dense, error) {
	// Stage 1 (Validate): non-empty, rectangular set.
	if len(seqs) == 0 {
		return nil, ErrBadSet
	}
	n := len(seqs[0])
	for _, s := range seqs {
		if len(s) != n {
			return nil, ErrBadSet
		}
	}

	// Stage 2 (Count): fresh zero matrix, one increment per consecutive pair.
	counts, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	if err = counts.CountTransitions(seqs); err != nil {
		return nil, err
	}

	// Stage 3 (Normalize): in-place L1 row normalization under the chosen policy.
	if err = counts.NormalizeRows(strict); err != nil {
		return nil, err
	}

	return counts, nil
}
