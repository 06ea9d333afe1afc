package seqgen

import (
	"errors"

	"github.com/andresbrocco/balanced-sequence-generator/matrix"
)

// ErrBadCount is returned when the requested sequence count m is < 1.
var ErrBadCount = errors.New("seqgen: sequence count must be >= 1")

// ErrBadSet is returned when a sequence set handed to the statistics stage
// is empty or ragged (sequences of unequal length).
var ErrBadSet = errors.New("seqgen: empty or ragged sequence set")

// Sequence is an ordered list of symbol indices in [0, n), of length n by
// construction (sequence length equals alphabet size). No two consecutive
// elements are equal; non-adjacent repeats are allowed. Immutable once
// returned by the builder.
type Sequence []int

// SequenceSet is an ordered collection of sequences sharing one alphabet,
// in generation order.
type SequenceSet [][]int

// Result bundles the two artifacts of a generation run.
type Result struct {
	// Sequences is the generated set: m sequences of length n, in
	// generation order.
	Sequences SequenceSet

	// Probabilities is the realized row-stochastic transition matrix
	// derived from Sequences by counting — unrelated in value to the
	// internal matrix that drove generation.
	Probabilities *matrix.Dense
}
