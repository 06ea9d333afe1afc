// Package seqgen_test contains unit tests for the greedy balanced-sequence
// generator and its derived statistics.
package seqgen_test

import (
	"testing"

	"github.com/andresbrocco/balanced-sequence-generator/matrix"
	"github.com/andresbrocco/balanced-sequence-generator/seqgen"
	"github.com/stretchr/testify/require"
)

// TestGenerateValidation ensures bad run parameters fail fast, before any
// sequence is built.
func TestGenerateValidation(t *testing.T) {
	_, err := seqgen.Generate(1, 5)             // n < 2: no off-diagonal seed exists
	require.ErrorIs(t, err, matrix.ErrTooSmall) // expect ErrTooSmall

	_, err = seqgen.Generate(5, 0)              // m < 1: nothing to generate
	require.ErrorIs(t, err, seqgen.ErrBadCount) // expect ErrBadCount

	_, err = seqgen.Generate(5, -2)             // negative m is equally invalid
	require.ErrorIs(t, err, seqgen.ErrBadCount) // expect ErrBadCount
}

// TestBuildSequenceValidation ensures nil collaborators are rejected.
func TestBuildSequenceValidation(t *testing.T) {
	_, err := seqgen.BuildSequence(nil, halfRand()) // nil matrix
	require.ErrorIs(t, err, matrix.ErrNilMatrix)    // expect ErrNilMatrix

	m, err := matrix.NewRandom(3, halfRand())
	require.NoError(t, err)
	_, err = seqgen.BuildSequence(m, nil)      // nil random source
	require.ErrorIs(t, err, matrix.ErrNilRand) // expect ErrNilRand
}

// TestSequenceShape verifies every generated sequence has length exactly n,
// symbols in [0,n) and no immediate repetition.
func TestSequenceShape(t *testing.T) {
	const n, m = 7, 25
	res, err := seqgen.Generate(n, m, seqgen.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, res.Sequences, m) // exactly m sequences, in generation order

	for si, seq := range res.Sequences {
		require.Len(t, seq, n, "sequence %d has wrong length", si)
		for i, sym := range seq {
			require.GreaterOrEqual(t, sym, 0, "sequence %d symbol %d below range", si, i)
			require.Less(t, sym, n, "sequence %d symbol %d above range", si, i)
			if i > 0 {
				require.NotEqual(t, seq[i-1], sym, "sequence %d repeats symbol at %d", si, i)
			}
		}
	}
}

// TestGenerateDeterminism verifies that two runs with the same seed produce
// identical sequence sets and probability matrices.
func TestGenerateDeterminism(t *testing.T) {
	a, err := seqgen.Generate(6, 10, seqgen.WithSeed(99)) // first run
	require.NoError(t, err)
	b, err := seqgen.Generate(6, 10, seqgen.WithSeed(99)) // same seed again
	require.NoError(t, err)

	require.Equal(t, a.Sequences, b.Sequences)                             // identical sets
	require.Equal(t, a.Probabilities.String(), b.Probabilities.String()) // identical matrices

	c, err := seqgen.Generate(6, 10, seqgen.WithSeed(100)) // different seed
	require.NoError(t, err)
	require.NotEqual(t, a.Sequences, c.Sequences) // must diverge
}

// TestGenerateEndToEndTraced runs the full pipeline with a stub random
// stream (Float64 always 0.5), for which every pick is hand-traceable:
//
//	init: all off-diagonal cells 0.5
//	seq 1: global argmin ties → (0,1); extension from row 1 → 0    ⇒ [0 1 0]
//	seq 2: (0,1) is hot, argmin → (0,2); extension from row 2 → 0 ⇒ [0 2 0]
func TestGenerateEndToEndTraced(t *testing.T) {
	res, err := seqgen.Generate(3, 2, seqgen.WithRand(halfRand()))
	require.NoError(t, err)

	require.Equal(t, seqgen.SequenceSet{{0, 1, 0}, {0, 2, 0}}, res.Sequences)

	// Observed transitions: (0,1), (1,0), (0,2), (2,0).
	row0, _ := res.Probabilities.Row(0)
	require.Equal(t, []float64{0, 0.5, 0.5}, row0) // two transitions out of 0
	row1, _ := res.Probabilities.Row(1)
	require.Equal(t, []float64{1, 0, 0}, row1) // single transition 1→0
	row2, _ := res.Probabilities.Row(2)
	require.Equal(t, []float64{1, 0, 0}, row2) // single transition 2→0
}

// TestGenerateScale reproduces the canonical example run: N=12, M=72
// completes and yields a 72×12 set with a 12×12 row-stochastic matrix.
func TestGenerateScale(t *testing.T) {
	const n, m = 12, 72
	res, err := seqgen.Generate(n, m, seqgen.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, res.Sequences, m)

	require.Equal(t, n, res.Probabilities.N())
	for i := 0; i < n; i++ {
		row, err := res.Probabilities.Row(i)
		require.NoError(t, err)
		var sum float64
		for _, v := range row {
			sum += v
		}
		require.InEpsilon(t, 1.0, sum, 1e-9, "row %d is not stochastic", i)
		diag, _ := res.Probabilities.At(i, i)
		require.Zero(t, diag, "self-transition probability at %d must be zero", i)
	}
}

// TestTransitionProbabilitiesBadSet ensures empty and ragged sets are rejected.
func TestTransitionProbabilitiesBadSet(t *testing.T) {
	_, err := seqgen.TransitionProbabilities(nil, false) // empty set
	require.ErrorIs(t, err, seqgen.ErrBadSet)            // expect ErrBadSet

	ragged := seqgen.SequenceSet{{0, 1, 2}, {0, 1}}      // unequal lengths
	_, err = seqgen.TransitionProbabilities(ragged, false)
	require.ErrorIs(t, err, seqgen.ErrBadSet) // expect ErrBadSet
}

// TestTransitionProbabilitiesDegenerateRow pins the degenerate-row policy:
// lenient mode leaves the unobserved row all-zero, strict mode errors.
func TestTransitionProbabilitiesDegenerateRow(t *testing.T) {
	// Symbol 2 never appears as a non-terminal element.
	set := seqgen.SequenceSet{{0, 1, 0}}

	probs, err := seqgen.TransitionProbabilities(set, false) // lenient
	require.NoError(t, err)
	row2, _ := probs.Row(2)
	require.Equal(t, []float64{0, 0, 0}, row2) // documented all-zero, never NaN

	_, err = seqgen.TransitionProbabilities(set, true)   // strict
	require.ErrorIs(t, err, matrix.ErrDegenerateRow)     // expect ErrDegenerateRow
}

// TestWithStrictRowsWiring ensures the option reaches the statistics stage.
func TestWithStrictRowsWiring(t *testing.T) {
	// A normal run has every row observed, so strict mode still succeeds.
	res, err := seqgen.Generate(5, 20, seqgen.WithSeed(3), seqgen.WithStrictRows())
	require.NoError(t, err)
	require.NotNil(t, res.Probabilities)
}
