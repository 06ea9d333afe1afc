// Package balancedseq generates homogeneous sets of fixed-length symbol
// sequences whose pairwise transition statistics are as uniform as
// possible across all non-self transitions — test and benchmark stimuli
// for systems that consume symbol streams.
//
// The method is Markov-flavored: a square transition matrix tracks how
// often each current→next pair has been used, and a greedy minimum search
// always picks the least-used transition next, with a ceil+random
// "cooldown" pushing every used cell out of contention until its row
// neighbors catch up. Elements never repeat immediately (the matrix
// diagonal is structurally zero).
//
// Everything is organized under three subpackages plus a CLI:
//
//	matrix/     — square transition matrix: random init, off-diagonal
//	              argmin scans, cooldown updates, derived statistics
//	seqgen/     — the greedy builder, the batch driver over one shared
//	              evolving matrix, and the probability-matrix derivation
//	export/     — CSV writers and the heatmap PNG renderer
//	cmd/seqgen/ — command-line front end (flags, YAML config, zap logs)
//
// Quick example:
//
//	res, err := seqgen.Generate(12, 72, seqgen.WithSeed(42))
//	if err != nil {
//	  // only matrix.ErrTooSmall (N < 2) or seqgen.ErrBadCount (M < 1)
//	}
//	_ = export.SaveAll("example", res)
//
// Runs are deterministic given a seed; independent runs may execute in
// parallel since nothing is shared between them.
package balancedseq
