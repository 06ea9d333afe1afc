// Package seqgen_test: shared deterministic random sources for tests.
package seqgen_test

import "math/rand"

// fixedSource is a rand.Source whose Int63 always returns the same value,
// so rand.Rand.Float64 yields a single known constant. v = 1<<62 maps to
// Float64() == 0.5 exactly, which makes whole runs hand-traceable.
type fixedSource struct{ v int64 }

func (s fixedSource) Int63() int64 { return s.v }
func (s fixedSource) Seed(int64)   {}

// halfRand returns a *rand.Rand whose Float64 stream is 0.5, 0.5, 0.5, ...
func halfRand() *rand.Rand {
	return rand.New(fixedSource{v: 1 << 62})
}
