// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrTooSmall is returned when a transition matrix of dimension n < 2 is
	// requested or scanned. With n < 2 no off-diagonal cell exists, so no
	// sequence seed can be found.
	ErrTooSmall = errors.New("matrix: dimension must be >= 2")

	// ErrOutOfRange indicates that an index (row, column or symbol) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDiagonal signals an attempted write to a diagonal cell. The diagonal
	// is structurally zero (self-transitions are forbidden) and must remain so
	// through every update.
	ErrDiagonal = errors.New("matrix: diagonal cell is read-only zero")

	// ErrDegenerateRow is returned by strict row normalization when a row sums
	// to zero, i.e. its symbol never occurred as a non-terminal element.
	ErrDegenerateRow = errors.New("matrix: row has zero transition total")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilRand indicates that a randomized operation was invoked without a
	// random source. The package never falls back to an ambient global source;
	// determinism is the caller's to own.
	ErrNilRand = errors.New("matrix: nil random source")
)
