// Package export persists the artifacts of a generation run: the sequence
// set and the derived transition-probability matrix, as CSV tables and as
// a heatmap image.
//
// The package is a thin sink over the core's outputs — it owns no
// algorithmic state. Writers take io.Writer so callers can target files,
// buffers or network streams alike; SaveAll is the convenience layer that
// creates the output folder and writes the three canonical files:
//
//	<dir>/sequences.csv                       one row per sequence
//	<dir>/sequences_transition_matrix.csv     row-major probability matrix
//	<dir>/sequences_transition_matrix.png     heatmap (rows = current
//	                                          element, cols = next element)
//
// SaveAll is all-or-nothing in spirit: it stops at the first failure and
// never writes from a partial Result (nil inputs are rejected up front).
package export
