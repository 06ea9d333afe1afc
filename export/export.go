package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andresbrocco/balanced-sequence-generator/seqgen"
)

// Canonical output file names, matching the long-standing CSV/PNG layout
// consumers of this tool already parse.
const (
	SequencesFile = "sequences.csv"
	MatrixFile    = "sequences_transition_matrix.csv"
	HeatmapFile   = "sequences_transition_matrix.png"
)

// SaveAll creates dir if needed and writes the three canonical artifacts
// of a finished run: the sequence CSV, the probability-matrix CSV and the
// heatmap PNG. Inputs are validated up front so an incomplete Result never
// produces partial files.
func SaveAll(dir string, res *seqgen.Result) error {
	if res == nil || res.Probabilities == nil {
		return ErrNilInput
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create output folder %q: %w", dir, err)
	}

	if err := writeFile(filepath.Join(dir, SequencesFile), func(f *os.File) error {
		return WriteSequencesCSV(f, res.Sequences)
	}); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(dir, MatrixFile), func(f *os.File) error {
		return WriteMatrixCSV(f, res.Probabilities)
	}); err != nil {
		return err
	}

	return writeFile(filepath.Join(dir, HeatmapFile), func(f *os.File) error {
		return WriteHeatmapPNG(f, res.Probabilities)
	})
}

// writeFile creates path, runs the writer against it and surfaces the
// first error, including the close error of a successful write.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	if err = write(f); err != nil {
		_ = f.Close() // writer error wins over close error
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %q: %w", path, err)
	}

	return nil
}
