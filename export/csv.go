package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/andresbrocco/balanced-sequence-generator/matrix"
	"github.com/andresbrocco/balanced-sequence-generator/seqgen"
)

// ErrNilInput is returned when a writer receives a nil matrix or result.
var ErrNilInput = errors.New("export: nil input")

// WriteSequencesCSV emits one CSV record per sequence, one field per
// symbol, in generation order.
//
// Complexity: O(m·n).
func WriteSequencesCSV(w io.Writer, seqs seqgen.SequenceSet) error {
	cw := csv.NewWriter(w)
	record := make([]string, 0, 16) // reused across rows
	for _, seq := range seqs {
		record = record[:0]
		for _, sym := range seq {
			record = append(record, strconv.Itoa(sym))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write sequence row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush sequences: %w", err)
	}

	return nil
}

// WriteMatrixCSV emits the matrix in row-major order, one matrix row per
// CSV record. Values use the shortest exact representation
// (strconv 'g', precision -1) so a written matrix re-parses bit-identical.
//
// Complexity: O(n²).
func WriteMatrixCSV(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return ErrNilInput
	}

	cw := csv.NewWriter(w)
	n := m.N()
	record := make([]string, n) // reused across rows
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return fmt.Errorf("export: read matrix row %d: %w", i, err)
		}
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err = cw.Write(record); err != nil {
			return fmt.Errorf("export: write matrix row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush matrix: %w", err)
	}

	return nil
}
