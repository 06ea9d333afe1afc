// Package matrix: Dense is a concrete, row-major implementation of the
// square transition matrix, storing cells in a flat slice for performance
// and cache friendliness.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major n×n matrix of float64 values.
// n is the dimension and data holds n*n cells in row-major order.
type Dense struct {
	n    int       // dimension (rows == columns)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure n >= 2 so off-diagonal cells exist.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrTooSmall.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate dimension
	if n < 2 {
		return nil, ErrTooSmall
	}

	// Return initialized Dense over a fresh flat slice
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix dimension.
// Complexity: O(1).
func (m *Dense) N() int {
	return m.n // return stored dimension
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.n + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Set is a raw cell write: it does not police the diagonal, so tests and
// external loaders can build arbitrary matrices. Generation-time updates
// go through Reinforce, which does.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. The copy keeps callers (CSV writers,
// renderers) from aliasing the live backing slice.
// Complexity: O(n) time and memory.
func (m *Dense) Row(i int) ([]float64, error) {
	// Validate row index
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	// Copy the row out of the flat buffer
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(n²) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all cells into new slice
	copy(copyData, m.data)

	return &Dense{n: m.n, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.n; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.n; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.n+j])
			if j < m.n-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
