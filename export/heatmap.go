package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/andresbrocco/balanced-sequence-generator/matrix"
)

// cellPx is the rendered side length of one matrix cell, in pixels.
const cellPx = 32

// hotStops are the anchor colors of the heat ramp, low to high:
// black → red → yellow → white, mirroring a classic "hot" colormap.
var hotStops = []colorful.Color{
	{R: 0, G: 0, B: 0},
	{R: 0.9, G: 0.1, B: 0},
	{R: 1, G: 0.85, B: 0},
	{R: 1, G: 1, B: 1},
}

// heatColor maps t ∈ [0,1] onto the hot ramp using perceptual (Luv)
// blending between the two surrounding anchor stops.
func heatColor(t float64) colorful.Color {
	if t <= 0 {
		return hotStops[0]
	}
	if t >= 1 {
		return hotStops[len(hotStops)-1]
	}
	// Locate the segment and its local blend position.
	scaled := t * float64(len(hotStops)-1)
	seg := int(scaled)
	frac := scaled - float64(seg)

	return hotStops[seg].BlendLuv(hotStops[seg+1], frac).Clamped()
}

// WriteHeatmapPNG renders the matrix as a PNG heatmap: rows are the
// current element (y axis, top to bottom), columns the next element
// (x axis, left to right). The color scale is normalized to the matrix
// value range; a constant matrix renders entirely at the low end.
//
// Complexity: O(n²·cellPx²).
func WriteHeatmapPNG(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return ErrNilInput
	}

	n := m.N()

	// Pass 1: value range for the color normalization.
	lo, hi, err := valueRange(m)
	if err != nil {
		return err
	}
	span := hi - lo

	// Pass 2: paint one uniform block per cell.
	img := image.NewRGBA(image.Rect(0, 0, n*cellPx, n*cellPx))
	var i, j int
	for i = 0; i < n; i++ {
		row, rerr := m.Row(i)
		if rerr != nil {
			return fmt.Errorf("export: read heatmap row %d: %w", i, rerr)
		}
		for j = 0; j < n; j++ {
			t := 0.0
			if span > 0 {
				t = (row[j] - lo) / span
			}
			c := heatColor(t)
			for y := i * cellPx; y < (i+1)*cellPx; y++ {
				for x := j * cellPx; x < (j+1)*cellPx; x++ {
					img.Set(x, y, c)
				}
			}
		}
	}

	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode heatmap: %w", err)
	}

	return nil
}

// valueRange scans the matrix for its minimum and maximum cell values.
func valueRange(m *matrix.Dense) (lo, hi float64, err error) {
	n := m.N()
	first := true
	for i := 0; i < n; i++ {
		row, rerr := m.Row(i)
		if rerr != nil {
			return 0, 0, fmt.Errorf("export: scan value range: %w", rerr)
		}
		for _, v := range row {
			if first {
				lo, hi, first = v, v, false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	return lo, hi, nil
}
