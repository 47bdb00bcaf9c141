package analysis

import (
	"fmt"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/algorithms/stats"
)

// SpectrumSet is a group of equal-length spectra to correlate, one per
// (device, variable) pair, with display labels in matching order.
type SpectrumSet struct {
	Labels  []string    `json:"labels"`
	Spectra [][]float64 `json:"spectra"`
}

// CorrelationMatrix compares the low-frequency ends of the spectra in a set:
// each spectrum is truncated to the first firstN bins, smoothed with the
// rolling kernel, min-max normalized, and correlated pairwise (Pearson).
// Spectra shorter than firstN are used in full, matching how short periods
// are compared against long ones.
func CorrelationMatrix(set SpectrumSet, kernel, firstN int) ([][]float64, error) {
	if len(set.Labels) != len(set.Spectra) {
		return nil, fmt.Errorf("%w: %d labels vs %d spectra", common.ErrDimensionMismatch, len(set.Labels), len(set.Spectra))
	}
	if len(set.Spectra) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 spectra to correlate, got %d", common.ErrInsufficientData, len(set.Spectra))
	}
	if firstN < 2 {
		return nil, fmt.Errorf("%w: bin count must be at least 2, got %d", common.ErrInvalidParameter, firstN)
	}

	length := len(set.Spectra[0])
	for i, spec := range set.Spectra {
		if len(spec) != length {
			return nil, fmt.Errorf("%w: spectrum %d has %d bins, expected %d", common.ErrDimensionMismatch, i, len(spec), length)
		}
	}
	if length < 2 {
		return nil, fmt.Errorf("%w: spectra carry %d bins, need at least 2", common.ErrInsufficientData, length)
	}
	if length > firstN {
		length = firstN
	}

	prepared := make([][]float64, len(set.Spectra))
	for i, spec := range set.Spectra {
		smoothed, err := stats.RollingMean(spec[:length], kernel)
		if err != nil {
			return nil, fmt.Errorf("spectrum %q: %w", set.Labels[i], err)
		}
		prepared[i] = common.MinMaxNormalize(smoothed)
	}

	size := len(prepared)
	matrix := make([][]float64, size)
	for i := range matrix {
		matrix[i] = make([]float64, size)
		matrix[i][i] = 1.0
	}
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			r := common.Correlation(prepared[i], prepared[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return matrix, nil
}

// MeanCorrelation averages correlation matrices across periods elementwise.
func MeanCorrelation(matrices [][][]float64) ([][]float64, error) {
	if len(matrices) == 0 {
		return nil, fmt.Errorf("%w: no correlation matrices to average", common.ErrInsufficientData)
	}

	size := len(matrices[0])
	mean := make([][]float64, size)
	for i := range mean {
		mean[i] = make([]float64, size)
	}

	for _, matrix := range matrices {
		if len(matrix) != size {
			return nil, fmt.Errorf("%w: matrix has %d rows, expected %d", common.ErrDimensionMismatch, len(matrix), size)
		}
		for i, row := range matrix {
			if len(row) != size {
				return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", common.ErrDimensionMismatch, i, len(row), size)
			}
			for j, v := range row {
				mean[i][j] += v
			}
		}
	}

	for i := range mean {
		for j := range mean[i] {
			mean[i][j] /= float64(len(matrices))
		}
	}

	return mean, nil
}
