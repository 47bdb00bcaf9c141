package stats

import (
	"fmt"

	"github.com/lgoerner/micromet/algorithms/common"
)

// RollingMean computes a trailing moving average: output[i] is the mean of
// the up-to-winLen samples ending at i, so the first winLen-1 elements are
// means over the partial window available so far. Output length equals input
// length with no padding; winLen equal to the series length makes the final
// element the global mean. The same convention is used for signal smoothing,
// spectrum smoothing and the averaging-error evaluation, since mixing
// conventions would break the zero-deviation-at-reference property.
//
// Runs in O(n) with a running sum; spectra reach into the megasample range
// and are smoothed at several widths per run.
func RollingMean(data []float64, winLen int) ([]float64, error) {
	if winLen < 1 {
		return nil, fmt.Errorf("%w: window length must be positive, got %d", common.ErrInvalidParameter, winLen)
	}
	if winLen > len(data) {
		return nil, fmt.Errorf("%w: window length %d exceeds series length %d", common.ErrInvalidParameter, winLen, len(data))
	}

	result := make([]float64, len(data))
	sum := 0.0

	for i, v := range data {
		sum += v
		if i >= winLen {
			sum -= data[i-winLen]
			result[i] = sum / float64(winLen)
		} else {
			result[i] = sum / float64(i+1)
		}
	}

	return result, nil
}

// Deviations returns the elementwise difference series - reference.
func Deviations(series, reference []float64) ([]float64, error) {
	if len(series) != len(reference) {
		return nil, fmt.Errorf("%w: series length %d vs reference length %d", common.ErrDimensionMismatch, len(series), len(reference))
	}

	deviations := make([]float64, len(series))
	for i := range series {
		deviations[i] = series[i] - reference[i]
	}

	return deviations, nil
}
