package conditioning

import (
	"fmt"

	"github.com/lgoerner/micromet/algorithms/common"
)

// Detrend removes the ordinary-least-squares best-fit line from the values,
// fitted over the sample index. The result has zero slope and zero mean up to
// floating precision; a constant series comes back as all zeros. The input is
// not modified.
func Detrend(values []float64) ([]float64, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot detrend an empty series", common.ErrInsufficientData)
	}

	detrended := make([]float64, n)
	if n == 1 {
		// A single sample is its own trend
		return detrended, nil
	}

	index := make([]float64, n)
	for i := range index {
		index[i] = float64(i)
	}

	slope, intercept := common.LinRegression(index, values)

	for i, v := range values {
		detrended[i] = v - (intercept + slope*float64(i))
	}

	return detrended, nil
}
