package conditioning

import (
	"fmt"
	"math"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/algorithms/windowing"
)

// DefaultTaperWindow is the window applied when the caller does not pick one.
const DefaultTaperWindow = windowing.Hann

// Taper downweights both ends of a series before spectral estimation to
// reduce leakage. The first and last ⌊fraction·N⌋ samples are multiplied by
// the rising and falling halves of the chosen window, generated over a
// support of twice the edge length; interior samples keep weight 1. A
// fraction of 0.5 tapers the whole series, a fraction that rounds to zero
// edge samples returns the values unchanged. Fractions outside [0, 0.5] are
// rejected. The input is not modified.
func Taper(values []float64, fraction float64, typ windowing.Type) ([]float64, error) {
	if fraction < 0 || fraction > 0.5 {
		return nil, fmt.Errorf("%w: taper fraction must be in [0, 0.5], got %g", common.ErrInvalidParameter, fraction)
	}

	n := len(values)
	tapered := make([]float64, n)
	copy(tapered, values)

	edge := int(math.Floor(fraction * float64(n)))
	if edge == 0 {
		return tapered, nil
	}

	weights, err := windowing.Generate(typ, 2*edge)
	if err != nil {
		return nil, err
	}

	for i := 0; i < edge; i++ {
		tapered[i] *= weights[i]
		tapered[n-edge+i] *= weights[edge+i]
	}

	return tapered, nil
}

// TaperDefault tapers with the default Hann window.
func TaperDefault(values []float64, fraction float64) ([]float64, error) {
	return Taper(values, fraction, DefaultTaperWindow)
}
