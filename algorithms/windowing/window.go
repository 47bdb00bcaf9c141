package windowing

import (
	"fmt"

	"github.com/lgoerner/micromet/algorithms/common"
)

// Type identifies a tapering window function by its stable name. The names
// double as labels in plots and CSV artifacts, so they never change.
type Type string

const (
	Barthann       Type = "barthann"
	Bartlett       Type = "bartlett"
	Blackman       Type = "blackman"
	BlackmanHarris Type = "blackman_harris"
	Bohman         Type = "bohman"
	Boxcar         Type = "boxcar"
	Cosine         Type = "cosine"
	Hamming        Type = "hamming"
	Hann           Type = "hann"
	Kaiser         Type = "kaiser"
	Lanczos        Type = "lanczos"
	Nuttall        Type = "nuttall"
	Parzen         Type = "parzen"
	Triang         Type = "triang"
	Tukey          Type = "tukey"
	Welch          Type = "welch"
)

// kaiserBeta is the fixed shape parameter used for the catalog's Kaiser
// window. The catalog is nonparametric by design, so the parameter is not
// exposed.
const kaiserBeta = 8.6

// tukeyAlpha is the fixed taper ratio of the catalog's Tukey window.
const tukeyAlpha = 0.5

// Types returns the full window catalog in stable, alphabetical order.
func Types() []Type {
	return []Type{
		Barthann, Bartlett, Blackman, BlackmanHarris,
		Bohman, Boxcar, Cosine, Hamming,
		Hann, Kaiser, Lanczos, Nuttall,
		Parzen, Triang, Tukey, Welch,
	}
}

// Generate computes the symmetric window coefficients for the given type over
// a support of n samples. All catalog windows return nonnegative weights.
// A support of a single sample yields the window's own peak value (1.0 for
// every catalog member) without dividing by zero.
func Generate(typ Type, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: window support must be positive, got %d", common.ErrInvalidParameter, n)
	}

	coefficients := make([]float64, n)
	if n == 1 {
		coefficients[0] = 1.0
		return coefficients, nil
	}

	switch typ {
	case Barthann:
		generateBarthann(coefficients)
	case Bartlett:
		generateBartlett(coefficients)
	case Blackman:
		generateBlackman(coefficients)
	case BlackmanHarris:
		generateBlackmanHarris(coefficients)
	case Bohman:
		generateBohman(coefficients)
	case Boxcar:
		generateBoxcar(coefficients)
	case Cosine:
		generateCosine(coefficients)
	case Hamming:
		generateHamming(coefficients)
	case Hann:
		generateHann(coefficients)
	case Kaiser:
		generateKaiser(coefficients, kaiserBeta)
	case Lanczos:
		generateLanczos(coefficients)
	case Nuttall:
		generateNuttall(coefficients)
	case Parzen:
		generateParzen(coefficients)
	case Triang:
		generateTriang(coefficients)
	case Tukey:
		generateTukey(coefficients, tukeyAlpha)
	case Welch:
		generateWelch(coefficients)
	default:
		return nil, fmt.Errorf("%w: unknown window type %q", common.ErrInvalidParameter, typ)
	}

	return coefficients, nil
}

// Weight evaluates a single coefficient without materializing the full
// support. Used for labeling and spot checks; bulk tapering goes through
// Generate.
func Weight(typ Type, i, n int) (float64, error) {
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index %d outside support of length %d", common.ErrInvalidParameter, i, n)
	}

	coefficients, err := Generate(typ, n)
	if err != nil {
		return 0, err
	}

	return coefficients[i], nil
}
