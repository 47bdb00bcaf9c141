package spectral

import (
	"fmt"
	"math/cmplx"
	"time"

	"github.com/mjibson/go-dsp/fft"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/logging"
)

// Spectrum holds a one-sided power spectrum with the power at each bin
// scaled by the bin frequency. The scaling flattens the 1/f slope of
// turbulence spectra so that the 30-60 min production range stands out.
type Spectrum struct {
	Frequencies    []float64 `json:"frequencies"`     // Ascending bin frequencies in Hz, DC excluded
	Power          []float64 `json:"power"`           // Spectral energy density x frequency per bin
	SampleInterval float64   `json:"sample_interval"` // Seconds between consecutive samples
	Bins           int       `json:"bins"`            // Number of frequency bins
}

// Estimator converts conditioned, evenly-sampled series into power spectra.
type Estimator struct {
	logger logging.Logger
}

// NewEstimator creates a spectral estimator.
func NewEstimator() *Estimator {
	return &Estimator{
		logger: logging.WithFields(logging.Fields{
			"component": "spectral_estimator",
		}),
	}
}

// Compute runs a discrete Fourier transform over the (typically detrended and
// tapered) values and reports the one-sided spectrum in the energy density x
// frequency convention. The sampling interval comes from the first two
// timestamps. The zero-frequency bin is excluded; a constant series yields
// near-zero power at every bin rather than an error.
func (e *Estimator) Compute(times []time.Time, values []float64) (*Spectrum, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps vs %d values", common.ErrDimensionMismatch, len(times), len(values))
	}

	n := len(values)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples for a nonzero frequency bin, got %d", common.ErrInsufficientData, n)
	}

	dt := times[1].Sub(times[0]).Seconds()
	if dt <= 0 {
		return nil, fmt.Errorf("%w: non-increasing timestamps (interval %gs)", common.ErrInvalidParameter, dt)
	}

	return e.ComputeSampled(values, dt)
}

// ComputeSampled is Compute for callers that already know the sampling
// interval in seconds.
func (e *Estimator) ComputeSampled(values []float64, dt float64) (*Spectrum, error) {
	n := len(values)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples for a nonzero frequency bin, got %d", common.ErrInsufficientData, n)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: sample interval must be positive, got %g", common.ErrInvalidParameter, dt)
	}

	transformed := fft.FFTReal(values)

	bins := n / 2
	frequencies := make([]float64, bins)
	power := make([]float64, bins)

	norm := 2.0 / (float64(n) * float64(n))
	for k := 1; k <= bins; k++ {
		freq := float64(k) / (float64(n) * dt)
		magnitude := cmplx.Abs(transformed[k])

		frequencies[k-1] = freq
		power[k-1] = magnitude * magnitude * norm * freq
	}

	e.logger.Debug("computed spectrum", logging.Fields{
		"samples":         n,
		"bins":            bins,
		"sample_interval": dt,
	})

	return &Spectrum{
		Frequencies:    frequencies,
		Power:          power,
		SampleInterval: dt,
		Bins:           bins,
	}, nil
}
