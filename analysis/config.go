package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/lgoerner/micromet/algorithms/common"
)

// Config collects the campaign constants that used to live as ambient
// globals in earlier tooling: averaging window lengths, the reference
// window, per-device sample rates, the taper fraction and the spectrum
// smoothing kernel. Everything downstream receives it explicitly.
type Config struct {
	// WindowsMin is the ordered set of averaging window lengths in minutes.
	WindowsMin []int `json:"windows_min" mapstructure:"windows-min"`

	// ReferenceWindowMin is the averaging duration treated as ground truth
	// for error metrics. It does not have to be a member of WindowsMin.
	ReferenceWindowMin int `json:"reference_window_min" mapstructure:"reference-window-min"`

	// SampleRates maps each device to its sampling rate in Hz.
	SampleRates map[Device]float64 `json:"sample_rates" mapstructure:"sample-rates"`

	// TaperFraction is the fraction of each series end tapered before
	// spectral estimation.
	TaperFraction float64 `json:"taper_fraction" mapstructure:"taper-fraction"`

	// SmoothingKernel is the rolling-mean width (in bins) applied to spectra
	// for display.
	SmoothingKernel int `json:"smoothing_kernel" mapstructure:"smoothing-kernel"`

	// ComparisonBins is the number of low-frequency bins kept when comparing
	// spectra across variables.
	ComparisonBins int `json:"comparison_bins" mapstructure:"comparison-bins"`

	// TurbulenceInterval is the bucket width for turbulence-intensity
	// aggregation.
	TurbulenceInterval time.Duration `json:"turbulence_interval" mapstructure:"turbulence-interval"`
}

// DefaultConfig returns the campaign defaults.
func DefaultConfig() Config {
	return Config{
		WindowsMin:         []int{1, 5, 10, 30, 60},
		ReferenceWindowMin: 10,
		SampleRates: map[Device]float64{
			DeviceEXPE:  1.0,
			DeviceSONIC: 2.0,
		},
		TaperFraction:      0.1,
		SmoothingKernel:    10,
		ComparisonBins:     300,
		TurbulenceInterval: 10 * time.Minute,
	}
}

// Validate rejects configurations the transforms would fail on anyway,
// with clearer messages.
func (c Config) Validate() error {
	if len(c.WindowsMin) == 0 {
		return fmt.Errorf("%w: window length set is empty", common.ErrInvalidParameter)
	}
	for _, m := range c.WindowsMin {
		if m <= 0 {
			return fmt.Errorf("%w: window length must be positive minutes, got %d", common.ErrInvalidParameter, m)
		}
	}
	if c.ReferenceWindowMin <= 0 {
		return fmt.Errorf("%w: reference window must be positive minutes, got %d", common.ErrInvalidParameter, c.ReferenceWindowMin)
	}
	if c.TaperFraction < 0 || c.TaperFraction > 0.5 {
		return fmt.Errorf("%w: taper fraction must be in [0, 0.5], got %g", common.ErrInvalidParameter, c.TaperFraction)
	}
	if c.SmoothingKernel < 1 {
		return fmt.Errorf("%w: smoothing kernel must be positive, got %d", common.ErrInvalidParameter, c.SmoothingKernel)
	}
	if c.ComparisonBins < 2 {
		return fmt.Errorf("%w: comparison bin count must be at least 2, got %d", common.ErrInvalidParameter, c.ComparisonBins)
	}
	if c.TurbulenceInterval <= 0 {
		return fmt.Errorf("%w: turbulence interval must be positive, got %s", common.ErrInvalidParameter, c.TurbulenceInterval)
	}
	for device, rate := range c.SampleRates {
		if rate <= 0 {
			return fmt.Errorf("%w: sample rate for %s must be positive Hz, got %g", common.ErrInvalidParameter, device, rate)
		}
	}
	return nil
}

// SampleRate returns the sampling rate for a device.
func (c Config) SampleRate(device Device) (float64, error) {
	rate, ok := c.SampleRates[device]
	if !ok {
		return 0, fmt.Errorf("%w: no sample rate configured for device %q", common.ErrInvalidParameter, device)
	}
	return rate, nil
}

// WindowSamples converts an averaging duration in minutes to a sample count
// for the given device. A conversion collapsing to zero samples (sample rate
// too low for the duration) is surfaced, never clamped.
func (c Config) WindowSamples(device Device, minutes int) (int, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("%w: window length must be positive minutes, got %d", common.ErrInvalidParameter, minutes)
	}

	rate, err := c.SampleRate(device)
	if err != nil {
		return 0, err
	}

	samples := int(math.Floor(float64(minutes) * 60 * rate))
	if samples < 1 {
		return 0, fmt.Errorf("%w: %d min at %g Hz yields zero samples", common.ErrDimensionMismatch, minutes, rate)
	}

	return samples, nil
}
