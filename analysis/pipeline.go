package analysis

import (
	"github.com/lgoerner/micromet/algorithms/conditioning"
	"github.com/lgoerner/micromet/algorithms/spectral"
	"github.com/lgoerner/micromet/algorithms/stats"
	"github.com/lgoerner/micromet/algorithms/windowing"
	"github.com/lgoerner/micromet/logging"
)

// Preprocessed holds the three conditioning stages of a series, matching the
// raw / detrended / tapered panels of the preprocessing plots.
type Preprocessed struct {
	Raw       []float64 `json:"raw"`
	Detrended []float64 `json:"detrended"`
	Tapered   []float64 `json:"tapered"`
}

// SpectrumResult is a spectrum plus its display smoothing.
type SpectrumResult struct {
	Frequencies []float64 `json:"frequencies"`
	Power       []float64 `json:"power"`
	Smoothed    []float64 `json:"smoothed"`
}

// WindowSpectrum is one entry of a window-sensitivity sweep.
type WindowSpectrum struct {
	Window      windowing.Type `json:"window"`
	Frequencies []float64      `json:"frequencies"`
	Smoothed    []float64      `json:"smoothed"`
}

// Pipeline bundles the conditioning and spectral stages under one campaign
// configuration. Each invocation is independent; a Pipeline is safe to reuse
// across periods and devices.
type Pipeline struct {
	cfg       Config
	estimator *spectral.Estimator
	logger    logging.Logger
}

// NewPipeline creates a pipeline for the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		estimator: spectral.NewEstimator(),
		logger: logging.WithFields(logging.Fields{
			"component": "pipeline",
		}),
	}
}

// Preprocess validates the series, removes the linear trend and tapers the
// edges with the default window at the configured fraction.
func (p *Pipeline) Preprocess(ts *TimeSeries) (*Preprocessed, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}

	detrended, err := conditioning.Detrend(ts.Values)
	if err != nil {
		return nil, err
	}

	tapered, err := conditioning.TaperDefault(detrended, p.cfg.TaperFraction)
	if err != nil {
		return nil, err
	}

	return &Preprocessed{
		Raw:       ts.Values,
		Detrended: detrended,
		Tapered:   tapered,
	}, nil
}

// Spectrum conditions the series and estimates its smoothed power spectrum.
func (p *Pipeline) Spectrum(ts *TimeSeries) (*SpectrumResult, error) {
	prep, err := p.Preprocess(ts)
	if err != nil {
		return nil, err
	}

	spec, err := p.estimator.Compute(ts.Timestamps, prep.Tapered)
	if err != nil {
		return nil, err
	}

	smoothed, err := stats.RollingMean(spec.Power, p.cfg.SmoothingKernel)
	if err != nil {
		return nil, err
	}

	return &SpectrumResult{
		Frequencies: spec.Frequencies,
		Power:       spec.Power,
		Smoothed:    smoothed,
	}, nil
}

// WindowSensitivity repeats the taper-and-estimate step once per catalog
// window, for judging how much the window choice moves the smoothed
// spectrum.
func (p *Pipeline) WindowSensitivity(ts *TimeSeries) ([]WindowSpectrum, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}

	detrended, err := conditioning.Detrend(ts.Values)
	if err != nil {
		return nil, err
	}

	sweep := make([]WindowSpectrum, 0, len(windowing.Types()))
	for _, typ := range windowing.Types() {
		tapered, err := conditioning.Taper(detrended, p.cfg.TaperFraction, typ)
		if err != nil {
			return nil, err
		}

		spec, err := p.estimator.Compute(ts.Timestamps, tapered)
		if err != nil {
			return nil, err
		}

		smoothed, err := stats.RollingMean(spec.Power, p.cfg.SmoothingKernel)
		if err != nil {
			return nil, err
		}

		sweep = append(sweep, WindowSpectrum{
			Window:      typ,
			Frequencies: spec.Frequencies,
			Smoothed:    smoothed,
		})
	}

	p.logger.Debug("window sensitivity sweep complete", logging.Fields{
		"windows": len(sweep),
		"samples": ts.Len(),
	})

	return sweep, nil
}
