package analysis

import (
	"fmt"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/algorithms/stats"
	"github.com/lgoerner/micromet/logging"
)

// ErrorMetrics summarizes how one averaging window deviates from the
// reference window over a whole series. All values are rounded to two
// decimals for reporting.
type ErrorMetrics struct {
	WindowMin  int     `json:"window_min"`  // Averaging window in minutes
	Mean       float64 `json:"mean"`        // Mean deviation
	Std        float64 `json:"std"`         // Sum of squared deviations over N-1
	LowerRange float64 `json:"lower_range"` // Largest underestimation (min deviation)
	UpperRange float64 `json:"upper_range"` // Largest overestimation (max deviation)
}

// WindowResult carries the smoothed series and deviation distribution for a
// single averaging window, for the presentation layer to plot.
type WindowResult struct {
	WindowMin  int       `json:"window_min"`
	Samples    int       `json:"samples"` // Window length in samples
	Smoothed   []float64 `json:"smoothed"`
	Deviations []float64 `json:"deviations"`
	Metrics    ErrorMetrics
}

// Evaluation is the outcome of a multi-window averaging run.
type Evaluation struct {
	Device       Device         `json:"device"`
	ReferenceMin int            `json:"reference_min"`
	Reference    []float64      `json:"reference"` // Reference smoothed series
	Windows      []WindowResult `json:"windows"`   // One entry per configured window, in order
}

// Metrics returns the per-window error metric records in window order.
func (ev *Evaluation) Metrics() []ErrorMetrics {
	metrics := make([]ErrorMetrics, len(ev.Windows))
	for i, w := range ev.Windows {
		metrics[i] = w.Metrics
	}
	return metrics
}

// Evaluator runs rolling means at several window lengths against a reference
// window and scores the deviations.
type Evaluator struct {
	cfg    Config
	logger logging.Logger
}

// NewEvaluator creates an evaluator for the given campaign configuration.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{
		cfg: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "averaging_evaluator",
		}),
	}
}

// Evaluate smooths the detrended series with the reference window once, then
// with every configured window length, and scores each against the shared
// reference. A series shorter than 2 samples cannot carry a variance and is
// rejected.
func (e *Evaluator) Evaluate(device Device, detrended []float64) (*Evaluation, error) {
	n := len(detrended)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples to evaluate deviations, got %d", common.ErrInsufficientData, n)
	}

	refSamples, err := e.cfg.WindowSamples(device, e.cfg.ReferenceWindowMin)
	if err != nil {
		return nil, err
	}

	// The reference series is computed exactly once and shared by every
	// window comparison.
	reference, err := stats.RollingMean(detrended, refSamples)
	if err != nil {
		return nil, fmt.Errorf("reference window %d min: %w", e.cfg.ReferenceWindowMin, err)
	}

	evaluation := &Evaluation{
		Device:       device,
		ReferenceMin: e.cfg.ReferenceWindowMin,
		Reference:    reference,
		Windows:      make([]WindowResult, 0, len(e.cfg.WindowsMin)),
	}

	for _, minutes := range e.cfg.WindowsMin {
		samples, err := e.cfg.WindowSamples(device, minutes)
		if err != nil {
			return nil, err
		}

		smoothed, err := stats.RollingMean(detrended, samples)
		if err != nil {
			return nil, fmt.Errorf("window %d min: %w", minutes, err)
		}

		deviations, err := stats.Deviations(smoothed, reference)
		if err != nil {
			return nil, err
		}

		sumSq := 0.0
		for _, d := range deviations {
			sumSq += d * d
		}
		low, high := common.MinMax(deviations)

		evaluation.Windows = append(evaluation.Windows, WindowResult{
			WindowMin:  minutes,
			Samples:    samples,
			Smoothed:   smoothed,
			Deviations: deviations,
			Metrics: ErrorMetrics{
				WindowMin:  minutes,
				Mean:       common.Round2(common.Mean(deviations)),
				Std:        common.Round2(sumSq / float64(n-1)),
				LowerRange: common.Round2(low),
				UpperRange: common.Round2(high),
			},
		})
	}

	e.logger.Debug("evaluated averaging windows", logging.Fields{
		"device":  device,
		"windows": len(evaluation.Windows),
		"samples": n,
	})

	return evaluation, nil
}
