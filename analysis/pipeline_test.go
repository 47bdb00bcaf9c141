package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgoerner/micromet/algorithms/windowing"
)

func pipelineSeries(n int) *TimeSeries {
	base := time.Date(2023, 7, 11, 9, 0, 0, 0, time.UTC)
	ts := &TimeSeries{
		Timestamps: make([]time.Time, n),
		Values:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		ts.Timestamps[i] = base.Add(time.Duration(i) * time.Second)
		ts.Values[i] = 20.0 + 0.01*float64(i) + math.Sin(2*math.Pi*float64(i)/16.0)
	}
	return ts
}

func pipelineConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingKernel = 4
	return cfg
}

func TestPipelinePreprocess(t *testing.T) {
	ts := pipelineSeries(64)

	prep, err := NewPipeline(pipelineConfig()).Preprocess(ts)
	require.NoError(t, err)

	require.Len(t, prep.Detrended, ts.Len())
	require.Len(t, prep.Tapered, ts.Len())
	assert.Equal(t, ts.Values, prep.Raw)

	// Detrending strips the warming trend, tapering pins the ends down.
	mean := 0.0
	for _, v := range prep.Detrended {
		mean += v
	}
	assert.InDelta(t, 0.0, mean/float64(ts.Len()), 1e-9)
	assert.Less(t, math.Abs(prep.Tapered[0]), math.Abs(prep.Detrended[0])+1e-12)
	assert.InDelta(t, 0.0, prep.Tapered[0], 1e-12)
}

func TestPipelineSpectrum(t *testing.T) {
	ts := pipelineSeries(64)

	result, err := NewPipeline(pipelineConfig()).Spectrum(ts)
	require.NoError(t, err)

	require.Len(t, result.Frequencies, 32)
	require.Len(t, result.Power, 32)
	require.Len(t, result.Smoothed, 32)

	// The dominant tone sits at 1/16 Hz; smoothing must not move all the
	// energy away from it.
	peak := 0
	for i, p := range result.Power {
		if p > result.Power[peak] {
			peak = i
		}
	}
	assert.InDelta(t, 1.0/16.0, result.Frequencies[peak], 1e-2)
}

func TestPipelineWindowSensitivity(t *testing.T) {
	ts := pipelineSeries(64)

	sweep, err := NewPipeline(pipelineConfig()).WindowSensitivity(ts)
	require.NoError(t, err)
	require.Len(t, sweep, len(windowing.Types()))

	for i, typ := range windowing.Types() {
		assert.Equal(t, typ, sweep[i].Window)
		assert.Len(t, sweep[i].Smoothed, 32)
	}
}

func TestPipelineRejectsInvalidSeries(t *testing.T) {
	ts := pipelineSeries(8)
	ts.Timestamps[3] = ts.Timestamps[2]

	_, err := NewPipeline(pipelineConfig()).Spectrum(ts)
	assert.Error(t, err)
}
