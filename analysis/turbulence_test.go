package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgoerner/micromet/algorithms/common"
)

func turbulenceSeries(values []float64) *TimeSeries {
	base := time.Date(2023, 7, 11, 10, 0, 0, 0, time.UTC)
	ts := &TimeSeries{
		Timestamps: make([]time.Time, len(values)),
		Values:     values,
	}
	for i := range values {
		ts.Timestamps[i] = base.Add(time.Duration(i) * time.Second)
	}
	return ts
}

func TestTurbulenceIntensityBuckets(t *testing.T) {
	// Two one-minute buckets: a constant interval followed by an alternating
	// zero-mean interval.
	values := make([]float64, 120)
	for i := 0; i < 60; i++ {
		values[i] = 5.0
	}
	for i := 60; i < 120; i++ {
		if i%2 == 0 {
			values[i] = 1.0
		} else {
			values[i] = -1.0
		}
	}

	intensities, err := TurbulenceIntensity(turbulenceSeries(values), time.Minute)
	require.NoError(t, err)
	require.Len(t, intensities, 2)

	first := intensities[0]
	assert.Equal(t, time.Date(2023, 7, 11, 10, 0, 0, 0, time.UTC), first.From)
	assert.Equal(t, time.Date(2023, 7, 11, 10, 1, 0, 0, time.UTC), first.To)
	assert.Equal(t, 5.0, first.Mean)
	assert.Equal(t, 0.0, first.Absolute)
	assert.True(t, first.RelativeValid)
	assert.Equal(t, 0.0, first.Relative)

	second := intensities[1]
	assert.InDelta(t, 0.0, second.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(60.0/59.0), second.Absolute, 1e-12)
	assert.False(t, second.RelativeValid, "relative intensity is undefined at zero mean")
}

func TestTurbulenceIntensitySkipsSparseIntervals(t *testing.T) {
	// 61 samples: the second bucket holds a single sample and is dropped.
	values := make([]float64, 61)
	for i := range values {
		values[i] = float64(i)
	}

	intensities, err := TurbulenceIntensity(turbulenceSeries(values), time.Minute)
	require.NoError(t, err)
	require.Len(t, intensities, 1)
	assert.InDelta(t, 29.5, intensities[0].Mean, 1e-12)
}

func TestTurbulenceIntensityAlignsBuckets(t *testing.T) {
	// A series starting mid-interval still reports interval edges aligned to
	// the bucket width.
	base := time.Date(2023, 7, 11, 10, 0, 30, 0, time.UTC)
	ts := &TimeSeries{
		Timestamps: make([]time.Time, 30),
		Values:     make([]float64, 30),
	}
	for i := range ts.Values {
		ts.Timestamps[i] = base.Add(time.Duration(i) * time.Second)
		ts.Values[i] = float64(i % 2)
	}

	intensities, err := TurbulenceIntensity(ts, time.Minute)
	require.NoError(t, err)
	require.Len(t, intensities, 1)
	assert.Equal(t, time.Date(2023, 7, 11, 10, 0, 0, 0, time.UTC), intensities[0].From)
}

func TestTurbulenceIntensityErrors(t *testing.T) {
	ts := turbulenceSeries([]float64{1, 2, 3})

	_, err := TurbulenceIntensity(ts, 0)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	_, err = TurbulenceIntensity(turbulenceSeries([]float64{1}), time.Minute)
	assert.ErrorIs(t, err, common.ErrInsufficientData)
}
