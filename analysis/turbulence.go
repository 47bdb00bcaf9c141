package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/lgoerner/micromet/algorithms/common"
)

// IntervalIntensity is the turbulence intensity of one aggregation interval.
// Absolute intensity is the sample standard deviation; relative intensity
// divides by the interval mean and is only reported when the mean is far
// enough from zero to carry meaning (vertical wind hovers around it).
type IntervalIntensity struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Mean          float64   `json:"mean"`
	Absolute      float64   `json:"absolute"`
	Relative      float64   `json:"relative"`
	RelativeValid bool      `json:"relative_valid"`
}

const relativeMeanFloor = 1e-9

// TurbulenceIntensity buckets the series into fixed intervals aligned to the
// interval width and reports per-interval intensity. Intervals with fewer
// than 2 samples are skipped since their standard deviation is undefined.
func TurbulenceIntensity(ts *TimeSeries, interval time.Duration) ([]IntervalIntensity, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %s", common.ErrInvalidParameter, interval)
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	if ts.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples for turbulence intensity, got %d", common.ErrInsufficientData, ts.Len())
	}

	var intensities []IntervalIntensity

	start := 0
	bucket := ts.Timestamps[0].Truncate(interval)
	for start < ts.Len() {
		next := bucket.Add(interval)

		end := start
		for end < ts.Len() && ts.Timestamps[end].Before(next) {
			end++
		}

		if end-start >= 2 {
			values := ts.Values[start:end]
			mean := common.Mean(values)
			abs := common.StandardDeviation(values)

			entry := IntervalIntensity{
				From:     bucket,
				To:       next,
				Mean:     mean,
				Absolute: abs,
			}
			if math.Abs(mean) > relativeMeanFloor {
				entry.Relative = abs / math.Abs(mean)
				entry.RelativeValid = true
			}
			intensities = append(intensities, entry)
		}

		start = end
		if end < ts.Len() {
			bucket = ts.Timestamps[end].Truncate(interval)
		}
	}

	return intensities, nil
}
