package analysis

import (
	"fmt"
	"time"

	"github.com/lgoerner/micromet/algorithms/common"
)

// TimeSeries is an evenly-sampled measurement series for one
// (device, period, variable) triple. Timestamps are strictly increasing; gap
// handling happens upstream in the data readers, the transforms here assume
// none.
type TimeSeries struct {
	Timestamps []time.Time `json:"timestamps"`
	Values     []float64   `json:"values"`
}

// Len returns the number of samples.
func (ts *TimeSeries) Len() int {
	return len(ts.Values)
}

// Validate checks the series invariants: matching array lengths and strictly
// increasing timestamps.
func (ts *TimeSeries) Validate() error {
	if len(ts.Timestamps) != len(ts.Values) {
		return fmt.Errorf("%w: %d timestamps vs %d values", common.ErrDimensionMismatch, len(ts.Timestamps), len(ts.Values))
	}

	for i := 1; i < len(ts.Timestamps); i++ {
		if !ts.Timestamps[i].After(ts.Timestamps[i-1]) {
			return fmt.Errorf("%w: timestamps not strictly increasing at index %d", common.ErrInvalidParameter, i)
		}
	}

	return nil
}

// SampleInterval returns the seconds between consecutive samples, derived
// from the first two timestamps.
func (ts *TimeSeries) SampleInterval() (float64, error) {
	if ts.Len() < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples to derive a sample interval", common.ErrInsufficientData)
	}

	return ts.Timestamps[1].Sub(ts.Timestamps[0]).Seconds(), nil
}
