// Package store reads raw instrument CSV exports and writes the numeric
// artifacts (spectra, error metrics, turbulence intensity, correlation
// matrices) that the plotting layer consumes.
package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/analysis"
	"github.com/lgoerner/micromet/logging"
)

// TimeFormat is the timestamp layout used by the instrument exports and all
// written artifacts.
const TimeFormat = "2006-01-02 15:04:05"

// CSVSource serves measurement series from a directory of per-period,
// per-device CSV files named "<period>_<device>.csv" with a Datetime column
// followed by one column per variable.
type CSVSource struct {
	dir    string
	logger logging.Logger
}

// NewCSVSource creates a source rooted at dir.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{
		dir: dir,
		logger: logging.WithFields(logging.Fields{
			"component": "csv_source",
			"dir":       dir,
		}),
	}
}

// Series implements analysis.SeriesSource.
func (s *CSVSource) Series(device analysis.Device, periodID string, variable analysis.Variable) (*analysis.TimeSeries, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.csv", periodID, device))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", common.ErrInsufficientData, path)
	}

	header := records[0]
	col := -1
	for i, name := range header {
		if name == string(variable) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: no column %q in %s", common.ErrInvalidParameter, variable, path)
	}

	ts := &analysis.TimeSeries{
		Timestamps: make([]time.Time, 0, len(records)-1),
		Values:     make([]float64, 0, len(records)-1),
	}

	for i, record := range records[1:] {
		stamp, err := time.Parse(TimeFormat, record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+2, path, err)
		}
		value, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+2, path, err)
		}
		ts.Timestamps = append(ts.Timestamps, stamp)
		ts.Values = append(ts.Values, value)
	}

	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Debug("loaded series", logging.Fields{
		"period":   periodID,
		"device":   device,
		"variable": variable,
		"samples":  ts.Len(),
	})

	return ts, nil
}

// LoadPeriods reads the observation-period index, a CSV with columns
// id,start,end,date,day.
func LoadPeriods(path string) ([]analysis.Period, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open period index: %w", err)
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s lists no periods", common.ErrInsufficientData, path)
	}

	periods := make([]analysis.Period, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < 5 {
			return nil, fmt.Errorf("%w: row %d of %s has %d fields, expected 5", common.ErrDimensionMismatch, i+2, path, len(record))
		}
		start, err := time.Parse(TimeFormat, record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+2, path, err)
		}
		end, err := time.Parse(TimeFormat, record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+2, path, err)
		}
		day, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+2, path, err)
		}
		periods = append(periods, analysis.Period{
			ID:    record[0],
			Start: start,
			End:   end,
			Date:  record[3],
			Day:   day,
		})
	}

	return periods, nil
}
