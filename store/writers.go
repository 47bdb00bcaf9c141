package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/analysis"
)

// floatFmt renders artifact values with full precision; rounding is the
// responsibility of whoever computed them.
func floatFmt(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// createArtifact opens a CSV artifact for writing, creating parent
// directories as needed.
func createArtifact(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create artifact: %w", err)
	}
	return file, nil
}

// WriteSpectra writes a frequency column followed by one labeled power
// column per spectrum. All spectra must match the frequency axis length.
func WriteSpectra(path string, frequencies []float64, labels []string, spectra [][]float64) error {
	if len(labels) != len(spectra) {
		return fmt.Errorf("%w: %d labels vs %d spectra", common.ErrDimensionMismatch, len(labels), len(spectra))
	}
	for i, spec := range spectra {
		if len(spec) != len(frequencies) {
			return fmt.Errorf("%w: spectrum %q has %d bins, frequency axis has %d", common.ErrDimensionMismatch, labels[i], len(spec), len(frequencies))
		}
	}

	file, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	header := append([]string{"frequencies"}, labels...)
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, freq := range frequencies {
		row[0] = floatFmt(freq)
		for j, spec := range spectra {
			row[j+1] = floatFmt(spec[i])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteErrorMetrics appends one row per averaging window in long format.
func WriteErrorMetrics(path, periodID string, device analysis.Device, variable analysis.Variable, metrics []analysis.ErrorMetrics) error {
	file, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"PUO", "Device", "Variable", "Window [min]", "Mean", "Std", "Lower Range", "Upper Range"}); err != nil {
		return err
	}

	for _, m := range metrics {
		row := []string{
			periodID,
			string(device),
			string(variable),
			strconv.Itoa(m.WindowMin),
			floatFmt(m.Mean),
			floatFmt(m.Std),
			floatFmt(m.LowerRange),
			floatFmt(m.UpperRange),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteTurbulence writes per-interval turbulence intensities. Intervals
// whose relative intensity is undefined get an empty cell rather than a
// made-up zero.
func WriteTurbulence(path string, variable analysis.Variable, intensities []analysis.IntervalIntensity) error {
	file, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	abs := fmt.Sprintf("%s_abs", variable)
	rel := fmt.Sprintf("%s_rel", variable)
	if err := w.Write([]string{"from", "to", abs, rel}); err != nil {
		return err
	}

	for _, entry := range intensities {
		relCell := ""
		if entry.RelativeValid {
			relCell = floatFmt(entry.Relative)
		}
		row := []string{
			entry.From.Format(TimeFormat),
			entry.To.Format(TimeFormat),
			floatFmt(entry.Absolute),
			relCell,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteCorrelation writes a labeled square correlation matrix.
func WriteCorrelation(path string, labels []string, matrix [][]float64) error {
	if len(labels) != len(matrix) {
		return fmt.Errorf("%w: %d labels vs %d matrix rows", common.ErrDimensionMismatch, len(labels), len(matrix))
	}

	file, err := createArtifact(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write(append([]string{""}, labels...)); err != nil {
		return err
	}

	for i, matrixRow := range matrix {
		if len(matrixRow) != len(labels) {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", common.ErrDimensionMismatch, i, len(matrixRow), len(labels))
		}
		row := make([]string, 0, len(labels)+1)
		row = append(row, labels[i])
		for _, v := range matrixRow {
			row = append(row, floatFmt(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
