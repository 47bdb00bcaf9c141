package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgoerner/micromet/algorithms/common"
	"github.com/lgoerner/micromet/analysis"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceSeries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "PUO_03_SONIC.csv",
		"Datetime,t,wind_h,wind_z\n"+
			"2023-07-11 09:00:00,21.5,2.1,0.1\n"+
			"2023-07-11 09:00:01,21.6,2.3,-0.2\n"+
			"2023-07-11 09:00:02,21.4,2.0,0.0\n")

	source := NewCSVSource(dir)

	ts, err := source.Series(analysis.DeviceSONIC, "PUO_03", analysis.VariableHorizontalWind)
	require.NoError(t, err)
	require.Equal(t, 3, ts.Len())
	assert.Equal(t, []float64{2.1, 2.3, 2.0}, ts.Values)
	assert.Equal(t, time.Date(2023, 7, 11, 9, 0, 1, 0, time.UTC), ts.Timestamps[1])
}

func TestCSVSourceSeriesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "PUO_01_EXPE.csv",
		"Datetime,t\n2023-07-11 09:00:00,21.5\n")
	writeFile(t, dir, "PUO_02_EXPE.csv", "Datetime,t\n")

	source := NewCSVSource(dir)

	t.Run("missing file", func(t *testing.T) {
		_, err := source.Series(analysis.DeviceEXPE, "PUO_99", analysis.VariableTemperature)
		assert.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := source.Series(analysis.DeviceEXPE, "PUO_01", analysis.VariableHorizontalWind)
		assert.ErrorIs(t, err, common.ErrInvalidParameter)
	})

	t.Run("no data rows", func(t *testing.T) {
		_, err := source.Series(analysis.DeviceEXPE, "PUO_02", analysis.VariableTemperature)
		assert.ErrorIs(t, err, common.ErrInsufficientData)
	})
}

func TestLoadPeriods(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "periods.csv",
		"id,start,end,date,day\n"+
			"PUO_03,2023-07-11 09:00:00,2023-07-11 12:45:00,11.07.2023,1\n"+
			"PUO_04,2023-07-12 08:30:00,2023-07-12 11:00:00,12.07.2023,2\n")

	periods, err := LoadPeriods(path)
	require.NoError(t, err)
	require.Len(t, periods, 2)

	assert.Equal(t, "PUO_03", periods[0].ID)
	assert.Equal(t, time.Date(2023, 7, 11, 9, 0, 0, 0, time.UTC), periods[0].Start)
	assert.Equal(t, "11.07.2023", periods[0].Date)
	assert.Equal(t, 2, periods[1].Day)
}

func TestLoadPeriodsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPeriods(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	empty := writeFile(t, dir, "empty.csv", "id,start,end,date,day\n")
	_, err = LoadPeriods(empty)
	assert.ErrorIs(t, err, common.ErrInsufficientData)

	badDay := writeFile(t, dir, "bad_day.csv",
		"id,start,end,date,day\n"+
			"PUO_03,2023-07-11 09:00:00,2023-07-11 12:45:00,11.07.2023,one\n")
	_, err = LoadPeriods(badDay)
	assert.Error(t, err)
}

func TestWriteSpectraRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "spectrum.csv")

	err := WriteSpectra(path,
		[]float64{0.1, 0.2},
		[]string{"t_spec", "t_spec_smooth"},
		[][]float64{{1.5, 2.5}, {1.0, 2.0}})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"frequencies,t_spec,t_spec_smooth\n0.1,1.5,1\n0.2,2.5,2\n",
		string(content))
}

func TestWriteSpectraDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.csv")

	err := WriteSpectra(path, []float64{0.1}, []string{"a", "b"}, [][]float64{{1}})
	assert.ErrorIs(t, err, common.ErrDimensionMismatch)

	err = WriteSpectra(path, []float64{0.1, 0.2}, []string{"a"}, [][]float64{{1}})
	assert.ErrorIs(t, err, common.ErrDimensionMismatch)
}

func TestWriteErrorMetricsRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")

	metrics := []analysis.ErrorMetrics{
		{WindowMin: 1, Mean: 0, Std: 0, LowerRange: 0, UpperRange: 0},
		{WindowMin: 60, Mean: -0.12, Std: 1.5, LowerRange: -2.25, UpperRange: 1.75},
	}
	require.NoError(t, WriteErrorMetrics(path, "PUO_03", analysis.DeviceEXPE, analysis.VariableTemperature, metrics))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"PUO,Device,Variable,Window [min],Mean,Std,Lower Range,Upper Range\n"+
			"PUO_03,EXPE,t,1,0,0,0,0\n"+
			"PUO_03,EXPE,t,60,-0.12,1.5,-2.25,1.75\n",
		string(content))
}

func TestWriteTurbulenceRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turbulence.csv")

	from := time.Date(2023, 7, 11, 10, 0, 0, 0, time.UTC)
	intensities := []analysis.IntervalIntensity{
		{From: from, To: from.Add(10 * time.Minute), Mean: 2, Absolute: 0.5, Relative: 0.25, RelativeValid: true},
		{From: from.Add(10 * time.Minute), To: from.Add(20 * time.Minute), Mean: 0, Absolute: 0.5},
	}
	require.NoError(t, WriteTurbulence(path, analysis.VariableVerticalWind, intensities))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"from,to,wind_z_abs,wind_z_rel\n"+
			"2023-07-11 10:00:00,2023-07-11 10:10:00,0.5,0.25\n"+
			"2023-07-11 10:10:00,2023-07-11 10:20:00,0.5,\n",
		string(content))
}

func TestWriteCorrelationRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correlation.csv")

	labels := []string{"EXPE_t", "SONIC_t"}
	matrix := [][]float64{{1, 0.5}, {0.5, 1}}
	require.NoError(t, WriteCorrelation(path, labels, matrix))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		",EXPE_t,SONIC_t\n"+
			"EXPE_t,1,0.5\n"+
			"SONIC_t,0.5,1\n",
		string(content))
}

func TestWriteCorrelationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correlation.csv")

	err := WriteCorrelation(path, []string{"a"}, [][]float64{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, common.ErrDimensionMismatch)

	err = WriteCorrelation(path, []string{"a", "b"}, [][]float64{{1, 0}, {0}})
	assert.ErrorIs(t, err, common.ErrDimensionMismatch)
}
