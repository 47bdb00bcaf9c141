package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lgoerner/micromet/analysis"
	"github.com/lgoerner/micromet/logging"
	"github.com/lgoerner/micromet/store"
)

// spectraCmd estimates power spectra for every (period, device) pair.
var spectraCmd = &cobra.Command{
	Use:   "spectra",
	Short: "Estimate smoothed power spectra for all periods and devices",
	Long: `For every observation period and device, detrend and taper each measured
variable, estimate its one-sided power spectrum (energy density x frequency)
and write one CSV artifact per (period, device) pair with a shared frequency
column and one power column per variable.

A failing period or device is logged and skipped so one bad export cannot
abort the batch.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		periods, err := loadPeriods()
		if err != nil {
			return err
		}

		source := store.NewCSVSource(dataDir)
		pipeline := analysis.NewPipeline(cfg)

		for _, period := range periods {
			for _, device := range analysis.Devices() {
				if err := writeDeviceSpectra(pipeline, source, period, device); err != nil {
					logging.Error(err, "skipping spectra", logging.Fields{
						"period": period.ID,
						"device": device,
					})
				}
			}
		}

		return nil
	},
}

// writeDeviceSpectra computes the per-variable spectra of one (period,
// device) pair and writes them side by side.
func writeDeviceSpectra(pipeline *analysis.Pipeline, source analysis.SeriesSource, period analysis.Period, device analysis.Device) error {
	var (
		frequencies []float64
		labels      []string
		spectra     [][]float64
	)

	for _, variable := range analysis.Variables(device) {
		series, err := source.Series(device, period.ID, variable)
		if err != nil {
			return err
		}

		result, err := pipeline.Spectrum(series)
		if err != nil {
			return fmt.Errorf("variable %s: %w", variable, err)
		}

		if frequencies == nil {
			frequencies = result.Frequencies
		}
		labels = append(labels, fmt.Sprintf("%s_spec", variable))
		spectra = append(spectra, result.Power)
		labels = append(labels, fmt.Sprintf("%s_spec_smooth", variable))
		spectra = append(spectra, result.Smoothed)
	}

	path := filepath.Join(outDir, "spectra_data", fmt.Sprintf("%s_%s_spectrum_data.csv", period.ID, device))
	if err := store.WriteSpectra(path, frequencies, labels, spectra); err != nil {
		return err
	}

	logging.Info("wrote spectra", logging.Fields{
		"period": period.ID,
		"device": device,
		"path":   path,
	})
	return nil
}
