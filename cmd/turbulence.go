package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lgoerner/micromet/analysis"
	"github.com/lgoerner/micromet/logging"
	"github.com/lgoerner/micromet/store"
)

// turbulenceCmd computes interval turbulence intensities.
var turbulenceCmd = &cobra.Command{
	Use:   "turbulence",
	Short: "Compute per-interval turbulence intensity for all periods and devices",
	Long: `For every observation period, device and variable, bucket the raw series
into fixed aggregation intervals and report the absolute (standard deviation)
and relative (standard deviation over mean) turbulence intensity per
interval. One CSV artifact is written per series.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		periods, err := loadPeriods()
		if err != nil {
			return err
		}

		source := store.NewCSVSource(dataDir)

		for _, period := range periods {
			for _, device := range analysis.Devices() {
				for _, variable := range analysis.Variables(device) {
					if err := writeTurbulence(source, period, device, variable); err != nil {
						logging.Error(err, "skipping turbulence intensity", logging.Fields{
							"period":   period.ID,
							"device":   device,
							"variable": variable,
						})
					}
				}
			}
		}

		return nil
	},
}

func writeTurbulence(source analysis.SeriesSource, period analysis.Period, device analysis.Device, variable analysis.Variable) error {
	series, err := source.Series(device, period.ID, variable)
	if err != nil {
		return err
	}

	intensities, err := analysis.TurbulenceIntensity(series, cfg.TurbulenceInterval)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, "turbulence_intensity_data", fmt.Sprintf("%s_%s_%s_turbulence.csv", period.ID, device, variable))
	if err := store.WriteTurbulence(path, variable, intensities); err != nil {
		return err
	}

	logging.Info("wrote turbulence intensities", logging.Fields{
		"period":    period.ID,
		"device":    device,
		"variable":  variable,
		"intervals": len(intensities),
		"path":      path,
	})
	return nil
}
