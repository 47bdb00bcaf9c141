package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lgoerner/micromet/algorithms/conditioning"
	"github.com/lgoerner/micromet/analysis"
	"github.com/lgoerner/micromet/logging"
	"github.com/lgoerner/micromet/store"
)

// averageCmd runs the multi-window averaging error evaluation.
var averageCmd = &cobra.Command{
	Use:   "average",
	Short: "Evaluate moving-average error against the reference window",
	Long: `For every observation period, device and variable, detrend the series,
smooth it with each configured averaging window and compare against the
reference-window smoothing. Prints an error-metric table per series and
writes the records as CSV artifacts.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		periods, err := loadPeriods()
		if err != nil {
			return err
		}

		source := store.NewCSVSource(dataDir)
		evaluator := analysis.NewEvaluator(cfg)

		for _, period := range periods {
			for _, device := range analysis.Devices() {
				for _, variable := range analysis.Variables(device) {
					if err := evaluateSeries(evaluator, source, period, device, variable); err != nil {
						logging.Error(err, "skipping averaging evaluation", logging.Fields{
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

func evaluateSeries(evaluator *analysis.Evaluator, source analysis.SeriesSource, period analysis.Period, device analysis.Device, variable analysis.Variable) error {
	series, err := source.Series(device, period.ID, variable)
	if err != nil {
		return err
	}
	if err := series.Validate(); err != nil {
		return err
	}

	detrended, err := conditioning.Detrend(series.Values)
	if err != nil {
		return err
	}

	evaluation, err := evaluator.Evaluate(device, detrended)
	if err != nil {
		return err
	}

	metrics := evaluation.Metrics()
	if err := printErrorMetrics(period, device, variable, metrics); err != nil {
		return err
	}

	path := filepath.Join(outDir, "avg_error_metrics", fmt.Sprintf("%s_%s_%s_error_metrics.csv", period.ID, device, variable))
	if err := store.WriteErrorMetrics(path, period.ID, device, variable, metrics); err != nil {
		return err
	}

	logging.Info("wrote error metrics", logging.Fields{
		"period":   period.ID,
		"device":   device,
		"variable": variable,
		"path":     path,
	})
	return nil
}
