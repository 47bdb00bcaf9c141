package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lgoerner/micromet/analysis"
	"github.com/lgoerner/micromet/logging"
	"github.com/lgoerner/micromet/store"
)

// correlateCmd cross-correlates the spectra of all measured variables.
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Correlate the low-frequency spectra of all variables per period",
	Long: `For every observation period, estimate the power spectrum of each
(device, variable) pair, smooth and normalize the low-frequency end, and
correlate the spectra pairwise. Writes one matrix per period plus the mean
matrix across all periods that produced one.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		periods, err := loadPeriods()
		if err != nil {
			return err
		}

		source := store.NewCSVSource(dataDir)
		pipeline := analysis.NewPipeline(cfg)

		var (
			labels   []string
			matrices [][][]float64
		)

		for _, period := range periods {
			set, err := collectSpectra(pipeline, source, period)
			if err != nil {
				logging.Error(err, "skipping correlation", logging.Fields{
					"period": period.ID,
				})
				continue
			}

			matrix, err := analysis.CorrelationMatrix(*set, cfg.SmoothingKernel, cfg.ComparisonBins)
			if err != nil {
				logging.Error(err, "skipping correlation", logging.Fields{
					"period": period.ID,
				})
				continue
			}

			path := filepath.Join(outDir, "correlation_data", fmt.Sprintf("%s_correlation.csv", period.ID))
			if err := store.WriteCorrelation(path, set.Labels, matrix); err != nil {
				return err
			}
			logging.Info("wrote correlation matrix", logging.Fields{
				"period": period.ID,
				"path":   path,
			})

			labels = set.Labels
			matrices = append(matrices, matrix)
		}

		if len(matrices) == 0 {
			logging.Warn("no periods produced a correlation matrix")
			return nil
		}

		mean, err := analysis.MeanCorrelation(matrices)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, "correlation_data", "mean_correlation.csv")
		if err := store.WriteCorrelation(path, labels, mean); err != nil {
			return err
		}
		logging.Info("wrote mean correlation matrix", logging.Fields{
			"periods": len(matrices),
			"path":    path,
		})
		return nil
	},
}

// collectSpectra gathers one power spectrum per (device, variable) pair of a
// period, truncated to the shortest spectrum so the set is comparable. The
// devices sample at different rates, so their spectra differ in length.
func collectSpectra(pipeline *analysis.Pipeline, source analysis.SeriesSource, period analysis.Period) (*analysis.SpectrumSet, error) {
	set := &analysis.SpectrumSet{}

	for _, device := range analysis.Devices() {
		for _, variable := range analysis.Variables(device) {
			series, err := source.Series(device, period.ID, variable)
			if err != nil {
				return nil, err
			}

			result, err := pipeline.Spectrum(series)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", device, variable, err)
			}

			set.Labels = append(set.Labels, fmt.Sprintf("%s_%s", device, variable))
			set.Spectra = append(set.Spectra, result.Power)
		}
	}

	shortest := len(set.Spectra[0])
	for _, spec := range set.Spectra[1:] {
		if len(spec) < shortest {
			shortest = len(spec)
		}
	}
	for i, spec := range set.Spectra {
		set.Spectra[i] = spec[:shortest]
	}

	return set, nil
}
