package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lgoerner/micromet/analysis"
	"github.com/lgoerner/micromet/logging"
	"github.com/lgoerner/micromet/store"
)

var version = "dev"

// cfg holds the validated campaign configuration shared by all subcommands.
var cfg analysis.Config

var (
	dataDir     string
	outDir      string
	periodsFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "micromet",
	Short:         "Analyze micrometeorological field-measurement time series.",
	Long:          `Micromet processes temperature and wind series from the EXPE and SONIC devices across all observation periods: preprocessing, power spectra, averaging-error sensitivity, window-function sensitivity, turbulence intensity and cross-variable spectral correlation.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if verbose {
			logging.SetLevel(logging.DebugLevel)
		}
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error(err, "command failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data", "data/raw", "directory with raw instrument CSV exports")
	flags.StringVar(&outDir, "out", "data", "directory for CSV artifacts")
	flags.StringVar(&periodsFile, "periods", "data/periods.csv", "observation-period index file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.String("config", "", "config file (default .micromet.yaml)")

	_ = viper.BindPFlag("config", flags.Lookup("config"))

	rootCmd.AddCommand(spectraCmd)
	rootCmd.AddCommand(averageCmd)
	rootCmd.AddCommand(turbulenceCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(windowsCmd)
}

// initConfig reads in the config file and MICROMET_ environment variables.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".micromet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("MICROMET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig merges file and environment overrides onto the campaign
// defaults and validates the result.
func loadConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	cfg = analysis.DefaultConfig()

	if viper.IsSet("windows-min") {
		cfg.WindowsMin = viper.GetIntSlice("windows-min")
	}
	if viper.IsSet("reference-window-min") {
		cfg.ReferenceWindowMin = viper.GetInt("reference-window-min")
	}
	if viper.IsSet("taper-fraction") {
		cfg.TaperFraction = viper.GetFloat64("taper-fraction")
	}
	if viper.IsSet("smoothing-kernel") {
		cfg.SmoothingKernel = viper.GetInt("smoothing-kernel")
	}
	if viper.IsSet("comparison-bins") {
		cfg.ComparisonBins = viper.GetInt("comparison-bins")
	}
	if viper.IsSet("turbulence-interval-min") {
		cfg.TurbulenceInterval = time.Duration(viper.GetInt("turbulence-interval-min")) * time.Minute
	}
	if viper.IsSet("sample-rates") {
		for name := range viper.GetStringMap("sample-rates") {
			device := analysis.Device(strings.ToUpper(name))
			cfg.SampleRates[device] = viper.GetFloat64("sample-rates." + name)
		}
	}

	return cfg.Validate()
}

// loadPeriods reads the period index used by the batch subcommands.
func loadPeriods() ([]analysis.Period, error) {
	return store.LoadPeriods(periodsFile)
}
