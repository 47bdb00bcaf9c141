package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/lgoerner/micromet/analysis"
)

const (
	wideValue     = "Wide"
	moderateValue = "Moderate"
	tightValue    = "Tight"
)

var (
	wideColor     = color.New(color.FgRed, color.Bold)
	moderateColor = color.New(color.FgYellow)
	tightColor    = color.New(color.FgGreen)
)

// getPlainLabel classifies the deviation spread of an averaging window by
// its Std metric.
// - Wide (>=1)
// - Moderate (>=0.1)
// - Tight (<0.1)
func getPlainLabel(std float64) string {
	switch {
	case std >= 1:
		return wideValue
	case std >= 0.1:
		return moderateValue
	default:
		return tightValue
	}
}

// getColorLabel colors the spread label for console output.
func getColorLabel(std float64) string {
	text := getPlainLabel(std)

	switch text {
	case wideValue:
		return wideColor.Sprint(text)
	case moderateValue:
		return moderateColor.Sprint(text)
	default:
		return tightColor.Sprint(text)
	}
}

// printErrorMetrics renders one evaluation as a human-readable table.
func printErrorMetrics(period analysis.Period, device analysis.Device, variable analysis.Variable, metrics []analysis.ErrorMetrics) error {
	fmt.Printf("%s %s %s (reference %d min)\n", period.ID, device, variable, cfg.ReferenceWindowMin)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Window [min]", "Mean", "Std", "Lower Range", "Upper Range", "Spread"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range metrics {
		data = append(data, []string{
			strconv.Itoa(m.WindowMin),
			fmt.Sprintf("%.2f", m.Mean),
			fmt.Sprintf("%.2f", m.Std),
			fmt.Sprintf("%.2f", m.LowerRange),
			fmt.Sprintf("%.2f", m.UpperRange),
			getColorLabel(m.Std),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
