package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mf-server/forecast"
	"mf-server/models"
)

const DATE_LABEL_FORMAT = "2006-01-02"

// PlotForecast generates an HTML file rendering the combined weekly series:
// actual cases, forecasted cases with their uncertainty band, and the running
// cumulative total from the anchor date.
func PlotForecast(result *forecast.Result, outputPath string) error {
	// One x-axis over every combined week; series that don't cover a week
	// carry a nil value so the chart shows a gap instead of a zero.
	dates := make([]string, len(result.Combined))
	actual := make([]opts.LineData, len(result.Combined))
	predicted := make([]opts.LineData, len(result.Combined))
	upper := make([]opts.LineData, len(result.Combined))
	lower := make([]opts.LineData, len(result.Combined))
	cumulative := make([]opts.LineData, len(result.Combined))

	bounds := make(map[string]models.ForecastPoint, len(result.Forecast))
	for _, p := range result.Forecast {
		bounds[p.WeekStart.Format(DATE_LABEL_FORMAT)] = p
	}

	for i, p := range result.Combined {
		label := p.WeekStart.Format(DATE_LABEL_FORMAT)
		dates[i] = label

		if p.Provenance == models.ProvenanceActual {
			actual[i] = opts.LineData{Value: p.Value}
		} else {
			predicted[i] = opts.LineData{Value: p.Value}
			if fp, ok := bounds[label]; ok {
				upper[i] = opts.LineData{Value: fp.Upper}
				lower[i] = opts.LineData{Value: fp.Lower}
			}
		}
		if p.Cumulative != nil {
			cumulative[i] = opts.LineData{Value: *p.Cumulative}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Measles Forecast",
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Weekly Measles Forecast with Cumulative Totals",
		}),
	)

	line.SetXAxis(dates).
		AddSeries("Actual Weekly Cases", actual).
		AddSeries("Forecasted Weekly Cases", predicted).
		AddSeries("Forecast Upper Bound", upper).
		AddSeries("Forecast Lower Bound", lower).
		AddSeries("Cumulative Cases", cumulative)

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", outputPath, err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	log.Printf("[Plotter] Forecast chart generated: %s", outputPath)
	return nil
}
