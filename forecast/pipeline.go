package forecast

import (
	"fmt"
	"time"

	"mf-server/models"
)

// Config parameterizes one pipeline run. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// WeekStart is the weekday every week boundary falls on, shared by
	// aggregation, gap-filling and prediction.
	WeekStart time.Weekday
	// HarmonicOrder is the number of sine/cosine pairs approximating the
	// yearly pattern.
	HarmonicOrder int
	// SeasonalPeriodWeeks is the yearly seasonal period. The mean number of
	// weeks per year, not a naive 52, so the phase does not drift across
	// multi-year data.
	SeasonalPeriodWeeks float64
	// IntervalWidth is the two-sided coverage of the uncertainty bounds,
	// in (0, 1).
	IntervalWidth float64
	// CumulativeAnchor is the date running totals accumulate from.
	CumulativeAnchor time.Time
	// HorizonEnd is the last date predictions are generated for.
	HorizonEnd time.Time
}

// DefaultConfig returns the configuration the original model ran with:
// Sunday-start weeks, 10 harmonics over a 52.1775-week period, 80% intervals,
// accumulating over the given calendar year.
func DefaultConfig(year int) Config {
	return Config{
		WeekStart:           time.Sunday,
		HarmonicOrder:       10,
		SeasonalPeriodWeeks: 52.1775,
		IntervalWidth:       0.80,
		CumulativeAnchor:    time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		HorizonEnd:          time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Validate rejects a configuration before any computation begins.
func (c Config) Validate() error {
	if c.HarmonicOrder <= 0 {
		return fmt.Errorf("%w: harmonic order must be positive, got %d", ErrInvalidConfig, c.HarmonicOrder)
	}
	if c.SeasonalPeriodWeeks <= 0 {
		return fmt.Errorf("%w: seasonal period must be positive, got %f", ErrInvalidConfig, c.SeasonalPeriodWeeks)
	}
	if c.IntervalWidth <= 0 || c.IntervalWidth >= 1 {
		return fmt.Errorf("%w: interval width must be in (0, 1), got %f", ErrInvalidConfig, c.IntervalWidth)
	}
	if c.CumulativeAnchor.After(c.HorizonEnd) {
		return fmt.Errorf("%w: cumulative anchor %s is after horizon end %s",
			ErrInvalidConfig, c.CumulativeAnchor.Format("2006-01-02"), c.HorizonEnd.Format("2006-01-02"))
	}
	return nil
}

// Result is the output of one pipeline run.
type Result struct {
	// History is the aggregated, gap-filled actual series.
	History models.WeeklySeries `json:"history"`
	// Forecast holds the predicted weeks with uncertainty bounds.
	Forecast []models.ForecastPoint `json:"forecast"`
	// Combined is the stitched actual+forecast series with running
	// cumulative values from the anchor date.
	Combined []models.CombinedPoint `json:"combined"`
	// HeadlineTotal is the cumulative total through the horizon end.
	HeadlineTotal float64 `json:"headline_total"`
}

// Run executes the whole pipeline: aggregate raw records into weeks, fill
// leading gaps back to the anchor, fit the seasonal model, predict through
// the horizon, and combine. It is a pure function of its inputs: no I/O, no
// retained state, no randomness, so identical inputs yield identical results
// and concurrent runs need no coordination.
func Run(records []models.CaseRecord, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	weekly := AggregateWeekly(records, cfg.WeekStart)
	weekly = FillLeadingGaps(weekly, cfg.CumulativeAnchor, cfg.WeekStart)

	model, err := Fit(weekly, cfg)
	if err != nil {
		return nil, err
	}
	predicted := model.Predict(cfg.HorizonEnd)

	combined, total := Combine(weekly, predicted, cfg.CumulativeAnchor, cfg.HorizonEnd)
	return &Result{
		History:       weekly,
		Forecast:      predicted,
		Combined:      combined,
		HeadlineTotal: total,
	}, nil
}
