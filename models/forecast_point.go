package models

import "time"

// ForecastPoint is one predicted week with its two-sided uncertainty bounds.
// Lower <= Predicted <= Upper holds for every point; predicted values are
// continuous even though historical counts are integral.
type ForecastPoint struct {
	WeekStart time.Time `json:"week_start"`
	Predicted float64   `json:"predicted"`
	Lower     float64   `json:"lower"`
	Upper     float64   `json:"upper"`
}
