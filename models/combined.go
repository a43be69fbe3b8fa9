package models

import "time"

// Provenance tags a combined point as observed or model-predicted.
type Provenance string

const (
	ProvenanceActual   Provenance = "Actual"
	ProvenanceForecast Provenance = "Forecast"
)

// CombinedPoint is one week in the stitched actual+forecast series.
// Cumulative is nil for points before the cumulative anchor date: "not
// computed" must stay distinguishable from a cumulative of 0.
type CombinedPoint struct {
	WeekStart  time.Time  `json:"week_start"`
	Value      float64    `json:"value"`
	Provenance Provenance `json:"provenance"`
	Cumulative *float64   `json:"cumulative,omitempty"`
}
