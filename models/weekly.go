package models

import "time"

// Observation is a single coerced record: a calendar day and a non-negative
// case count.
type Observation struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// WeeklyPoint holds the summed case count for the calendar week starting at
// WeekStart (always midnight UTC on the configured week-start weekday).
type WeeklyPoint struct {
	WeekStart time.Time `json:"week_start"`
	Value     float64   `json:"value"`
}

// WeeklySeries is a sequence of WeeklyPoints ordered by WeekStart ascending,
// with strictly increasing and unique week starts. Pipeline stages never
// mutate a series in place; each stage returns a new one.
type WeeklySeries []WeeklyPoint

// First returns the earliest point of the series. Only valid when the series
// is non-empty.
func (s WeeklySeries) First() WeeklyPoint {
	return s[0]
}

// Last returns the latest point of the series. Only valid when the series is
// non-empty.
func (s WeeklySeries) Last() WeeklyPoint {
	return s[len(s)-1]
}
