package forecast

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"mf-server/models"
)

// dateLayouts are the formats upstream rows have shown up in: ISO dates from
// the CSV export and US-style dates from the scraped CDC table.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// AggregateWeekly collapses raw case records into one WeeklyPoint per
// calendar week, summing the counts of all records whose date falls in that
// week. Rows with an unparseable date or count, or a negative count, are
// dropped silently: upstream data is dirty and a bad row must not poison the
// whole series. An empty input yields an empty series.
func AggregateWeekly(records []models.CaseRecord, weekStart time.Weekday) models.WeeklySeries {
	totals := make(map[time.Time]float64)
	for _, rec := range records {
		obs, ok := coerceRecord(rec)
		if !ok {
			continue
		}
		week := WeekStartOf(obs.Date, weekStart)
		totals[week] += float64(obs.Count)
	}

	series := make(models.WeeklySeries, 0, len(totals))
	for week, value := range totals {
		series = append(series, models.WeeklyPoint{WeekStart: week, Value: value})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].WeekStart.Before(series[j].WeekStart)
	})
	return series
}

// coerceRecord parses a raw row into an Observation. The second return is
// false for malformed rows.
func coerceRecord(rec models.CaseRecord) (models.Observation, bool) {
	date, ok := parseDate(rec.WeekStart)
	if !ok {
		return models.Observation{}, false
	}
	count, ok := parseCount(rec.Cases)
	if !ok {
		return models.Observation{}, false
	}
	return models.Observation{Date: date, Count: count}, true
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseCount(raw string) (int, bool) {
	// CDC tables render counts with thousands separators.
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
