package forecast

import (
	"time"

	"mf-server/models"
)

// FillLeadingGaps extends a series backward to the anchor date, prepending
// zero-valued weeks for every week boundary from the anchor up to (but not
// including) the series' earliest real week. This guarantees the cumulative
// computation downstream has a value at every week from the anchor onward
// even when real data starts later in the year. If the series is empty or
// already reaches the anchor, the input is returned unchanged.
func FillLeadingGaps(series models.WeeklySeries, anchor time.Time, weekStart time.Weekday) models.WeeklySeries {
	if len(series) == 0 {
		return series
	}
	earliest := series.First().WeekStart
	boundary := nextBoundaryOnOrAfter(anchor, weekStart)
	if !boundary.Before(earliest) {
		return series
	}

	var synthetic models.WeeklySeries
	for ; boundary.Before(earliest); boundary = boundary.AddDate(0, 0, 7) {
		synthetic = append(synthetic, models.WeeklyPoint{WeekStart: boundary, Value: 0})
	}

	filled := make(models.WeeklySeries, 0, len(synthetic)+len(series))
	filled = append(filled, synthetic...)
	filled = append(filled, series...)
	return filled
}
