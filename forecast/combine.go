package forecast

import (
	"sort"
	"time"

	"mf-server/models"
)

// Combine unions the historical series (as Actual points) with the forecast
// (as Forecast points) into one chronologically ordered sequence, then walks
// it accumulating a running total from the anchor date forward. Points before
// the anchor keep a nil cumulative. Should a week ever appear in both inputs,
// the Actual point wins and the Forecast one is dropped.
//
// The returned total is the cumulative value of the last point on or before
// horizonEnd: the single "cases through year-end" figure consumers read. It
// is zero when no point falls in the anchored window.
func Combine(history models.WeeklySeries, predicted []models.ForecastPoint, anchor, horizonEnd time.Time) ([]models.CombinedPoint, float64) {
	combined := make([]models.CombinedPoint, 0, len(history)+len(predicted))
	seen := make(map[time.Time]struct{}, len(history))

	for _, p := range history {
		combined = append(combined, models.CombinedPoint{
			WeekStart:  p.WeekStart,
			Value:      p.Value,
			Provenance: models.ProvenanceActual,
		})
		seen[p.WeekStart] = struct{}{}
	}
	for _, p := range predicted {
		if _, dup := seen[p.WeekStart]; dup {
			continue
		}
		combined = append(combined, models.CombinedPoint{
			WeekStart:  p.WeekStart,
			Value:      p.Predicted,
			Provenance: models.ProvenanceForecast,
		})
	}
	sort.Slice(combined, func(i, j int) bool {
		return combined[i].WeekStart.Before(combined[j].WeekStart)
	})

	var running, total float64
	for i := range combined {
		if combined[i].WeekStart.Before(anchor) {
			continue
		}
		running += combined[i].Value
		cum := running
		combined[i].Cumulative = &cum
		if !combined[i].WeekStart.After(horizonEnd) {
			total = running
		}
	}
	return combined, total
}
