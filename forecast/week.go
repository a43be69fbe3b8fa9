package forecast

import "time"

// WeekStartOf maps a calendar day to the start of the week containing it,
// where weeks begin on the given weekday. The result is midnight UTC.
func WeekStartOf(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	back := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// nextBoundaryOnOrAfter returns the first week boundary that is on or after t.
func nextBoundaryOnOrAfter(t time.Time, weekStart time.Weekday) time.Time {
	start := WeekStartOf(t, weekStart)
	if start.Before(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)) {
		return start.AddDate(0, 0, 7)
	}
	return start
}
