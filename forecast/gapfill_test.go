package forecast

import (
	"testing"
	"time"

	"mf-server/models"
)

func week(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFillLeadingGaps_PrependsZeroWeeks(t *testing.T) {
	series := models.WeeklySeries{
		{WeekStart: week(2025, 2, 2), Value: 10},
	}

	filled := FillLeadingGaps(series, week(2025, 1, 5), time.Sunday)

	// Anchor is Sunday 2025-01-05, first real data 2025-02-02: exactly four
	// synthetic zero weeks are expected.
	wantWeeks := []time.Time{
		week(2025, 1, 5), week(2025, 1, 12), week(2025, 1, 19), week(2025, 1, 26),
	}
	if len(filled) != len(wantWeeks)+1 {
		t.Fatalf("Expected %d points, got %d", len(wantWeeks)+1, len(filled))
	}
	for i, want := range wantWeeks {
		if !filled[i].WeekStart.Equal(want) {
			t.Errorf("Synthetic week %d: expected %v, got %v", i, want, filled[i].WeekStart)
		}
		if filled[i].Value != 0 {
			t.Errorf("Synthetic week %d: expected value 0, got %f", i, filled[i].Value)
		}
	}
	if !filled[len(filled)-1].WeekStart.Equal(week(2025, 2, 2)) {
		t.Errorf("Real point lost: last week is %v", filled[len(filled)-1].WeekStart)
	}
}

func TestFillLeadingGaps_MidWeekAnchor(t *testing.T) {
	series := models.WeeklySeries{
		{WeekStart: week(2025, 1, 26), Value: 3},
	}

	// Wednesday 2025-01-01: filling starts at the first Sunday on/after it.
	filled := FillLeadingGaps(series, week(2025, 1, 1), time.Sunday)

	if len(filled) != 4 {
		t.Fatalf("Expected 4 points, got %d", len(filled))
	}
	if !filled[0].WeekStart.Equal(week(2025, 1, 5)) {
		t.Errorf("Expected first synthetic week 2025-01-05, got %v", filled[0].WeekStart)
	}
}

func TestFillLeadingGaps_NoOpCases(t *testing.T) {
	empty := models.WeeklySeries{}
	if got := FillLeadingGaps(empty, week(2025, 1, 5), time.Sunday); len(got) != 0 {
		t.Errorf("Expected empty series to pass through, got %d points", len(got))
	}

	// Earliest point already on the anchor.
	series := models.WeeklySeries{
		{WeekStart: week(2025, 1, 5), Value: 2},
		{WeekStart: week(2025, 1, 12), Value: 4},
	}
	got := FillLeadingGaps(series, week(2025, 1, 5), time.Sunday)
	if len(got) != 2 {
		t.Fatalf("Expected no-op, got %d points", len(got))
	}

	// Anchor after the first real data point.
	got = FillLeadingGaps(series, week(2025, 3, 1), time.Sunday)
	if len(got) != 2 {
		t.Fatalf("Expected no-op for late anchor, got %d points", len(got))
	}
	if !got[0].WeekStart.Equal(week(2025, 1, 5)) {
		t.Errorf("Series changed by a no-op fill: first week %v", got[0].WeekStart)
	}
}

func TestFillLeadingGaps_PreservesOrdering(t *testing.T) {
	series := models.WeeklySeries{
		{WeekStart: week(2025, 3, 2), Value: 1},
		{WeekStart: week(2025, 3, 9), Value: 2},
	}

	filled := FillLeadingGaps(series, week(2025, 1, 5), time.Sunday)

	for i := 1; i < len(filled); i++ {
		if !filled[i-1].WeekStart.Before(filled[i].WeekStart) {
			t.Errorf("Week starts not strictly increasing at index %d", i)
		}
	}
}
