package forecast

import (
	"errors"
	"testing"
	"time"

	"mf-server/models"
)

func testConfig() Config {
	cfg := DefaultConfig(2025)
	return cfg
}

func makeSeries(start time.Time, values ...float64) models.WeeklySeries {
	series := make(models.WeeklySeries, len(values))
	for i, v := range values {
		series[i] = models.WeeklyPoint{WeekStart: start.AddDate(0, 0, 7*i), Value: v}
	}
	return series
}

func TestFit_InsufficientData(t *testing.T) {
	cases := []struct {
		name   string
		series models.WeeklySeries
	}{
		{"empty", models.WeeklySeries{}},
		{"single week", makeSeries(week(2025, 1, 5), 10)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Fit(c.series, testConfig())
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("Expected ErrInsufficientData, got %v", err)
			}
		})
	}
}

func TestFit_ZeroVarianceGivesFlatForecast(t *testing.T) {
	series := makeSeries(week(2025, 1, 5), 7, 7, 7, 7)

	model, err := Fit(series, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	points := model.Predict(week(2025, 2, 16))
	if len(points) != 3 {
		t.Fatalf("Expected 3 forecast points, got %d", len(points))
	}
	for _, p := range points {
		if p.Predicted != 7 || p.Lower != 7 || p.Upper != 7 {
			t.Errorf("Expected flat zero-width forecast of 7, got %+v", p)
		}
	}
}

func TestFit_ReducesHarmonicOrderOnShortSeries(t *testing.T) {
	// Five points can support at most one harmonic pair; the requested order
	// of 10 must be reduced, not rejected.
	series := makeSeries(week(2025, 1, 5), 1, 4, 2, 8, 5)

	model, err := Fit(series, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if model.order > 1 {
		t.Errorf("Expected harmonic order <= 1 for 5 points, got %d", model.order)
	}
}

func TestPredict_WindowAndBoundsOrdering(t *testing.T) {
	series := makeSeries(week(2025, 1, 5), 5, 3, 8, 2, 9, 4, 7, 3)

	model, err := Fit(series, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	horizon := week(2025, 4, 27)
	points := model.Predict(horizon)
	if len(points) == 0 {
		t.Fatal("Expected forecast points, got none")
	}

	// The window runs from the week after the last historical point through
	// the horizon, at weekly cadence.
	wantFirst := week(2025, 3, 2)
	if !points[0].WeekStart.Equal(wantFirst) {
		t.Errorf("Expected first forecast week %v, got %v", wantFirst, points[0].WeekStart)
	}
	last := points[len(points)-1].WeekStart
	if last.After(horizon) {
		t.Errorf("Forecast week %v extends past horizon %v", last, horizon)
	}
	for i, p := range points {
		if p.Lower > p.Predicted || p.Predicted > p.Upper {
			t.Errorf("Point %d: bounds out of order: lower=%f predicted=%f upper=%f",
				i, p.Lower, p.Predicted, p.Upper)
		}
		if p.Lower < 0 {
			t.Errorf("Point %d: negative lower bound %f", i, p.Lower)
		}
		if i > 0 {
			gap := p.WeekStart.Sub(points[i-1].WeekStart)
			if gap != 7*24*time.Hour {
				t.Errorf("Point %d: cadence %v, want one week", i, gap)
			}
		}
	}
}

func TestPredict_UncertaintyGrowsWithHorizon(t *testing.T) {
	// Noisy series so the fit has a real residual error.
	series := makeSeries(week(2025, 1, 5), 5, 3, 8, 2, 9, 4, 7, 3, 8, 6, 2, 9)
	cfg := testConfig()
	cfg.HarmonicOrder = 1

	model, err := Fit(series, cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	points := model.Predict(week(2025, 8, 31))
	if len(points) < 2 {
		t.Fatalf("Expected several forecast points, got %d", len(points))
	}
	firstWidth := points[0].Upper - points[0].Lower
	lastWidth := points[len(points)-1].Upper - points[len(points)-1].Lower
	if lastWidth < firstWidth {
		t.Errorf("Interval width shrank across the horizon: first=%f last=%f", firstWidth, lastWidth)
	}
}

func TestPredict_EmptyWindow(t *testing.T) {
	series := makeSeries(week(2025, 1, 5), 1, 2, 3)

	model, err := Fit(series, testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Horizon before the first future week: nothing to predict.
	points := model.Predict(week(2025, 1, 20))
	if len(points) != 0 {
		t.Errorf("Expected no forecast points, got %d", len(points))
	}
}
