package forecast

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"mf-server/models"
)

// Model is a fitted trend-plus-seasonality model: ordinary least squares over
// an intercept, a linear trend, and a bounded-order Fourier expansion of the
// yearly cycle. Weekly sub-seasonality is deliberately absent since the
// series carries one point per week.
type Model struct {
	origin    time.Time // week the trend axis is measured from
	lastWeek  time.Time
	period    float64 // seasonal period, in weeks
	order     int     // effective harmonic order after any reduction
	beta      *mat.VecDense
	xtx       *mat.Dense // X'X kept for prediction-variance leverage
	sigma     float64    // residual standard error
	quantile  float64    // two-sided normal quantile for the interval
	flat      bool       // zero-variance history: forecast is a constant
	flatValue float64
}

// Fit estimates the model from a gap-filled historical series. The requested
// harmonic order is reduced automatically when the series is too short to
// support it (the full order needs at least 2 + 2*order points). A series
// with zero variance is special-cased to a flat forecast with zero-width
// intervals rather than surfaced as an error.
func Fit(series models.WeeklySeries, cfg Config) (*Model, error) {
	n := len(series)
	if n < 2 {
		return nil, fmt.Errorf("fit on %d week(s) of history: %w", n, ErrInsufficientData)
	}

	m := &Model{
		origin:   series.First().WeekStart,
		lastWeek: series.Last().WeekStart,
		period:   cfg.SeasonalPeriodWeeks,
		quantile: distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + cfg.IntervalWidth/2),
	}

	if constant, value := isConstant(series); constant {
		m.flat = true
		m.flatValue = value
		return m, nil
	}

	y := mat.NewVecDense(n, nil)
	for i, p := range series {
		y.SetVec(i, p.Value)
	}

	// Start from the highest order the series length allows and back off if
	// the solve is rank deficient.
	order := cfg.HarmonicOrder
	if maxOrder := (n - 2) / 2; order > maxOrder {
		order = maxOrder
	}
	for ; order >= 0; order-- {
		if err := m.solve(series, y, order); err == nil {
			m.order = order
			return m, nil
		}
	}
	return nil, fmt.Errorf("fit on %d week(s) of history: %w", n, ErrInsufficientData)
}

func (m *Model) solve(series models.WeeklySeries, y *mat.VecDense, order int) error {
	n := len(series)
	p := 2 + 2*order
	x := mat.NewDense(n, p, nil)
	for i, pt := range series {
		x.SetRow(i, m.features(pt.WeekStart, order))
	}

	var qr mat.QR
	qr.Factorize(x)
	beta := mat.NewVecDense(p, nil)
	if err := qr.SolveVecTo(beta, false, y); err != nil {
		return err
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	// Residual standard error; zero when the fit is saturated.
	var sse float64
	fitted := mat.NewVecDense(n, nil)
	fitted.MulVec(x, beta)
	for i := 0; i < n; i++ {
		r := y.AtVec(i) - fitted.AtVec(i)
		sse += r * r
	}
	sigma := 0.0
	if n > p {
		sigma = math.Sqrt(sse / float64(n-p))
	}

	m.beta = beta
	m.xtx = &xtx
	m.sigma = sigma
	return nil
}

// features builds one design-matrix row for the given week.
func (m *Model) features(week time.Time, order int) []float64 {
	t := m.weeksSinceOrigin(week)
	row := make([]float64, 2+2*order)
	row[0] = 1
	row[1] = t
	for k := 1; k <= order; k++ {
		theta := 2 * math.Pi * float64(k) * t / m.period
		row[2*k] = math.Sin(theta)
		row[2*k+1] = math.Cos(theta)
	}
	return row
}

func (m *Model) weeksSinceOrigin(week time.Time) float64 {
	return week.Sub(m.origin).Hours() / (24 * 7)
}

// Predict produces one ForecastPoint per week from the week immediately after
// the last historical point through horizonEnd inclusive. Intervals widen as
// prediction moves away from the observed range (prediction-variance
// leverage), and everything is floored at zero: negative case counts are
// meaningless and the floor keeps downstream cumulative totals monotone.
func (m *Model) Predict(horizonEnd time.Time) []models.ForecastPoint {
	var out []models.ForecastPoint
	for week := m.lastWeek.AddDate(0, 0, 7); !week.After(horizonEnd); week = week.AddDate(0, 0, 7) {
		out = append(out, m.predictWeek(week))
	}
	return out
}

func (m *Model) predictWeek(week time.Time) models.ForecastPoint {
	if m.flat {
		v := math.Max(0, m.flatValue)
		return models.ForecastPoint{WeekStart: week, Predicted: v, Lower: v, Upper: v}
	}

	row := m.features(week, m.order)
	x := mat.NewVecDense(len(row), row)
	pred := mat.Dot(m.beta, x)

	leverage := 0.0
	var w mat.VecDense
	if err := w.SolveVec(m.xtx, x); err == nil {
		leverage = mat.Dot(x, &w)
	}
	width := m.quantile * m.sigma * math.Sqrt(1+leverage)

	return models.ForecastPoint{
		WeekStart: week,
		Predicted: math.Max(0, pred),
		Lower:     math.Max(0, pred-width),
		Upper:     math.Max(0, pred+width),
	}
}

func isConstant(series models.WeeklySeries) (bool, float64) {
	first := series.First().Value
	for _, p := range series[1:] {
		if p.Value != first {
			return false, 0
		}
	}
	return true, first
}
