// Package trend extrapolates a user's AQI history a few days forward. The
// model is purely illustrative: a least-squares fit over three calendar
// features, retrained from scratch on every call, with no validation split
// and no confidence interval.
package trend

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"airqual/internal/model"
)

// MinObservations is the minimum number of historical rows required before a
// prediction is attempted.
const MinObservations = 5

// DefaultDays is the number of future days predicted when the caller does not
// ask for a specific horizon.
const DefaultDays = 3

// Point is one historical observation.
type Point struct {
	Timestamp time.Time
	AQI       float64
}

// Prediction is one predicted future day.
type Prediction struct {
	Date string  `json:"date"` // YYYY-MM-DD
	AQI  float64 `json:"aqi"`
}

// Predict fits a linear model on calendar features (day-of-week, month,
// day-of-month) and extrapolates the given number of days forward from the
// latest observed timestamp. Returns model.ErrInsufficientData when fewer
// than MinObservations points exist. Predictions are clamped to be
// non-negative and rounded to one decimal.
func Predict(points []Point, days int) ([]Prediction, error) {
	if len(points) < MinObservations {
		return nil, model.ErrInsufficientData
	}
	if days <= 0 {
		days = DefaultDays
	}

	n := len(points)
	x := mat.NewDense(n, 4, nil)
	y := mat.NewVecDense(n, nil)
	last := points[0].Timestamp
	for i, p := range points {
		x.SetRow(i, featureRow(p.Timestamp))
		y.SetVec(i, p.AQI)
		if p.Timestamp.After(last) {
			last = p.Timestamp
		}
	}

	beta, ok := solveLeastSquares(x, y)

	predictions := make([]Prediction, 0, days)
	for i := 1; i <= days; i++ {
		date := last.AddDate(0, 0, i)

		var value float64
		if ok {
			row := featureRow(date)
			for j, b := range beta {
				value += b * row[j]
			}
		} else {
			// Degenerate design matrix (e.g. all rows on the same day):
			// fall back to the historical mean.
			value = mean(points)
		}

		value = math.Round(math.Max(0, value)*10) / 10
		predictions = append(predictions, Prediction{
			Date: date.Format("2006-01-02"),
			AQI:  value,
		})
	}
	return predictions, nil
}

func featureRow(t time.Time) []float64 {
	return []float64{
		1, // intercept
		float64(t.Weekday()),
		float64(t.Month()),
		float64(t.Day()),
	}
}

func solveLeastSquares(x *mat.Dense, y *mat.VecDense) ([]float64, bool) {
	var qr mat.QR
	qr.Factorize(x)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, false
	}

	out := make([]float64, beta.Len())
	for i := range out {
		v := beta.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func mean(points []Point) float64 {
	var sum float64
	for _, p := range points {
		sum += p.AQI
	}
	return sum / float64(len(points))
}
