package indicator

import (
	"fmt"
	"math"

	"StockLens/internal/model"
)

// Bollinger computes Bollinger Bands: a middle band (SMA over the window)
// with upper and lower bands offset by stddev population standard
// deviations of the closes in the same window.
func Bollinger(view model.SeriesView, window int, stddev float64) (upper, middle, lower model.IndicatorSeries, err error) {
	upper = model.IndicatorSeries{Name: model.IndicatorBBUpper}
	middle = model.IndicatorSeries{Name: model.IndicatorBBMiddle}
	lower = model.IndicatorSeries{Name: model.IndicatorBBLower}

	if window <= 0 || stddev <= 0 {
		err = fmt.Errorf("bollinger: invalid parameters window=%d stddev=%.2f", window, stddev)
		return
	}
	if view.Len() < window {
		err = &model.InsufficientDataError{Op: model.IndicatorBBMiddle, Need: window, Have: view.Len()}
		return
	}

	closes := view.Closes()
	n := len(closes)
	upper.Values = nanSlice(n)
	middle.Values = nanSlice(n)
	lower.Values = nanSlice(n)

	for i := window - 1; i < n; i++ {
		subset := closes[i-window+1 : i+1]

		sum := 0.0
		for _, c := range subset {
			sum += c
		}
		mean := sum / float64(window)

		squares := 0.0
		for _, c := range subset {
			d := c - mean
			squares += d * d
		}
		sd := math.Sqrt(squares / float64(window))

		middle.Values[i] = mean
		upper.Values[i] = mean + stddev*sd
		lower.Values[i] = mean - stddev*sd
	}
	return
}
