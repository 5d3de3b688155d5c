package indicator

import (
	"fmt"

	"StockLens/internal/model"
)

// SMA computes the simple moving average of closes over the given window.
// Value at index i is the mean of closes[i-window+1 .. i]; NaN before index
// window-1. No forward fill, no extrapolation.
func SMA(view model.SeriesView, window int) (model.IndicatorSeries, error) {
	name := fmt.Sprintf("SMA_%d", window)
	if window <= 0 {
		return model.IndicatorSeries{Name: name}, fmt.Errorf("%s: window must be positive", name)
	}
	if view.Len() < window {
		return model.IndicatorSeries{Name: name}, &model.InsufficientDataError{Op: name, Need: window, Have: view.Len()}
	}

	closes := view.Closes()
	values := nanSlice(len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			values[i] = sum / float64(window)
		}
	}
	return model.IndicatorSeries{Name: name, Values: values}, nil
}
