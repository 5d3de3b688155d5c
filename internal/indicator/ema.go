package indicator

import (
	"fmt"

	"StockLens/internal/model"
)

// EMA computes the exponential moving average of closes with smoothing
// factor 2/(window+1). The value at index window-1 is seeded with the SMA
// over the first window closes; NaN before that.
func EMA(view model.SeriesView, window int) (model.IndicatorSeries, error) {
	name := fmt.Sprintf("EMA_%d", window)
	if window <= 0 {
		return model.IndicatorSeries{Name: name}, fmt.Errorf("%s: window must be positive", name)
	}
	if view.Len() < window {
		return model.IndicatorSeries{Name: name}, &model.InsufficientDataError{Op: name, Need: window, Have: view.Len()}
	}

	values := emaValues(view.Closes(), window)
	return model.IndicatorSeries{Name: name, Values: values}, nil
}

// emaValues runs the EMA recurrence over a raw value slice. The caller
// guarantees len(vals) >= window.
func emaValues(vals []float64, window int) []float64 {
	out := nanSlice(len(vals))
	alpha := 2.0 / float64(window+1)

	seed := 0.0
	for i := 0; i < window; i++ {
		seed += vals[i]
	}
	out[window-1] = seed / float64(window)

	for i := window; i < len(vals); i++ {
		out[i] = alpha*vals[i] + (1-alpha)*out[i-1]
	}
	return out
}
