package indicator

import (
	"fmt"

	"StockLens/internal/model"
)

// RSI computes the Relative Strength Index over the given window using
// Wilder's smoothing. The first value appears at index window (one full
// window of day-over-day differences); NaN before that. When the average
// loss over the window is zero the RSI is defined as 100, avoiding the
// division by zero.
func RSI(view model.SeriesView, window int) (model.IndicatorSeries, error) {
	name := fmt.Sprintf("RSI_%d", window)
	if window <= 0 {
		return model.IndicatorSeries{Name: name}, fmt.Errorf("%s: window must be positive", name)
	}
	if view.Len() < window+1 {
		return model.IndicatorSeries{Name: name}, &model.InsufficientDataError{Op: name, Need: window + 1, Have: view.Len()}
	}

	closes := view.Closes()
	values := nanSlice(len(closes))

	// Seed: plain averages over the first `window` differences.
	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	values[window] = rsiFrom(avgGain, avgLoss)

	// Wilder smoothing for the rest.
	p := float64(window)
	for i := window + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		values[i] = rsiFrom(avgGain, avgLoss)
	}

	return model.IndicatorSeries{Name: name, Values: values}, nil
}

func rsiFrom(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
