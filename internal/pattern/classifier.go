// Package pattern labels trend and consolidation behavior in a price series.
//
// The classifier is deterministic and rule-based: a rolling percentage price
// change decides trend direction, rolling volatility decides consolidation,
// and the previous day's label carries forward when neither rule fires.
package pattern

import (
	"math"

	"StockLens/internal/model"
)

// Thresholds control trend/consolidation classification. The exact cutoffs
// are a documented choice, not an industry standard: defaults are a 10-day
// lookback, +/-5% rolling change for a trend, and under 1% daily-return
// standard deviation for consolidation.
type Thresholds struct {
	Lookback       int     // trading days in the rolling windows
	Uptrend        float64 // min rolling fractional change for an uptrend
	Downtrend      float64 // min rolling fractional decline (positive value)
	FlatVolatility float64 // max daily-return stddev for consolidation
}

// DefaultThresholds returns the documented default cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Lookback:       10,
		Uptrend:        0.05,
		Downtrend:      0.05,
		FlatVolatility: 0.01,
	}
}

// Classify partitions the series' classifiable date range into contiguous,
// non-overlapping segments. Dates before the lookback window fills carry no
// label at all and appear in no segment; the first classifiable date
// defaults to Consolidation when it meets neither trend threshold.
func Classify(view model.SeriesView, th Thresholds) ([]model.PatternSegment, error) {
	if th.Lookback <= 0 {
		th = DefaultThresholds()
	}
	minLen := th.Lookback + 1
	if view.Len() < minLen {
		return nil, &model.InsufficientDataError{Op: "pattern", Need: minLen, Have: view.Len()}
	}

	closes := view.Closes()
	dates := view.Dates()
	n := len(closes)

	// Daily returns; returns[i] is the change from bar i-1 to bar i.
	returns := make([]float64, n)
	for i := 1; i < n; i++ {
		returns[i] = closes[i]/closes[i-1] - 1
	}

	var segments []model.PatternSegment
	var prev model.TrendLabel

	for i := th.Lookback; i < n; i++ {
		change := (closes[i] - closes[i-th.Lookback]) / closes[i-th.Lookback]
		vol := sampleStdDev(returns[i-th.Lookback+1 : i+1])

		var label model.TrendLabel
		switch {
		case change >= th.Uptrend:
			label = model.TrendUptrend
		case change <= -th.Downtrend:
			label = model.TrendDowntrend
		case vol < th.FlatVolatility:
			label = model.TrendConsolidation
		case prev != "":
			label = prev
		default:
			label = model.TrendConsolidation
		}

		if len(segments) > 0 && segments[len(segments)-1].Label == label {
			segments[len(segments)-1].End = dates[i]
		} else {
			segments = append(segments, model.PatternSegment{
				Start: dates[i],
				End:   dates[i],
				Label: label,
			})
		}
		prev = label
	}

	return segments, nil
}

// sampleStdDev returns the sample standard deviation (n-1 denominator) of vals.
func sampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	squares := 0.0
	for _, v := range vals {
		d := v - mean
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(vals)-1))
}
