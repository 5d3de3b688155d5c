// Package summary computes per-symbol scalar statistics as of the latest
// available bar. Unlike the indicator and pattern computations, the trailing
// windows here degrade to the available history instead of failing: the
// Partial flags on the result report that degradation.
package summary

import (
	"math"

	"StockLens/internal/indicator"
	"StockLens/internal/model"
)

// Windows configures the trailing windows used for summary statistics, in
// trading days.
type Windows struct {
	Range52w   int // 52-week high/low lookback, 252 trading days
	Volume     int // average-volume lookback
	Volatility int // daily-return stddev lookback
}

// DefaultWindows returns the documented defaults: 252 trading days for the
// 52-week range (trading-day convention, not calendar), 30 for volume and
// volatility.
func DefaultWindows() Windows {
	return Windows{Range52w: 252, Volume: 30, Volatility: 30}
}

// Build computes the summary statistics for the series. The four core
// figures (current price, 52-week range, average volume, volatility) are
// independent pure computations over the same view. Fails only when the
// series is empty.
func Build(view model.SeriesView, w Windows) (model.StockSummary, error) {
	if view.Len() == 0 {
		return model.StockSummary{}, &model.InsufficientDataError{Op: "summary", Need: 1, Have: 0}
	}
	if w.Range52w <= 0 || w.Volume <= 0 || w.Volatility <= 0 {
		w = DefaultWindows()
	}

	last, _ := view.Last()
	s := model.StockSummary{
		Symbol:       view.Symbol,
		AsOf:         last.Date,
		CurrentPrice: last.Close,
	}

	s.High52w, s.Low52w, s.Partial52w = trailingRange(view.Bars, w.Range52w)
	s.AvgVolume, s.PartialVolume = trailingAvgVolume(view.Bars, w.Volume)

	returns := dailyReturns(view.Closes())
	s.Volatility = sampleStdDev(tail(returns, w.Volatility))

	// Annualized figures use the full return history, matching the
	// analyst-report convention of 252 trading days per year.
	meanReturn := mean(returns)
	s.AnnualReturn = meanReturn * 252
	s.AnnualVolatility = sampleStdDev(returns) * math.Sqrt(252)
	if s.AnnualVolatility != 0 {
		s.SharpeRatio = s.AnnualReturn / s.AnnualVolatility
	}

	// Latest indicator readings, omitted when history is too short.
	if rsi, err := indicator.RSI(view, 14); err == nil {
		if v, ok := rsi.Last(); ok {
			s.RSI14 = &v
		}
	}
	if sma, err := indicator.SMA(view, 20); err == nil {
		if v, ok := sma.Last(); ok {
			s.SMA20 = &v
		}
	}
	if sma, err := indicator.SMA(view, 50); err == nil {
		if v, ok := sma.Last(); ok {
			s.SMA50 = &v
		}
	}

	return s, nil
}

// trailingRange scans the most recent `window` bars and returns the highest
// high and lowest low. partial is true when fewer bars were available.
func trailingRange(bars []model.PriceBar, window int) (high, low float64, partial bool) {
	n := len(bars)
	start := n - window
	if start < 0 {
		start = 0
		partial = true
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, partial
}

func trailingAvgVolume(bars []model.PriceBar, window int) (avg float64, partial bool) {
	n := len(bars)
	start := n - window
	if start < 0 {
		start = 0
		partial = true
	}
	sum := 0.0
	for i := start; i < n; i++ {
		sum += float64(bars[i].Volume)
	}
	return sum / float64(n-start), partial
}

// dailyReturns computes fractional day-over-day close changes; the result
// has one fewer entry than closes.
func dailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		out[i-1] = closes[i]/closes[i-1] - 1
	}
	return out
}

func tail(vals []float64, n int) []float64 {
	if len(vals) <= n {
		return vals
	}
	return vals[len(vals)-n:]
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// sampleStdDev returns the sample standard deviation (n-1 denominator).
func sampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := mean(vals)
	squares := 0.0
	for _, v := range vals {
		d := v - m
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(vals)-1))
}
