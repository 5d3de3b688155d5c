// Package indicator computes technical indicators over a price series.
//
// Every function is pure: it reads the input series and returns a new
// IndicatorSeries aligned index-for-index with it. Values before an
// indicator's warmup window is filled are NaN, never zero. A series shorter
// than the minimum required window fails with InsufficientDataError; the
// caller decides whether to surface or degrade.
package indicator

import (
	"fmt"
	"math"

	"StockLens/internal/model"
)

// Windows holds the window parameters for the standard indicator set.
type Windows struct {
	SMA []int
	EMA []int
	RSI int

	MACDFast   int
	MACDSlow   int
	MACDSignal int

	Bollinger       int
	BollingerStdDev float64
}

// DefaultWindows matches the conventional parameter choices: SMA 20/50/200,
// EMA 20/50, RSI 14, MACD 12/26/9, Bollinger 20 at 2 standard deviations.
func DefaultWindows() Windows {
	return Windows{
		SMA:             []int{20, 50, 200},
		EMA:             []int{20, 50},
		RSI:             14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		Bollinger:       20,
		BollingerStdDev: 2.0,
	}
}

// Compute calculates every indicator in w that the series is long enough
// for, and reports which ones were skipped for lack of history. The set is
// aligned to the view's dates. skipped maps indicator name to the error that
// excluded it.
func Compute(view model.SeriesView, w Windows) (model.IndicatorSet, map[string]error) {
	set := model.IndicatorSet{Dates: view.Dates()}
	skipped := make(map[string]error)

	for _, window := range w.SMA {
		s, err := SMA(view, window)
		if err != nil {
			skipped[fmt.Sprintf("SMA_%d", window)] = err
			continue
		}
		set.Add(s)
	}
	for _, window := range w.EMA {
		s, err := EMA(view, window)
		if err != nil {
			skipped[fmt.Sprintf("EMA_%d", window)] = err
			continue
		}
		set.Add(s)
	}

	if s, err := RSI(view, w.RSI); err != nil {
		skipped[s.Name] = err
	} else {
		set.Add(s)
	}

	macd, signal, hist, err := MACD(view, w.MACDFast, w.MACDSlow, w.MACDSignal)
	if err != nil {
		skipped[model.IndicatorMACD] = err
	} else {
		set.Add(macd, signal, hist)
	}

	upper, middle, lower, err := Bollinger(view, w.Bollinger, w.BollingerStdDev)
	if err != nil {
		skipped[model.IndicatorBBMiddle] = err
	} else {
		set.Add(upper, middle, lower)
	}

	return set, skipped
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
