package model

import (
	"math"
	"time"
)

// Canonical indicator series names.
const (
	IndicatorSMA20      = "SMA_20"
	IndicatorSMA50      = "SMA_50"
	IndicatorSMA200     = "SMA_200"
	IndicatorEMA20      = "EMA_20"
	IndicatorEMA50      = "EMA_50"
	IndicatorRSI14      = "RSI_14"
	IndicatorMACD       = "MACD"
	IndicatorMACDSignal = "MACD_SIGNAL"
	IndicatorMACDHist   = "MACD_HIST"
	IndicatorBBUpper    = "BB_UPPER"
	IndicatorBBMiddle   = "BB_MIDDLE"
	IndicatorBBLower    = "BB_LOWER"
)

// IndicatorSeries holds one named indicator aligned index-for-index with the
// SeriesView it was computed from. Entries before the warmup window is filled
// are NaN, never zero.
type IndicatorSeries struct {
	Name   string
	Values []float64
}

// At returns the value at index i. ok is false when the value is absent
// (warmup not filled) or the index is out of range.
func (s IndicatorSeries) At(i int) (float64, bool) {
	if i < 0 || i >= len(s.Values) {
		return 0, false
	}
	v := s.Values[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Last returns the most recent value. ok is false when it is absent.
func (s IndicatorSeries) Last() (float64, bool) {
	return s.At(len(s.Values) - 1)
}

// IndicatorSet groups the indicator series computed for one symbol. All
// series share the same length and date alignment.
type IndicatorSet struct {
	Dates  []time.Time
	Series []IndicatorSeries
}

// Get returns the series with the given name.
func (s IndicatorSet) Get(name string) (IndicatorSeries, bool) {
	for _, is := range s.Series {
		if is.Name == name {
			return is, true
		}
	}
	return IndicatorSeries{}, false
}

// Add appends a series to the set.
func (s *IndicatorSet) Add(series ...IndicatorSeries) {
	s.Series = append(s.Series, series...)
}
