package model

import "time"

// PriceBar is one trading day of OHLCV data for a single symbol.
// Bars are immutable once loaded; at most one bar exists per (symbol, date).
type PriceBar struct {
	Date   time.Time `json:"date"`
	Symbol string    `json:"symbol"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// SeriesView is a read-only, date-ascending run of bars for one symbol.
// Missing trading days are simply absent; no gap filling is performed.
// Computations never mutate the view; they produce new derived series.
type SeriesView struct {
	Symbol string
	Bars   []PriceBar
}

// Len returns the number of bars in the view.
func (s SeriesView) Len() int { return len(s.Bars) }

// Closes returns the close prices in date order.
func (s SeriesView) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Dates returns the bar dates in ascending order.
func (s SeriesView) Dates() []time.Time {
	dates := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		dates[i] = b.Date
	}
	return dates
}

// Last returns the most recent bar. ok is false for an empty view.
func (s SeriesView) Last() (PriceBar, bool) {
	if len(s.Bars) == 0 {
		return PriceBar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}
