package model

import "time"

// StockSummary holds the scalar statistics computed for one symbol as of its
// latest available bar. The 52-week and volume figures degrade to the
// available history when a full window is not present; the Partial flags
// report that degradation instead of failing.
type StockSummary struct {
	Symbol       string    `json:"symbol"`
	AsOf         time.Time `json:"as_of"`
	CurrentPrice float64   `json:"current_price"`

	High52w    float64 `json:"high_52w"`
	Low52w     float64 `json:"low_52w"`
	Partial52w bool    `json:"partial_52w"` // fewer than a full year of bars

	AvgVolume     float64 `json:"avg_volume"`
	PartialVolume bool    `json:"partial_volume"`

	// Volatility is the sample standard deviation of daily percentage
	// returns over the trailing volatility window.
	Volatility float64 `json:"volatility"`

	AnnualReturn     float64 `json:"annual_return"`
	AnnualVolatility float64 `json:"annual_volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`

	// Latest indicator readings; nil when the series is too short.
	RSI14 *float64 `json:"rsi_14,omitempty"`
	SMA20 *float64 `json:"sma_20,omitempty"`
	SMA50 *float64 `json:"sma_50,omitempty"`
}
