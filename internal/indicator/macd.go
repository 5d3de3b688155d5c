package indicator

import (
	"fmt"

	"StockLens/internal/model"
)

// MACD computes the moving average convergence/divergence line (fast EMA
// minus slow EMA), its signal line (EMA of the MACD line), and the
// histogram (MACD minus signal). The MACD line starts at index slow-1; the
// signal and histogram start signal-1 entries later.
func MACD(view model.SeriesView, fast, slow, signal int) (macd, sig, hist model.IndicatorSeries, err error) {
	macd = model.IndicatorSeries{Name: model.IndicatorMACD}
	sig = model.IndicatorSeries{Name: model.IndicatorMACDSignal}
	hist = model.IndicatorSeries{Name: model.IndicatorMACDHist}

	if fast <= 0 || slow <= fast || signal <= 0 {
		err = fmt.Errorf("MACD: invalid periods fast=%d slow=%d signal=%d", fast, slow, signal)
		return
	}
	minLen := slow + signal - 1
	if view.Len() < minLen {
		err = &model.InsufficientDataError{Op: model.IndicatorMACD, Need: minLen, Have: view.Len()}
		return
	}

	closes := view.Closes()
	n := len(closes)
	fastEMA := emaValues(closes, fast)
	slowEMA := emaValues(closes, slow)

	macd.Values = nanSlice(n)
	for i := slow - 1; i < n; i++ {
		macd.Values[i] = fastEMA[i] - slowEMA[i]
	}

	// Signal line: EMA over the valid MACD region, pasted back at its offset.
	sig.Values = nanSlice(n)
	valid := macd.Values[slow-1:]
	sigValid := emaValues(valid, signal)
	copy(sig.Values[slow-1:], sigValid)

	hist.Values = nanSlice(n)
	for i := slow + signal - 2; i < n; i++ {
		hist.Values[i] = macd.Values[i] - sig.Values[i]
	}
	return
}
