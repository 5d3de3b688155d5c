// Package dataset loads daily OHLCV price data from CSV into immutable
// per-symbol series. The dataset is read-only after load: concurrent symbol
// analyses may share it without synchronization.
package dataset

import (
	"sort"

	"StockLens/internal/model"
)

// Dataset holds every loaded symbol's bars, sorted ascending by date.
type Dataset struct {
	symbols []string
	series  map[string][]model.PriceBar
}

// Symbols returns all loaded symbols in lexical order.
func (d *Dataset) Symbols() []string {
	out := make([]string, len(d.symbols))
	copy(out, d.symbols)
	return out
}

// NumRows returns the total number of bars across all symbols.
func (d *Dataset) NumRows() int {
	n := 0
	for _, bars := range d.series {
		n += len(bars)
	}
	return n
}

// Series returns the date-ascending view for one symbol.
func (d *Dataset) Series(symbol string) (model.SeriesView, error) {
	bars, ok := d.series[symbol]
	if !ok {
		return model.SeriesView{}, &model.SymbolNotFoundError{Symbol: symbol}
	}
	return model.SeriesView{Symbol: symbol, Bars: bars}, nil
}

func newDataset(series map[string][]model.PriceBar) *Dataset {
	symbols := make([]string, 0, len(series))
	for sym, bars := range series {
		sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return &Dataset{symbols: symbols, series: series}
}
