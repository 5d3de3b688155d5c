// Package analyzer ties the loaded dataset to the indicator, pattern and
// summary computations for one symbol at a time. The analyzer holds no
// mutable state: every call reads the immutable dataset and returns freshly
// derived values, so analyses for different symbols may run concurrently.
package analyzer

import (
	"log"

	"github.com/go-echarts/go-echarts/v2/components"

	"StockLens/internal/config"
	"StockLens/internal/dataset"
	"StockLens/internal/indicator"
	"StockLens/internal/model"
	"StockLens/internal/pattern"
	"StockLens/internal/report"
	"StockLens/internal/summary"
)

// Options collects the window and threshold parameters for all computations.
type Options struct {
	Indicators indicator.Windows
	Pattern    pattern.Thresholds
	Summary    summary.Windows
}

// DefaultOptions returns the documented default parameters throughout.
func DefaultOptions() Options {
	return Options{
		Indicators: indicator.DefaultWindows(),
		Pattern:    pattern.DefaultThresholds(),
		Summary:    summary.DefaultWindows(),
	}
}

// OptionsFromConfig maps the application config onto analysis options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Indicators: indicator.Windows{
			SMA:             cfg.Indicators.SMAWindows,
			EMA:             cfg.Indicators.EMAWindows,
			RSI:             cfg.Indicators.RSIWindow,
			MACDFast:        cfg.Indicators.MACDFast,
			MACDSlow:        cfg.Indicators.MACDSlow,
			MACDSignal:      cfg.Indicators.MACDSignal,
			Bollinger:       cfg.Indicators.BollingerWindow,
			BollingerStdDev: cfg.Indicators.BollingerStdDev,
		},
		Pattern: pattern.Thresholds{
			Lookback:       cfg.Pattern.Lookback,
			Uptrend:        cfg.Pattern.UptrendThreshold,
			Downtrend:      cfg.Pattern.DowntrendThreshold,
			FlatVolatility: cfg.Pattern.FlatVolatility,
		},
		Summary: summary.Windows{
			Range52w:   cfg.Summary.RangeWindow,
			Volume:     cfg.Summary.VolumeWindow,
			Volatility: cfg.Summary.VolatilityWindow,
		},
	}
}

// Analysis is the full derived output for one symbol.
type Analysis struct {
	Series     model.SeriesView
	Indicators model.IndicatorSet
	Segments   []model.PatternSegment
	Events     []model.PatternEvent
	Summary    model.StockSummary
}

// Analyzer exposes per-symbol analyses over a loaded dataset.
type Analyzer struct {
	ds   *dataset.Dataset
	opts Options
}

// New creates an Analyzer over a loaded dataset.
func New(ds *dataset.Dataset, opts Options) *Analyzer {
	return &Analyzer{ds: ds, opts: opts}
}

// Open loads the dataset at path and returns an Analyzer over it.
func Open(path string, opts Options) (*Analyzer, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] loaded dataset: %d symbols, %d rows", len(ds.Symbols()), ds.NumRows())
	return New(ds, opts), nil
}

// Symbols returns all symbols available for analysis.
func (a *Analyzer) Symbols() []string { return a.ds.Symbols() }

// Analyze computes the full derived set for one symbol. Indicators the
// series is too short for are skipped with a warning; a pattern lookback
// shorter than the series is propagated as InsufficientDataError.
func (a *Analyzer) Analyze(symbol string) (*Analysis, error) {
	view, err := a.ds.Series(symbol)
	if err != nil {
		return nil, err
	}

	ind, skipped := indicator.Compute(view, a.opts.Indicators)
	for name, err := range skipped {
		log.Printf("[WARN] %s: skipping %s: %v", symbol, name, err)
	}

	segments, err := pattern.Classify(view, a.opts.Pattern)
	if err != nil {
		return nil, err
	}
	events := pattern.DetectEvents(view, ind)

	sum, err := summary.Build(view, a.opts.Summary)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Series:     view,
		Indicators: ind,
		Segments:   segments,
		Events:     events,
		Summary:    sum,
	}, nil
}

// GetStockSummary computes only the summary statistics for one symbol.
func (a *Analyzer) GetStockSummary(symbol string) (model.StockSummary, error) {
	view, err := a.ds.Series(symbol)
	if err != nil {
		return model.StockSummary{}, err
	}
	return summary.Build(view, a.opts.Summary)
}

// IdentifyPatterns computes only the trend segments for one symbol.
func (a *Analyzer) IdentifyPatterns(symbol string) ([]model.PatternSegment, error) {
	view, err := a.ds.Series(symbol)
	if err != nil {
		return nil, err
	}
	return pattern.Classify(view, a.opts.Pattern)
}

// PlotStockTrend builds the renderable chart page for one symbol.
func (a *Analyzer) PlotStockTrend(symbol string) (*components.Page, error) {
	view, err := a.ds.Series(symbol)
	if err != nil {
		return nil, err
	}
	ind, skipped := indicator.Compute(view, a.opts.Indicators)
	for name, err := range skipped {
		log.Printf("[WARN] %s: skipping %s: %v", symbol, name, err)
	}
	return report.BuildChart(view, ind), nil
}
