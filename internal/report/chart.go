// Package report renders per-symbol analyses: an interactive HTML chart
// page, a plain-text summary, and the files written to the output directory.
package report

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockLens/internal/model"
)

// BuildChart assembles the chart page for one symbol: a candlestick chart
// with SMA/EMA and Bollinger overlays, an RSI row with the 70/30 reference
// lines, and a MACD row. Indicator values still in warmup render as gaps,
// never as zero: the chart must not invent data the engine marked absent.
func BuildChart(view model.SeriesView, ind model.IndicatorSet) *components.Page {
	x := make([]string, view.Len())
	kd := make([]opts.KlineData, view.Len())
	for i, b := range view.Bars {
		x[i] = b.Date.Format("2006-01-02")
		kd[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Stock Analysis", view.Symbol)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: true}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: 100}),
	)
	kline.SetXAxis(x).AddSeries("OHLC", kd)

	for _, name := range []string{
		model.IndicatorSMA20, model.IndicatorSMA50, model.IndicatorSMA200,
		model.IndicatorEMA20, model.IndicatorEMA50,
		model.IndicatorBBUpper, model.IndicatorBBLower,
	} {
		if s, ok := ind.Get(name); ok {
			kline.Overlap(overlayLine(x, s))
		}
	}

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s analysis", view.Symbol)
	page.AddCharts(kline)

	if rsi, ok := ind.Get(model.IndicatorRSI14); ok {
		page.AddCharts(rsiChart(x, rsi))
	}
	if macd, ok := ind.Get(model.IndicatorMACD); ok {
		sig, _ := ind.Get(model.IndicatorMACDSignal)
		hist, _ := ind.Get(model.IndicatorMACDHist)
		page.AddCharts(macdChart(x, macd, sig, hist))
	}

	return page
}

func overlayLine(x []string, s model.IndicatorSeries) *charts.Line {
	line := charts.NewLine()
	line.SetXAxis(x).AddSeries(s.Name, lineData(s.Values),
		charts.WithLineChartOpts(opts.LineChart{Smooth: true}))
	return line
}

func rsiChart(x []string, rsi model.IndicatorSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "RSI"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "220px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
	)
	line.SetXAxis(x).AddSeries(rsi.Name, lineData(rsi.Values))

	// Overbought/oversold reference levels.
	line.AddSeries("overbought", constantLine(len(x), 70))
	line.AddSeries("oversold", constantLine(len(x), 30))
	return line
}

func macdChart(x []string, macd, sig, hist model.IndicatorSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "MACD"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "220px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)
	line.SetXAxis(x).AddSeries(macd.Name, lineData(macd.Values))
	if sig.Values != nil {
		line.AddSeries(sig.Name, lineData(sig.Values))
	}

	if hist.Values != nil {
		bar := charts.NewBar()
		bd := make([]opts.BarData, len(hist.Values))
		for i, v := range hist.Values {
			if math.IsNaN(v) {
				bd[i] = opts.BarData{Value: "-"}
			} else {
				bd[i] = opts.BarData{Value: v}
			}
		}
		bar.SetXAxis(x).AddSeries(hist.Name, bd)
		line.Overlap(bar)
	}
	return line
}

func lineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			// echarts renders "-" as a gap.
			out[i] = opts.LineData{Value: "-"}
		} else {
			out[i] = opts.LineData{Value: v}
		}
	}
	return out
}

func constantLine(n int, v float64) []opts.LineData {
	out := make([]opts.LineData, n)
	for i := range out {
		out[i] = opts.LineData{Value: v}
	}
	return out
}
