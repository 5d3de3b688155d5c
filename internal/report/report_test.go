package report

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"StockLens/internal/model"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestFormatSummary(t *testing.T) {
	rsi, sma20 := 62.35, 148.12
	s := model.StockSummary{
		Symbol:       "AAPL",
		AsOf:         date("2023-06-30"),
		CurrentPrice: 150.25,
		High52w:      182.94,
		Low52w:       124.17,
		AvgVolume:    57433100,
		Volatility:   0.0123,
		AnnualReturn: 0.18,
		SharpeRatio:  1.02,
		RSI14:        &rsi,
		SMA20:        &sma20,
	}

	out := FormatSummary(s)

	for _, want := range []string{
		"AAPL | as of 2023-06-30",
		"$150.25",
		"$182.94",
		"$124.17",
		"57,433,100",
		"1.23% daily",
		"RSI(14):         62.35",
		"SMA(20):         $148.12",
		"SMA(50):         n/a",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "partial history") {
		t.Error("partial note should be absent for full history")
	}
}

func TestFormatSummary_PartialNotes(t *testing.T) {
	out := FormatSummary(model.StockSummary{
		Symbol:        "NEW",
		AsOf:          date("2023-02-01"),
		Partial52w:    true,
		PartialVolume: true,
	})
	if strings.Count(out, "(partial history)") != 3 {
		t.Errorf("expected partial notes on both 52w lines and the volume line:\n%s", out)
	}
}

func TestFormatSegments(t *testing.T) {
	segs := []model.PatternSegment{
		{Start: date("2023-01-16"), End: date("2023-02-10"), Label: model.TrendUptrend},
		{Start: date("2023-02-11"), End: date("2023-03-01"), Label: model.TrendConsolidation},
	}
	out := FormatSegments(segs)
	if !strings.Contains(out, "2023-01-16 .. 2023-02-10  UPTREND") {
		t.Errorf("unexpected segment line:\n%s", out)
	}
	if !strings.Contains(out, "CONSOLIDATION") {
		t.Errorf("missing consolidation line:\n%s", out)
	}

	if got := FormatSegments(nil); !strings.Contains(got, "no classifiable range") {
		t.Errorf("empty segments = %q", got)
	}
}

func TestFormatEvents(t *testing.T) {
	events := []model.PatternEvent{
		{Date: date("2023-03-10"), Type: model.EventGoldenCross, Note: "50-day SMA crossed above 200-day SMA"},
		{Date: date("2023-04-02"), Type: model.EventOverbought, Note: "RSI 74.1 above 70"},
	}
	out := FormatEvents(events)
	if !strings.Contains(out, "2023-03-10") || !strings.Contains(out, "GOLDEN_CROSS") {
		t.Errorf("missing golden cross line:\n%s", out)
	}
	if got := FormatEvents(nil); !strings.Contains(got, "none") {
		t.Errorf("empty events = %q", got)
	}
}

func TestBuildChart_RendersGapsNotZeros(t *testing.T) {
	bars := make([]model.PriceBar, 30)
	start := date("2023-01-02")
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.PriceBar{
			Date: start.AddDate(0, 0, i), Symbol: "TEST",
			Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000,
		}
	}
	view := model.SeriesView{Symbol: "TEST", Bars: bars}

	vals := make([]float64, 30)
	for i := range vals {
		if i < 19 {
			vals[i] = math.NaN()
		} else {
			vals[i] = 110
		}
	}
	set := model.IndicatorSet{Dates: view.Dates()}
	set.Add(model.IndicatorSeries{Name: model.IndicatorSMA20, Values: vals})

	var buf bytes.Buffer
	if err := BuildChart(view, set).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "TEST Stock Analysis") {
		t.Error("missing chart title")
	}
	if !strings.Contains(html, "SMA_20") {
		t.Error("missing overlay series")
	}
	// Warmup values must appear as gaps, not zeros.
	if !strings.Contains(html, `"-"`) {
		t.Error("expected gap markers for warmup values")
	}
}

func TestFileWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w, err := NewFileWriter(dir)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	defer w.Close()

	path, err := w.WriteChart("AAPL", renderableFunc(func(out io.Writer) error {
		_, err := out.Write([]byte("<html>ok</html>"))
		return err
	}))
	if err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	if filepath.Base(path) != "AAPL_analysis.html" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if string(data) != "<html>ok</html>" {
		t.Errorf("content = %q", data)
	}
}

func TestNoopWriter(t *testing.T) {
	var w Writer = NewNoopWriter()
	path, err := w.WriteChart("AAPL", renderableFunc(func(io.Writer) error {
		t.Error("noop writer must not render")
		return nil
	}))
	if err != nil || path != "" {
		t.Errorf("WriteChart = %q, %v", path, err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

type renderableFunc func(io.Writer) error

func (f renderableFunc) Render(w io.Writer) error { return f(w) }
