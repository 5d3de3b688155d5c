package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"StockLens/internal/model"
)

// FormatSummary renders the stock summary as the analyst-facing text block.
func FormatSummary(s model.StockSummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s | as of %s\n", s.Symbol, s.AsOf.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("  Current Price:   $%.2f\n", s.CurrentPrice))

	rangeNote := ""
	if s.Partial52w {
		rangeNote = " (partial history)"
	}
	b.WriteString(fmt.Sprintf("  52-Week High:    $%.2f%s\n", s.High52w, rangeNote))
	b.WriteString(fmt.Sprintf("  52-Week Low:     $%.2f%s\n", s.Low52w, rangeNote))

	volNote := ""
	if s.PartialVolume {
		volNote = " (partial history)"
	}
	b.WriteString(fmt.Sprintf("  Average Volume:  %s%s\n", humanize.CommafWithDigits(s.AvgVolume, 0), volNote))

	b.WriteString(fmt.Sprintf("  Volatility:      %.2f%% daily\n", s.Volatility*100))
	b.WriteString(fmt.Sprintf("  Annual Return:   %.2f%%\n", s.AnnualReturn*100))
	b.WriteString(fmt.Sprintf("  Annual Vol:      %.2f%%\n", s.AnnualVolatility*100))
	b.WriteString(fmt.Sprintf("  Sharpe Ratio:    %.2f\n", s.SharpeRatio))

	b.WriteString(fmt.Sprintf("  RSI(14):         %s\n", formatReading(s.RSI14, "%.2f")))
	b.WriteString(fmt.Sprintf("  SMA(20):         %s\n", formatReading(s.SMA20, "$%.2f")))
	b.WriteString(fmt.Sprintf("  SMA(50):         %s\n", formatReading(s.SMA50, "$%.2f")))

	return b.String()
}

// FormatSegments renders the trend segments as one line per range.
func FormatSegments(segs []model.PatternSegment) string {
	if len(segs) == 0 {
		return "  no classifiable range\n"
	}
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(fmt.Sprintf("  %s .. %s  %s\n",
			seg.Start.Format("2006-01-02"), seg.End.Format("2006-01-02"), seg.Label))
	}
	return b.String()
}

// FormatEvents renders the dated point events, most recent last.
func FormatEvents(events []model.PatternEvent) string {
	if len(events) == 0 {
		return "  none\n"
	}
	var b strings.Builder
	for _, e := range events {
		b.WriteString(fmt.Sprintf("  %s  %-17s %s\n", e.Date.Format("2006-01-02"), e.Type, e.Note))
	}
	return b.String()
}

func formatReading(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}
