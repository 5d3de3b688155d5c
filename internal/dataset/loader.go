package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"StockLens/internal/model"
)

// columnAliases maps the header names seen in common stock datasets onto the
// canonical schema. Matching is case-insensitive.
var columnAliases = map[string]string{
	"date":      "date",
	"timestamp": "date",
	"datetime":  "date",
	"symbol":    "symbol",
	"ticker":    "symbol",
	"name":      "symbol",
	"open":      "open",
	"high":      "high",
	"low":       "low",
	"close":     "close",
	"volume":    "volume",
}

var requiredColumns = []string{"date", "symbol", "open", "high", "low", "close", "volume"}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "01/02/2006"}

// Load reads OHLCV rows from a CSV file into a Dataset.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV rows from r. The header row must contain the canonical
// columns (Date, Symbol, Open, High, Low, Close, Volume) or a recognized
// alias of each. Rows with unparseable values fail fast with a
// DataFormatError; nothing is coerced to zero.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &model.DataFormatError{Reason: fmt.Sprintf("read header: %v", err)}
	}

	cols := make(map[string]int)
	for i, name := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, dup := cols[canonical]; !dup {
			cols[canonical] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, &model.DataFormatError{Column: c, Reason: "required column missing"}
		}
	}

	series := make(map[string][]model.PriceBar)
	seen := make(map[string]map[time.Time]bool)
	line := 1 // header consumed

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &model.DataFormatError{Line: line + 1, Reason: fmt.Sprintf("read record: %v", err)}
		}
		line++

		bar, err := parseRow(record, cols, line)
		if err != nil {
			return nil, err
		}

		if seen[bar.Symbol] == nil {
			seen[bar.Symbol] = make(map[time.Time]bool)
		}
		if seen[bar.Symbol][bar.Date] {
			return nil, &model.DataFormatError{
				Line:   line,
				Reason: fmt.Sprintf("duplicate bar for %s on %s", bar.Symbol, bar.Date.Format("2006-01-02")),
			}
		}
		seen[bar.Symbol][bar.Date] = true
		series[bar.Symbol] = append(series[bar.Symbol], bar)
	}

	if len(series) == 0 {
		return nil, &model.DataFormatError{Reason: "dataset contains no rows"}
	}
	return newDataset(series), nil
}

func parseRow(record []string, cols map[string]int, line int) (model.PriceBar, error) {
	field := func(name string) (string, error) {
		idx := cols[name]
		if idx >= len(record) {
			return "", &model.DataFormatError{Line: line, Column: name, Reason: "field missing"}
		}
		return strings.TrimSpace(record[idx]), nil
	}

	var bar model.PriceBar

	raw, err := field("date")
	if err != nil {
		return bar, err
	}
	date, err := parseDate(raw)
	if err != nil {
		return bar, &model.DataFormatError{Line: line, Column: "date", Reason: fmt.Sprintf("unparseable date %q", raw)}
	}
	bar.Date = date

	sym, err := field("symbol")
	if err != nil {
		return bar, err
	}
	if sym == "" {
		return bar, &model.DataFormatError{Line: line, Column: "symbol", Reason: "empty symbol"}
	}
	bar.Symbol = sym

	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"open", &bar.Open},
		{"high", &bar.High},
		{"low", &bar.Low},
		{"close", &bar.Close},
	} {
		raw, err := field(p.name)
		if err != nil {
			return bar, err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return bar, &model.DataFormatError{Line: line, Column: p.name, Reason: fmt.Sprintf("unparseable price %q", raw)}
		}
		if v <= 0 {
			return bar, &model.DataFormatError{Line: line, Column: p.name, Reason: fmt.Sprintf("price must be positive, got %s", raw)}
		}
		*p.dst = v
	}

	raw, err = field("volume")
	if err != nil {
		return bar, err
	}
	vol, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(vol) || vol != math.Trunc(vol) {
		return bar, &model.DataFormatError{Line: line, Column: "volume", Reason: fmt.Sprintf("unparseable volume %q", raw)}
	}
	if vol < 0 {
		return bar, &model.DataFormatError{Line: line, Column: "volume", Reason: fmt.Sprintf("volume must be non-negative, got %s", raw)}
	}
	bar.Volume = int64(vol)

	return bar, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
