package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// SampleSpec configures one symbol in a generated sample dataset.
type SampleSpec struct {
	Symbol       string
	InitialPrice float64
}

// DefaultSampleSpecs mirrors the demo dataset: five large caps with distinct
// starting prices.
func DefaultSampleSpecs() []SampleSpec {
	return []SampleSpec{
		{Symbol: "AAPL", InitialPrice: 150},
		{Symbol: "GOOGL", InitialPrice: 2800},
		{Symbol: "MSFT", InitialPrice: 200},
		{Symbol: "AMZN", InitialPrice: 3300},
		{Symbol: "META", InitialPrice: 250},
	}
}

// WriteSample generates random-walk daily OHLCV data for each spec and writes
// it as CSV with the canonical header. days counts business days per symbol;
// weekends are skipped. The same seed always produces the same dataset.
func WriteSample(w io.Writer, specs []SampleSpec, start time.Time, days int, seed int64) error {
	if days <= 0 {
		return fmt.Errorf("sample: days must be positive, got %d", days)
	}
	rng := rand.New(rand.NewSource(seed))

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Symbol", "Open", "High", "Low", "Close", "Volume"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, spec := range specs {
		price := spec.InitialPrice
		date := start
		for d := 0; d < days; d++ {
			for date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				date = date.AddDate(0, 0, 1)
			}

			// Random walk with ~2% daily volatility.
			open := price
			price *= 1 + rng.NormFloat64()*0.02
			if price < 1 {
				price = 1
			}
			clos := price
			high := math.Max(open, clos) * (1 + math.Abs(rng.NormFloat64())*0.01)
			low := math.Min(open, clos) * (1 - math.Abs(rng.NormFloat64())*0.01)
			volume := int64(1000000 + rng.NormFloat64()*500000)
			if volume < 0 {
				volume = 0
			}

			row := []string{
				date.Format("2006-01-02"),
				spec.Symbol,
				formatPrice(open),
				formatPrice(high),
				formatPrice(low),
				formatPrice(clos),
				strconv.FormatInt(volume, 10),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
			date = date.AddDate(0, 0, 1)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSampleFile writes a generated sample dataset to path.
func WriteSampleFile(path string, specs []SampleSpec, start time.Time, days int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample file: %w", err)
	}
	defer f.Close()
	if err := WriteSample(f, specs, start, days, seed); err != nil {
		return err
	}
	return f.Close()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
