package pattern

import (
	"math"
	"testing"

	"StockLens/internal/model"
)

// series builds an indicator series with NaN wherever vals holds a negative
// sentinel, keeping fixtures short.
func series(name string, vals []float64) model.IndicatorSeries {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v < 0 {
			out[i] = math.NaN()
		} else {
			out[i] = v
		}
	}
	return model.IndicatorSeries{Name: name, Values: out}
}

func setFor(view model.SeriesView, ss ...model.IndicatorSeries) model.IndicatorSet {
	set := model.IndicatorSet{Dates: view.Dates()}
	set.Add(ss...)
	return set
}

func eventsOfType(events []model.PatternEvent, typ model.EventType) []model.PatternEvent {
	var out []model.PatternEvent
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestDetectEvents_GoldenAndDeathCross(t *testing.T) {
	view := makeView(linearCloses(100, 1, 6))
	// Fast crosses above slow at index 2, back below at index 4.
	set := setFor(view,
		series(model.IndicatorSMA50, []float64{10, 10, 12, 12, 9, 9}),
		series(model.IndicatorSMA200, []float64{11, 11, 11, 11, 11, 11}),
	)

	events := DetectEvents(view, set)

	golden := eventsOfType(events, model.EventGoldenCross)
	if len(golden) != 1 || !golden[0].Date.Equal(view.Bars[2].Date) {
		t.Errorf("golden crosses = %+v, want one at index 2", golden)
	}
	death := eventsOfType(events, model.EventDeathCross)
	if len(death) != 1 || !death[0].Date.Equal(view.Bars[4].Date) {
		t.Errorf("death crosses = %+v, want one at index 4", death)
	}
}

func TestDetectEvents_RSIZoneEntryOnly(t *testing.T) {
	view := makeView(linearCloses(100, 1, 7))
	// Enters overbought at index 2, stays there at 3, exits, then enters
	// oversold at index 5. Only the entries fire.
	set := setFor(view,
		series(model.IndicatorRSI14, []float64{-1, 50, 75, 80, 50, 25, 20}),
	)

	events := DetectEvents(view, set)

	over := eventsOfType(events, model.EventOverbought)
	if len(over) != 1 || !over[0].Date.Equal(view.Bars[2].Date) {
		t.Errorf("overbought = %+v, want one at index 2", over)
	}
	under := eventsOfType(events, model.EventOversold)
	if len(under) != 1 || !under[0].Date.Equal(view.Bars[5].Date) {
		t.Errorf("oversold = %+v, want one at index 5", under)
	}
}

func TestDetectEvents_RSIFirstValueInZone(t *testing.T) {
	view := makeView(linearCloses(100, 1, 3))
	// First defined RSI value is already overbought: fires once.
	set := setFor(view, series(model.IndicatorRSI14, []float64{-1, 85, 90}))

	over := eventsOfType(DetectEvents(view, set), model.EventOverbought)
	if len(over) != 1 || !over[0].Date.Equal(view.Bars[1].Date) {
		t.Errorf("overbought = %+v, want one at index 1", over)
	}
}

func TestDetectEvents_BollingerBreach(t *testing.T) {
	closes := []float64{100, 100, 112, 113, 100, 85, 100}
	view := makeView(closes)
	// Bands fixed at 90..110: close breaches up at 2 (stays out at 3,
	// no second event), breaches down at 5.
	upper := []float64{110, 110, 110, 110, 110, 110, 110}
	lower := []float64{90, 90, 90, 90, 90, 90, 90}
	set := setFor(view,
		series(model.IndicatorBBUpper, upper),
		series(model.IndicatorBBLower, lower),
	)

	events := DetectEvents(view, set)

	above := eventsOfType(events, model.EventAboveUpperBand)
	if len(above) != 1 || !above[0].Date.Equal(view.Bars[2].Date) {
		t.Errorf("above-band = %+v, want one at index 2", above)
	}
	below := eventsOfType(events, model.EventBelowLowerBand)
	if len(below) != 1 || !below[0].Date.Equal(view.Bars[5].Date) {
		t.Errorf("below-band = %+v, want one at index 5", below)
	}
}

func TestDetectEvents_MissingIndicatorsSkipped(t *testing.T) {
	view := makeView(linearCloses(100, 1, 10))
	events := DetectEvents(view, model.IndicatorSet{Dates: view.Dates()})
	if len(events) != 0 {
		t.Errorf("expected no events without indicators, got %+v", events)
	}
}

func TestDetectEvents_SortedByDate(t *testing.T) {
	view := makeView(linearCloses(100, 1, 8))
	// RSI fires late, Bollinger fires early: output must still be
	// chronological.
	set := setFor(view,
		series(model.IndicatorRSI14, []float64{50, 50, 50, 50, 50, 50, 80, 80}),
		series(model.IndicatorBBUpper, []float64{90, 90, 90, 90, 200, 200, 200, 200}),
		series(model.IndicatorBBLower, []float64{10, 10, 10, 10, 10, 10, 10, 10}),
	)

	events := DetectEvents(view, set)
	if len(events) < 2 {
		t.Fatalf("expected at least 2 events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Fatalf("events out of order: %s before %s",
				events[i].Date.Format("2006-01-02"), events[i-1].Date.Format("2006-01-02"))
		}
	}
}
