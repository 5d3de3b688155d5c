package pattern

import (
	"fmt"
	"sort"

	"StockLens/internal/model"
)

// DetectEvents scans the series for single-date signals: SMA 50/200 crosses,
// RSI entering the overbought/oversold zones, and closes breaching the
// Bollinger bands. An event fires on the first date the condition holds, not
// on every date inside the zone. Indicators missing from the set are
// skipped, so short series simply yield fewer event kinds.
func DetectEvents(view model.SeriesView, ind model.IndicatorSet) []model.PatternEvent {
	var events []model.PatternEvent
	dates := view.Dates()

	sma50, ok50 := ind.Get(model.IndicatorSMA50)
	sma200, ok200 := ind.Get(model.IndicatorSMA200)
	if ok50 && ok200 {
		for i := 1; i < view.Len(); i++ {
			pf, ok1 := sma50.At(i - 1)
			ps, ok2 := sma200.At(i - 1)
			cf, ok3 := sma50.At(i)
			cs, ok4 := sma200.At(i)
			if !ok1 || !ok2 || !ok3 || !ok4 {
				continue
			}
			if pf <= ps && cf > cs {
				events = append(events, model.PatternEvent{
					Date: dates[i],
					Type: model.EventGoldenCross,
					Note: "50-day SMA crossed above 200-day SMA",
				})
			}
			if pf >= ps && cf < cs {
				events = append(events, model.PatternEvent{
					Date: dates[i],
					Type: model.EventDeathCross,
					Note: "50-day SMA crossed below 200-day SMA",
				})
			}
		}
	}

	if rsi, ok := ind.Get(model.IndicatorRSI14); ok {
		for i := 0; i < view.Len(); i++ {
			cur, okc := rsi.At(i)
			if !okc {
				continue
			}
			prev, okp := rsi.At(i - 1)
			if cur > 70 && (!okp || prev <= 70) {
				events = append(events, model.PatternEvent{
					Date: dates[i],
					Type: model.EventOverbought,
					Note: fmt.Sprintf("RSI %.1f above 70", cur),
				})
			}
			if cur < 30 && (!okp || prev >= 30) {
				events = append(events, model.PatternEvent{
					Date: dates[i],
					Type: model.EventOversold,
					Note: fmt.Sprintf("RSI %.1f below 30", cur),
				})
			}
		}
	}

	upper, okU := ind.Get(model.IndicatorBBUpper)
	lower, okL := ind.Get(model.IndicatorBBLower)
	if okU && okL {
		for i := 0; i < view.Len(); i++ {
			up, ok1 := upper.At(i)
			lo, ok2 := lower.At(i)
			if !ok1 || !ok2 {
				continue
			}
			c := view.Bars[i].Close
			inside := func(j int) bool {
				u, okA := upper.At(j)
				l, okB := lower.At(j)
				if j < 0 || !okA || !okB {
					return true
				}
				pc := view.Bars[j].Close
				return pc <= u && pc >= l
			}
			if c > up && inside(i-1) {
				events = append(events, model.PatternEvent{
					Date: dates[i],
					Type: model.EventAboveUpperBand,
					Note: "close above upper Bollinger band",
				})
			}
			if c < lo && inside(i-1) {
				events = append(events, model.PatternEvent{
					Date: dates[i],
					Type: model.EventBelowLowerBand,
					Note: "close below lower Bollinger band",
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}
