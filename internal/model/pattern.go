package model

import "time"

// TrendLabel classifies a date range's price behavior.
type TrendLabel string

const (
	TrendUptrend       TrendLabel = "UPTREND"
	TrendDowntrend     TrendLabel = "DOWNTREND"
	TrendConsolidation TrendLabel = "CONSOLIDATION"
)

// PatternSegment labels a contiguous, inclusive date range. Segments produced
// for one series never overlap, never leave gaps inside the classifiable
// range, and consecutive segments never share a label.
type PatternSegment struct {
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Label TrendLabel `json:"label"`
}

// EventType identifies a single-date chart observation.
type EventType string

const (
	EventGoldenCross    EventType = "GOLDEN_CROSS"
	EventDeathCross     EventType = "DEATH_CROSS"
	EventOverbought     EventType = "OVERBOUGHT"
	EventOversold       EventType = "OVERSOLD"
	EventAboveUpperBand EventType = "ABOVE_UPPER_BAND"
	EventBelowLowerBand EventType = "BELOW_LOWER_BAND"
)

// PatternEvent is a dated point observation reported alongside trend
// segments: moving-average crosses, RSI extremes, Bollinger band breaches.
type PatternEvent struct {
	Date time.Time `json:"date"`
	Type EventType `json:"type"`
	Note string    `json:"note"`
}
