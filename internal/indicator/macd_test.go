package indicator

import (
	"errors"
	"math"
	"testing"

	"StockLens/internal/model"
)

func TestMACD_Alignment(t *testing.T) {
	view := makeView(linearCloses(100, 60))
	macd, sig, hist, err := MACD(view, 12, 26, 9)
	if err != nil {
		t.Fatalf("MACD: %v", err)
	}

	// MACD line starts at slow-1; signal and histogram at slow+signal-2.
	if _, ok := macd.At(24); ok {
		t.Error("MACD[24] should be absent")
	}
	if _, ok := macd.At(25); !ok {
		t.Error("MACD[25] should be present")
	}
	if _, ok := sig.At(32); ok {
		t.Error("signal[32] should be absent")
	}
	if _, ok := sig.At(33); !ok {
		t.Error("signal[33] should be present")
	}

	// Histogram equals MACD minus signal wherever both exist.
	for i := 33; i < view.Len(); i++ {
		m, _ := macd.At(i)
		s, _ := sig.At(i)
		h, ok := hist.At(i)
		if !ok {
			t.Fatalf("hist[%d] absent", i)
		}
		if math.Abs(h-(m-s)) > 1e-12 {
			t.Errorf("hist[%d] = %v, want %v", i, h, m-s)
		}
	}
}

func TestMACD_InsufficientData(t *testing.T) {
	_, _, _, err := MACD(makeView(linearCloses(100, 20)), 12, 26, 9)
	var ide *model.InsufficientDataError
	if !errors.As(err, &ide) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
}

func TestBollinger_BandOrdering(t *testing.T) {
	view := makeView(oscillating(100, 50))
	upper, middle, lower, err := Bollinger(view, 20, 2.0)
	if err != nil {
		t.Fatalf("Bollinger: %v", err)
	}
	for i := 19; i < view.Len(); i++ {
		u, _ := upper.At(i)
		m, _ := middle.At(i)
		l, _ := lower.At(i)
		if !(u >= m && m >= l) {
			t.Fatalf("index %d: bands out of order: upper %v middle %v lower %v", i, u, m, l)
		}
	}
}

func TestBollinger_FlatSeriesCollapses(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 50
	}
	upper, middle, lower, err := Bollinger(makeView(closes), 20, 2.0)
	if err != nil {
		t.Fatalf("Bollinger: %v", err)
	}
	u, _ := upper.Last()
	m, _ := middle.Last()
	l, _ := lower.Last()
	if u != 50 || m != 50 || l != 50 {
		t.Errorf("flat series bands = %v/%v/%v, want 50/50/50", u, m, l)
	}
}
