package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"StockLens/internal/analyzer"
	"StockLens/internal/dataset"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	var buf bytes.Buffer
	start := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	if err := dataset.WriteSample(&buf, dataset.DefaultSampleSpecs(), start, 120, 42); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	ds, err := dataset.Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	srv := httptest.NewServer(New(analyzer.New(ds, analyzer.DefaultOptions())).Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSymbolsEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := get(t, srv.URL+"/symbols")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	var body struct {
		Symbols []string `json:"symbols"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Symbols) != 5 || body.Symbols[0] != "AAPL" {
		t.Errorf("symbols = %v", body.Symbols)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := get(t, srv.URL+"/stocks/MSFT/summary")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Symbol       string  `json:"symbol"`
		CurrentPrice float64 `json:"current_price"`
		High52w      float64 `json:"high_52w"`
		Low52w       float64 `json:"low_52w"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Symbol != "MSFT" || body.CurrentPrice <= 0 || body.High52w < body.Low52w {
		t.Errorf("summary = %+v", body)
	}
}

func TestPatternsEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := get(t, srv.URL+"/stocks/AAPL/patterns")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Symbol   string `json:"symbol"`
		Segments []struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
			Label string    `json:"label"`
		} `json:"segments"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Symbol != "AAPL" || len(body.Segments) == 0 {
		t.Errorf("patterns = %+v", body)
	}
	for _, seg := range body.Segments {
		switch seg.Label {
		case "UPTREND", "DOWNTREND", "CONSOLIDATION":
		default:
			t.Errorf("unexpected label %q", seg.Label)
		}
	}
}

func TestChartEndpoint(t *testing.T) {
	srv := testServer(t)
	resp := get(t, srv.URL+"/stocks/GOOGL/chart")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "GOOGL") {
		t.Error("chart page missing symbol")
	}
}

func TestUnknownSymbolIs404(t *testing.T) {
	srv := testServer(t)
	for _, path := range []string{
		"/stocks/TSLA/summary",
		"/stocks/TSLA/patterns",
		"/stocks/TSLA/chart",
	} {
		resp := get(t, srv.URL+path)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestIndexListsSymbols(t *testing.T) {
	srv := testServer(t)
	resp := get(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	html := string(body)
	for _, sym := range []string{"AAPL", "MSFT", "GOOGL"} {
		if !strings.Contains(html, sym) {
			t.Errorf("index missing %s", sym)
		}
	}
}
