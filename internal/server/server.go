// Package server exposes the per-symbol analyses over HTTP: the symbol
// list, summary and pattern JSON, and the rendered chart page.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"StockLens/internal/analyzer"
	"StockLens/internal/model"
)

// Server serves analyses for one loaded dataset. The analyzer is immutable,
// so handlers need no locking.
type Server struct {
	an *analyzer.Analyzer
}

// New creates a Server over an analyzer.
func New(an *analyzer.Analyzer) *Server {
	return &Server{an: an}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/symbols", s.handleSymbols)
	r.Route("/stocks/{symbol}", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/patterns", s.handlePatterns)
		r.Get("/chart", s.handleChart)
	})
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>StockLens</title></head><body>")
	b.WriteString("<h1>StockLens</h1><ul>")
	for _, sym := range s.an.Symbols() {
		b.WriteString(fmt.Sprintf(
			`<li>%s &mdash; <a href="/stocks/%s/chart">chart</a> | <a href="/stocks/%s/summary">summary</a> | <a href="/stocks/%s/patterns">patterns</a></li>`,
			sym, sym, sym, sym))
	}
	b.WriteString("</ul></body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, b.String())
}

func (s *Server) handleSymbols(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"symbols": s.an.Symbols()})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	sum, err := s.an.GetStockSummary(symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	a, err := s.an.Analyze(symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"symbol":   symbol,
		"segments": a.Segments,
		"events":   a.Events,
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	page, err := s.an.PlotStockTrend(symbol)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("[ERROR] render chart for %s: %v", symbol, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	var notFound *model.SymbolNotFoundError
	var tooShort *model.InsufficientDataError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &tooShort):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
