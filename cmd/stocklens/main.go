package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockLens/internal/analyzer"
	"StockLens/internal/config"
	"StockLens/internal/dataset"
	"StockLens/internal/report"
	"StockLens/internal/scheduler"
	"StockLens/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		cfgPath = flag.String("config", "", "path to YAML config (default configs/config.yaml)")
		mode    = flag.String("mode", "analyze", "analyze | serve | schedule | sample")
		symbol  = flag.String("symbol", "", "restrict analysis to one symbol")
		out     = flag.String("out", "all_stocks.csv", "sample mode: CSV output path")
		days    = flag.Int("days", 500, "sample mode: business days per symbol")
		seed    = flag.Int64("seed", 42, "sample mode: random seed")
	)
	flag.Parse()

	// .env is optional; real config comes from YAML + environment.
	_ = godotenv.Load()

	path := *cfgPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	switch *mode {
	case "sample":
		runSample(*out, *days, *seed)
	case "analyze":
		runAnalyze(cfg, *symbol)
	case "serve":
		runServe(cfg)
	case "schedule":
		runSchedule(cfg, *symbol)
	default:
		log.Fatalf("[FATAL] unknown mode %q", *mode)
	}
}

func runSample(out string, days int, seed int64) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := dataset.WriteSampleFile(out, dataset.DefaultSampleSpecs(), start, days, seed); err != nil {
		log.Fatalf("[FATAL] generate sample data: %v", err)
	}
	log.Printf("[INFO] sample dataset written to %s", out)
}

func runAnalyze(cfg *config.Config, symbol string) {
	if err := writeReports(cfg, symbol); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

// writeReports loads the dataset, analyzes the selected symbols, prints each
// text summary and writes one HTML report per symbol. Per-symbol failures
// are reported and skipped so one short series cannot sink the whole batch.
func writeReports(cfg *config.Config, symbol string) error {
	an, err := analyzer.Open(cfg.Dataset.CSVPath, analyzer.OptionsFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	writer, err := report.NewFileWriter(cfg.Report.OutputDir)
	if err != nil {
		return err
	}
	defer writer.Close()

	symbols := pickSymbols(cfg, symbol, an.Symbols())
	if len(symbols) == 0 {
		return errors.New("no symbols selected for analysis")
	}

	failed := 0
	for _, sym := range symbols {
		a, err := an.Analyze(sym)
		if err != nil {
			log.Printf("[ERROR] analyze %s: %v", sym, err)
			failed++
			continue
		}

		fmt.Println()
		fmt.Print(report.FormatSummary(a.Summary))
		fmt.Println("Patterns:")
		fmt.Print(report.FormatSegments(a.Segments))
		fmt.Println("Events:")
		fmt.Print(report.FormatEvents(a.Events))

		page := report.BuildChart(a.Series, a.Indicators)
		if _, err := writer.WriteChart(sym, page); err != nil {
			log.Printf("[ERROR] write report for %s: %v", sym, err)
			failed++
		}
	}
	if failed == len(symbols) {
		return fmt.Errorf("all %d symbol analyses failed", failed)
	}
	return nil
}

func runServe(cfg *config.Config) {
	an, err := analyzer.Open(cfg.Dataset.CSVPath, analyzer.OptionsFromConfig(cfg))
	if err != nil {
		log.Fatalf("[FATAL] load dataset: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(an).Router(),
	}

	go func() {
		log.Printf("[INFO] serving on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] serve: %v", err)
		}
	}()

	waitForSignal()
	log.Println("[INFO] shutdown signal received, stopping...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	log.Println("[INFO] stopped")
}

func runSchedule(cfg *config.Config, symbol string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, func(context.Context) error {
		return writeReports(cfg, symbol)
	})
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing reports now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockLens scheduler is running. Press Ctrl+C to stop.")
	waitForSignal()
	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
}

// pickSymbols chooses the analysis set: an explicit -symbol flag wins, then
// the configured list, then the first max_symbols of the dataset.
func pickSymbols(cfg *config.Config, symbol string, available []string) []string {
	if symbol != "" {
		return []string{symbol}
	}
	if len(cfg.Report.Symbols) > 0 {
		return cfg.Report.Symbols
	}
	if len(available) > cfg.Report.MaxSymbols {
		available = available[:cfg.Report.MaxSymbols]
	}
	return available
}

func waitForSignal() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
