package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Dataset struct {
		CSVPath string `yaml:"csv_path"`
	} `yaml:"dataset"`
	Report struct {
		OutputDir  string   `yaml:"output_dir"`
		Symbols    []string `yaml:"symbols"`     // empty = first max_symbols from the dataset
		MaxSymbols int      `yaml:"max_symbols"` // used when symbols is empty
	} `yaml:"report"`
	Indicators struct {
		SMAWindows      []int   `yaml:"sma_windows"`
		EMAWindows      []int   `yaml:"ema_windows"`
		RSIWindow       int     `yaml:"rsi_window"`
		MACDFast        int     `yaml:"macd_fast"`
		MACDSlow        int     `yaml:"macd_slow"`
		MACDSignal      int     `yaml:"macd_signal"`
		BollingerWindow int     `yaml:"bollinger_window"`
		BollingerStdDev float64 `yaml:"bollinger_stddev"`
	} `yaml:"indicators"`
	Pattern struct {
		Lookback           int     `yaml:"lookback"`
		UptrendThreshold   float64 `yaml:"uptrend_threshold"`
		DowntrendThreshold float64 `yaml:"downtrend_threshold"`
		FlatVolatility     float64 `yaml:"flat_volatility"`
	} `yaml:"pattern"`
	Summary struct {
		RangeWindow      int `yaml:"range_window"`
		VolumeWindow     int `yaml:"volume_window"`
		VolatilityWindow int `yaml:"volatility_window"`
	} `yaml:"summary"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults
// describe a complete working setup.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKLENS_CSV_PATH"); v != "" {
		cfg.Dataset.CSVPath = v
	}
	if v := os.Getenv("STOCKLENS_OUTPUT_DIR"); v != "" {
		cfg.Report.OutputDir = v
	}
	if v := os.Getenv("STOCKLENS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("STOCKLENS_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("STOCKLENS_MAX_SYMBOLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Report.MaxSymbols = n
		}
	}

	// Defaults
	if cfg.Dataset.CSVPath == "" {
		cfg.Dataset.CSVPath = "all_stocks.csv"
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = "output"
	}
	if cfg.Report.MaxSymbols == 0 {
		cfg.Report.MaxSymbols = 5
	}
	if len(cfg.Indicators.SMAWindows) == 0 {
		cfg.Indicators.SMAWindows = []int{20, 50, 200}
	}
	if len(cfg.Indicators.EMAWindows) == 0 {
		cfg.Indicators.EMAWindows = []int{20, 50}
	}
	if cfg.Indicators.RSIWindow == 0 {
		cfg.Indicators.RSIWindow = 14
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = 12
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = 26
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 9
	}
	if cfg.Indicators.BollingerWindow == 0 {
		cfg.Indicators.BollingerWindow = 20
	}
	if cfg.Indicators.BollingerStdDev == 0 {
		cfg.Indicators.BollingerStdDev = 2.0
	}
	if cfg.Pattern.Lookback == 0 {
		cfg.Pattern.Lookback = 10
	}
	if cfg.Pattern.UptrendThreshold == 0 {
		cfg.Pattern.UptrendThreshold = 0.05
	}
	if cfg.Pattern.DowntrendThreshold == 0 {
		cfg.Pattern.DowntrendThreshold = 0.05
	}
	if cfg.Pattern.FlatVolatility == 0 {
		cfg.Pattern.FlatVolatility = 0.01
	}
	if cfg.Summary.RangeWindow == 0 {
		cfg.Summary.RangeWindow = 252
	}
	if cfg.Summary.VolumeWindow == 0 {
		cfg.Summary.VolumeWindow = 30
	}
	if cfg.Summary.VolatilityWindow == 0 {
		cfg.Summary.VolatilityWindow = 30
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Schedule.RefreshCron == "" {
		// Weekdays at 18:00 local, after market close.
		cfg.Schedule.RefreshCron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Dataset.CSVPath == "" {
		return fmt.Errorf("dataset.csv_path is required")
	}
	for _, w := range c.Indicators.SMAWindows {
		if w <= 0 {
			return fmt.Errorf("indicators.sma_windows must be positive, got %d", w)
		}
	}
	for _, w := range c.Indicators.EMAWindows {
		if w <= 0 {
			return fmt.Errorf("indicators.ema_windows must be positive, got %d", w)
		}
	}
	if c.Indicators.RSIWindow <= 0 {
		return fmt.Errorf("indicators.rsi_window must be positive")
	}
	if c.Indicators.MACDSlow <= c.Indicators.MACDFast {
		return fmt.Errorf("indicators.macd_slow must be greater than macd_fast")
	}
	if c.Pattern.Lookback <= 0 {
		return fmt.Errorf("pattern.lookback must be positive")
	}
	if c.Pattern.UptrendThreshold <= 0 || c.Pattern.DowntrendThreshold <= 0 {
		return fmt.Errorf("pattern trend thresholds must be positive")
	}
	if c.Pattern.FlatVolatility <= 0 {
		return fmt.Errorf("pattern.flat_volatility must be positive")
	}
	if c.Report.MaxSymbols <= 0 {
		return fmt.Errorf("report.max_symbols must be positive")
	}
	return nil
}
