// Package config loads and validates the files describing a
// calculation run: the run configuration, the trade portfolio and the
// base market-data snapshot.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/measure"
)

// Config is the complete configuration of a calculation run.
type Config struct {
	Run       RunConfig        `json:"run" yaml:"run"`
	Scenarios []ScenarioConfig `json:"scenarios,omitempty" yaml:"scenarios,omitempty"`
	Journal   JournalConfig    `json:"journal" yaml:"journal"`
	Log       LogConfig        `json:"log" yaml:"log"`
}

// RunConfig selects what to compute and over which inputs.
type RunConfig struct {
	// ReportingCurrency forces conversion of all results. Empty means
	// each function's default reporting currency applies.
	ReportingCurrency string   `json:"reporting_currency,omitempty" yaml:"reporting_currency,omitempty"`
	Measures          []string `json:"measures" yaml:"measures"`
	PortfolioFile     string   `json:"portfolio_file" yaml:"portfolio_file"`
	MarketDataFile    string   `json:"market_data_file" yaml:"market_data_file"`
	Workers           int      `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// ScenarioConfig perturbs the base snapshot for one scenario.
type ScenarioConfig struct {
	Name            string  `json:"name" yaml:"name"`
	DiscountShiftBp float64 `json:"discount_shift_bp,omitempty" yaml:"discount_shift_bp,omitempty"`
	FxShiftPct      float64 `json:"fx_shift_pct,omitempty" yaml:"fx_shift_pct,omitempty"`
}

// JournalConfig selects where results are persisted.
type JournalConfig struct {
	Type        string `json:"type" yaml:"type"` // "sqlite", "csv" or "none"
	DBPath      string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	ResultsFile string `json:"results_file,omitempty" yaml:"results_file,omitempty"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
}

// LoadFromFile loads configuration from a YAML file, falling back to
// JSON, and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Run.Measures) == 0 {
		return fmt.Errorf("run.measures must name at least one measure")
	}
	for _, m := range c.Run.Measures {
		if _, err := measure.Parse(m); err != nil {
			return fmt.Errorf("run.measures: %w", err)
		}
	}
	if c.Run.ReportingCurrency != "" {
		if _, err := currency.Parse(c.Run.ReportingCurrency); err != nil {
			return fmt.Errorf("run.reporting_currency: %w", err)
		}
	}
	if c.Run.PortfolioFile == "" {
		return fmt.Errorf("run.portfolio_file is required")
	}
	if c.Run.MarketDataFile == "" {
		return fmt.Errorf("run.market_data_file is required")
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("run.workers must not be negative")
	}
	names := map[string]bool{}
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenarios[%d].name is required", i)
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		names[s.Name] = true
	}
	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite journal")
		}
	case "csv":
		if c.Journal.ResultsFile == "" {
			return fmt.Errorf("journal.results_file required for csv journal")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv' or 'none'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Measures:       []string{measure.PresentValue.String()},
			PortfolioFile:  "./portfolio.yaml",
			MarketDataFile: "./marketdata.yaml",
		},
		Scenarios: []ScenarioConfig{{Name: "base"}},
		Journal:   JournalConfig{Type: "none"},
		Log:       LogConfig{Level: "info"},
	}
}

// ScenarioDefinitions translates configured scenarios into market-data
// perturbations. With no scenarios configured, a single unperturbed
// base scenario is assumed.
func (c *Config) ScenarioDefinitions() []marketdata.ScenarioDefinition {
	if len(c.Scenarios) == 0 {
		return []marketdata.ScenarioDefinition{{Name: "base"}}
	}
	out := make([]marketdata.ScenarioDefinition, len(c.Scenarios))
	for i, s := range c.Scenarios {
		out[i] = marketdata.ScenarioDefinition{
			Name:            s.Name,
			DiscountShiftBp: s.DiscountShiftBp,
			FxShiftPct:      s.FxShiftPct,
		}
	}
	return out
}

// ParsedMeasures returns the configured measure list as typed measures.
func (c *Config) ParsedMeasures() ([]measure.Measure, error) {
	out := make([]measure.Measure, 0, len(c.Run.Measures))
	for _, name := range c.Run.Measures {
		m, err := measure.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ReportingCurrency returns the forced reporting currency, or "" when
// defaults apply.
func (c *Config) ReportingCurrency() currency.Currency {
	if c.Run.ReportingCurrency == "" {
		return ""
	}
	ccy, err := currency.Parse(c.Run.ReportingCurrency)
	if err != nil {
		return ""
	}
	return ccy
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date %q (want YYYY-MM-DD)", field, s)
	}
	return t, nil
}
