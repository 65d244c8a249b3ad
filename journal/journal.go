// Package journal persists calculation run results.
package journal

import "time"

// RunRecord describes one calculation run.
type RunRecord struct {
	RunID             string
	StartedAt         time.Time
	ReportingCurrency string
	Scenarios         int
	PortfolioFile     string
}

// ResultRecord is one (trade, measure, scenario) outcome. Currency and
// Amount are set for currency-valued results; Detail carries the
// textual form of non-currency results or the error message for failed
// evaluations.
type ResultRecord struct {
	RunID      string
	TradeID    string
	Measure    string
	Scenario   string
	Currency   string
	Amount     float64
	Status     string // "ok" or "error"
	Detail     string
	ComputedAt time.Time
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Journal records run metadata and per-evaluation results.
type Journal interface {
	RecordRun(RunRecord) error
	RecordResult(ResultRecord) error
	Close() error
}

// Discard is a Journal that keeps nothing.
type Discard struct{}

func (Discard) RecordRun(RunRecord) error       { return nil }
func (Discard) RecordResult(ResultRecord) error { return nil }
func (Discard) Close() error                    { return nil }
