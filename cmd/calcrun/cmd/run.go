package cmd

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openquant/calcengine/config"
	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/futuremeasure"
	"github.com/openquant/calcengine/fxmeasure"
	"github.com/openquant/calcengine/id"
	"github.com/openquant/calcengine/journal"
	"github.com/openquant/calcengine/logger"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/measure"
	"github.com/openquant/calcengine/trade"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute configured measures for a portfolio",
	Long: `Compute the configured measures for every trade in a portfolio, over
the configured scenario set, and record the results in the journal.

The config file names the portfolio, the market data snapshot, the
measures to compute and the scenario perturbations to apply.

Example:
  calcrun run -f examples/configs/basic.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	portfolio, err := config.LoadPortfolio(cfg.Run.PortfolioFile)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}
	base, err := config.LoadMarketData(cfg.Run.MarketDataFile)
	if err != nil {
		return fmt.Errorf("load market data: %w", err)
	}

	measures, err := cfg.ParsedMeasures()
	if err != nil {
		return fmt.Errorf("parse measures: %w", err)
	}

	defs := cfg.ScenarioDefinitions()
	snapshots := marketdata.ScenarioSnapshots(base, defs)
	reporting := cfg.ReportingCurrency()

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	runID := id.NewRunID()
	log := logger.WithComponent("run").WithField("run_id", runID)

	if err := j.RecordRun(journal.RunRecord{
		RunID:             runID,
		StartedAt:         time.Now().UTC(),
		ReportingCurrency: reporting.String(),
		Scenarios:         len(snapshots),
		PortfolioFile:     cfg.Run.PortfolioFile,
	}); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	log.WithFields(logger.Fields{
		"trades":    portfolio.Size(),
		"measures":  len(measures),
		"scenarios": len(snapshots),
	}).Info("starting calculation run")

	fmt.Printf("Run %s\n", runID)
	fmt.Printf("  Valuation date: %s\n", base.ValuationDate().Format("2006-01-02"))
	fmt.Printf("  Trades: %d, Measures: %d, Scenarios: %d\n\n", portfolio.Size(), len(measures), len(snapshots))

	run := runState{
		journal:   j,
		runID:     runID,
		measures:  measures,
		snapshots: snapshots,
		defs:      defs,
		reporting: reporting,
	}

	fxRunner := engine.Runner[trade.FxSingleTrade]{Group: fxmeasure.DiscountingGroup(), Workers: cfg.Run.Workers}
	for _, t := range portfolio.FxTrades {
		evaluateTrade(&run, fxRunner, t, t.Info.ID())
	}

	futRunner := engine.Runner[trade.IborFutureTrade]{Group: futuremeasure.QuotedGroup(), Workers: cfg.Run.Workers}
	for _, t := range portfolio.FutureTrades {
		evaluateTrade(&run, futRunner, t, t.Info.ID())
	}

	log.WithFields(logger.Fields{"ok": run.ok, "failed": run.failed}).Info("calculation run complete")

	fmt.Printf("\nDone: %d evaluations ok, %d failed\n", run.ok, run.failed)
	switch cfg.Journal.Type {
	case "sqlite":
		fmt.Printf("Results saved to: %s\n", cfg.Journal.DBPath)
	case "csv":
		fmt.Printf("Results saved to: %s\n", cfg.Journal.ResultsFile)
	}

	if run.failed > 0 {
		return fmt.Errorf("%d evaluations failed", run.failed)
	}
	return nil
}

// runState carries the per-run context shared by every evaluation.
type runState struct {
	journal   journal.Journal
	runID     string
	measures  []measure.Measure
	snapshots []marketdata.Snapshot
	defs      []marketdata.ScenarioDefinition
	reporting currency.Currency

	ok     int
	failed int
}

// evaluateTrade runs every configured measure for one trade. A failed
// measure is journaled and logged but never aborts the run.
func evaluateTrade[T any](run *runState, r engine.Runner[T], t T, tradeID string) {
	log := logger.WithComponent("run").WithFields(logger.Fields{"run_id": run.runID, "trade": tradeID})

	supported := map[measure.Measure]bool{}
	for _, m := range r.Group.ConfiguredMeasures(t) {
		supported[m] = true
	}

	for _, m := range run.measures {
		if !supported[m] {
			continue
		}

		results, err := r.Run(t, m, run.snapshots, run.reporting)
		if err != nil {
			run.failed++
			log.WithField("measure", m.String()).WithError(err).Warn("evaluation failed")
			fmt.Printf("  %-12s %-16s FAILED: %v\n", tradeID, m, err)
			recordFailure(run, tradeID, m, err)
			continue
		}

		run.ok++
		recordResults(run, tradeID, m, results)
		printResults(tradeID, m, run.defs, results)
	}
}

func recordFailure(run *runState, tradeID string, m measure.Measure, err error) {
	rec := journal.ResultRecord{
		RunID:      run.runID,
		TradeID:    tradeID,
		Measure:    m.String(),
		Status:     journal.StatusError,
		Detail:     err.Error(),
		ComputedAt: time.Now().UTC(),
	}
	if jerr := run.journal.RecordResult(rec); jerr != nil {
		logger.WithComponent("journal").WithError(jerr).Error("record failure")
	}
}

func recordResults(run *runState, tradeID string, m measure.Measure, results engine.ScenarioResults) {
	now := time.Now().UTC()
	for i := 0; i < results.Len(); i++ {
		v, err := results.Value(i)
		if err != nil {
			continue
		}
		for _, rec := range resultRecords(v) {
			rec.RunID = run.runID
			rec.TradeID = tradeID
			rec.Measure = m.String()
			rec.Scenario = run.defs[i].Name
			rec.Status = journal.StatusOK
			rec.ComputedAt = now
			if jerr := run.journal.RecordResult(rec); jerr != nil {
				logger.WithComponent("journal").WithError(jerr).Error("record result")
			}
		}
	}
}

// resultRecords flattens one scenario value into journal rows. Currency
// amounts fill the currency and amount columns; anything else is kept
// as its textual form.
func resultRecords(v any) []journal.ResultRecord {
	switch val := v.(type) {
	case currency.Amount:
		return []journal.ResultRecord{{Currency: val.Currency.String(), Amount: val.Value}}
	case currency.MultiAmount:
		var out []journal.ResultRecord
		for _, a := range val.Amounts() {
			out = append(out, journal.ResultRecord{Currency: a.Currency.String(), Amount: a.Value})
		}
		if len(out) == 0 {
			out = append(out, journal.ResultRecord{Detail: "empty"})
		}
		return out
	default:
		return []journal.ResultRecord{{Detail: fmt.Sprintf("%v", v)}}
	}
}

func printResults(tradeID string, m measure.Measure, defs []marketdata.ScenarioDefinition, results engine.ScenarioResults) {
	for i := 0; i < results.Len(); i++ {
		v, err := results.Value(i)
		if err != nil {
			continue
		}
		fmt.Printf("  %-12s %-16s %-10s %v\n", tradeID, m, defs[i].Name, v)
	}
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	case "csv":
		return journal.NewCSV(cfg.ResultsFile)
	default:
		return journal.Discard{}, nil
	}
}
