package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openquant/calcengine/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded calculation runs",
	Long: `Query and display run results from a SQLite journal.

Subcommands:
  run      - Show a run and all of its results
  failures - Show only the failed evaluations of a run

Examples:
  calcrun journal run <run-id>
  calcrun journal failures <run-id>`,
}

var journalRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "Show a run and its results",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRun,
}

var journalFailuresCmd = &cobra.Command{
	Use:   "failures <run-id>",
	Short: "Show failed evaluations of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalFailures,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunCmd)
	journalCmd.AddCommand(journalFailuresCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./calcrun.sqlite", "path to SQLite journal DB")
}

func runJournalRun(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	ctx := cmd.Context()
	runID := args[0]

	run, err := j.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Printf("Run %s\n", run.RunID)
	fmt.Printf("  Started: %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Reporting currency: %s\n", orDash(run.ReportingCurrency))
	fmt.Printf("  Scenarios: %d\n", run.Scenarios)
	fmt.Printf("  Portfolio: %s\n\n", run.PortfolioFile)

	results, err := j.ListResultsByRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("query results: %w", err)
	}
	printRecords(results)
	return nil
}

func runJournalFailures(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	failures, err := j.ListFailuresByRun(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("query failures: %w", err)
	}
	if len(failures) == 0 {
		fmt.Println("No failures recorded")
		return nil
	}
	printRecords(failures)
	return nil
}

func printRecords(recs []journal.ResultRecord) {
	for _, r := range recs {
		if r.Status == journal.StatusError {
			fmt.Printf("  %-12s %-16s %-10s FAILED: %s\n", r.TradeID, r.Measure, r.Scenario, r.Detail)
			continue
		}
		if r.Currency != "" {
			fmt.Printf("  %-12s %-16s %-10s %s %.4f\n", r.TradeID, r.Measure, r.Scenario, r.Currency, r.Amount)
		} else {
			fmt.Printf("  %-12s %-16s %-10s %s\n", r.TradeID, r.Measure, r.Scenario, r.Detail)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
