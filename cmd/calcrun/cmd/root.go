package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "calcrun",
	Short: "A measure calculation engine for financial portfolios",
	Long: `Calcrun computes risk and valuation measures for portfolios of trades.

It provides tools for:
  - Computing measures (present value, PV01, currency exposure, ...) per trade
  - Running scenario sets with perturbed market data
  - Converting results into a common reporting currency
  - Recording per-run results in a SQLite or CSV journal`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
