package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openquant/calcengine/config"
	"github.com/openquant/calcengine/futuremeasure"
	"github.com/openquant/calcengine/fxmeasure"
	"github.com/openquant/calcengine/measure"
)

var measuresCmd = &cobra.Command{
	Use:   "measures",
	Short: "List the measures supported for each trade in a portfolio",
	Long: `List every measure the engine can compute for each trade in a
portfolio file. Trades whose runtime shape restricts a measure (for
example futures without a booked price) show only the measures that
actually apply.

Example:
  calcrun measures -p examples/configs/portfolio.yaml`,
	RunE: runMeasures,
}

var measuresPortfolioPath string

func init() {
	rootCmd.AddCommand(measuresCmd)

	measuresCmd.Flags().StringVarP(&measuresPortfolioPath, "portfolio", "p", "", "path to portfolio file (required)")
	measuresCmd.MarkFlagRequired("portfolio")
}

func runMeasures(cmd *cobra.Command, args []string) error {
	portfolio, err := config.LoadPortfolio(measuresPortfolioPath)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	fxGroup := fxmeasure.DiscountingGroup()
	for _, t := range portfolio.FxTrades {
		printMeasures(t.Info.ID(), "fx_single", fxGroup.ConfiguredMeasures(t))
	}

	futGroup := futuremeasure.QuotedGroup()
	for _, t := range portfolio.FutureTrades {
		printMeasures(t.Info.ID(), "ibor_future", futGroup.ConfiguredMeasures(t))
	}

	return nil
}

func printMeasures(tradeID, kind string, measures []measure.Measure) {
	names := make([]string, len(measures))
	for i, m := range measures {
		names[i] = m.String()
	}
	fmt.Printf("%-12s %-12s %s\n", tradeID, kind, strings.Join(names, ", "))
}
