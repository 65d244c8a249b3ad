package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/marketdata"
)

type marketDataFile struct {
	ValuationDate   string         `yaml:"valuation_date"`
	DiscountFactors []curveEntry   `yaml:"discount_factors,omitempty"`
	FxRates         []fxRateEntry  `yaml:"fx_rates,omitempty"`
	Quotes          []quoteEntry   `yaml:"quotes,omitempty"`
	Fixings         []fixingsEntry `yaml:"fixings,omitempty"`
}

type curveEntry struct {
	Currency string   `yaml:"currency"`
	// exactly one of Df and ZeroRate must be set
	Df       *float64 `yaml:"df,omitempty"`
	ZeroRate *float64 `yaml:"zero_rate,omitempty"`
}

type fxRateEntry struct {
	Pair string  `yaml:"pair"`
	Rate float64 `yaml:"rate"`
}

type quoteEntry struct {
	ID    string  `yaml:"id"`
	Value float64 `yaml:"value"`
}

type fixingsEntry struct {
	Index  string        `yaml:"index"`
	Points []fixingPoint `yaml:"points"`
}

type fixingPoint struct {
	Date  string  `yaml:"date"`
	Value float64 `yaml:"value"`
}

// LoadMarketData reads a YAML market-data file into a base snapshot.
func LoadMarketData(path string) (marketdata.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return marketdata.Snapshot{}, fmt.Errorf("read market data file: %w", err)
	}
	var mf marketDataFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return marketdata.Snapshot{}, fmt.Errorf("parse market data file: %w", err)
	}

	valDate, err := parseDate(mf.ValuationDate, "valuation_date")
	if err != nil {
		return marketdata.Snapshot{}, err
	}

	values := map[marketdata.Key]any{}
	for i, c := range mf.DiscountFactors {
		ccy, err := currency.Parse(c.Currency)
		if err != nil {
			return marketdata.Snapshot{}, fmt.Errorf("discount_factors[%d]: %w", i, err)
		}
		key := marketdata.DiscountFactorsKey{Currency: ccy}
		switch {
		case c.Df != nil && c.ZeroRate != nil:
			return marketdata.Snapshot{}, fmt.Errorf("discount_factors[%d]: set df or zero_rate, not both", i)
		case c.Df != nil:
			values[key] = marketdata.NewConstantDiscountFactors(ccy, *c.Df)
		case c.ZeroRate != nil:
			values[key] = marketdata.NewZeroRateDiscountFactors(ccy, valDate, *c.ZeroRate)
		default:
			return marketdata.Snapshot{}, fmt.Errorf("discount_factors[%d]: df or zero_rate is required", i)
		}
	}
	for i, fx := range mf.FxRates {
		pair, err := currency.ParsePair(fx.Pair)
		if err != nil {
			return marketdata.Snapshot{}, fmt.Errorf("fx_rates[%d]: %w", i, err)
		}
		rate, err := currency.NewFxRate(pair.Base, pair.Counter, fx.Rate)
		if err != nil {
			return marketdata.Snapshot{}, fmt.Errorf("fx_rates[%d]: %w", i, err)
		}
		values[marketdata.FxRateKey{Pair: pair}] = rate
	}
	for i, q := range mf.Quotes {
		if q.ID == "" {
			return marketdata.Snapshot{}, fmt.Errorf("quotes[%d]: id is required", i)
		}
		values[marketdata.QuoteKey{SecurityID: q.ID}] = q.Value
	}

	series := map[marketdata.Key]marketdata.LocalDateSeries{}
	for i, f := range mf.Fixings {
		if f.Index == "" {
			return marketdata.Snapshot{}, fmt.Errorf("fixings[%d]: index is required", i)
		}
		points := make([]marketdata.SeriesPoint, 0, len(f.Points))
		for j, p := range f.Points {
			d, err := parseDate(p.Date, fmt.Sprintf("fixings[%d].points[%d].date", i, j))
			if err != nil {
				return marketdata.Snapshot{}, err
			}
			points = append(points, marketdata.SeriesPoint{Date: d, Value: p.Value})
		}
		series[marketdata.FixingSeriesKey{Index: f.Index}] = marketdata.SeriesOf(points...)
	}

	return marketdata.NewSnapshot(valDate, values, series), nil
}
