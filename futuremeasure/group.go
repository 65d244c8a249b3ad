// Package futuremeasure implements the calculation functions for rate
// future trades, priced from market quotes with settlement through
// index fixings after the last trade date.
package futuremeasure

import (
	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/measure"
	"github.com/openquant/calcengine/trade"
)

// QuotedGroup returns the function group for Ibor future trades priced
// off quoted prices. Price-relative measures only apply to trades with
// a booked reference price.
func QuotedGroup() engine.FunctionGroup[trade.IborFutureTrade] {
	hasPrice := func(t trade.IborFutureTrade) bool { return t.Price > 0 }

	return engine.NewFunctionGroup("IborFuture/Quoted", map[measure.Measure]engine.FunctionConfig[trade.IborFutureTrade]{
		measure.UnitPrice: engine.NewFunctionConfig(func() engine.CalculationFunction[trade.IborFutureTrade] {
			return UnitPriceFunction{}
		}),
		measure.PresentValue: engine.NewFunctionConfig(func() engine.CalculationFunction[trade.IborFutureTrade] {
			return PresentValueFunction{}
		}).WithApplicability(hasPrice),
		measure.ParSpread: engine.NewFunctionConfig(func() engine.CalculationFunction[trade.IborFutureTrade] {
			return ParSpreadFunction{}
		}).WithApplicability(hasPrice),
	})
}

// quotedRequirements declares the security quote and, for settlement
// after the last trade date, the index fixing series.
func quotedRequirements(t trade.IborFutureTrade) engine.FunctionRequirements {
	return engine.NewRequirements(
		[]marketdata.Key{marketdata.QuoteKey{SecurityID: t.Security.SecurityID()}},
		[]marketdata.Key{marketdata.FixingSeriesKey{Index: t.Security.RateIndex()}},
		[]currency.Currency{t.Security.Currency()},
	)
}

// currentPrice resolves the future's price: the market quote while the
// contract still trades, or the settlement price 1 - fixing once the
// last trade date has passed.
func currentPrice(t trade.IborFutureTrade, md marketdata.Snapshot) (float64, error) {
	last := t.Security.LastTradeDate()
	if md.ValuationDate().After(last) {
		fixKey := marketdata.FixingSeriesKey{Index: t.Security.RateIndex()}
		ts, err := md.TimeSeries(fixKey)
		if err != nil {
			return 0, err
		}
		fixing, ok := ts.Value(last)
		if !ok {
			return 0, marketdata.MissingDataError{Key: fixKey}
		}
		return 1 - fixing, nil
	}
	return md.Quote(t.Security.SecurityID())
}
