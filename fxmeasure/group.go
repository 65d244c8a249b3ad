// Package fxmeasure implements the calculation functions for single FX
// trades: present value and risk measures computed by discounting each
// leg's cashflow.
package fxmeasure

import (
	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/measure"
	"github.com/openquant/calcengine/trade"
)

// DiscountingGroup returns the function group for FX single trades
// priced by discounting. The mapping is complete at construction; each
// measure has exactly one function.
func DiscountingGroup() engine.FunctionGroup[trade.FxSingleTrade] {
	return engine.NewFunctionGroup("FxSingle/Discounting", map[measure.Measure]engine.FunctionConfig[trade.FxSingleTrade]{
		measure.PresentValue:     fxConfig(func() engine.CalculationFunction[trade.FxSingleTrade] { return PresentValueFunction{} }),
		measure.CurrencyExposure: fxConfig(func() engine.CalculationFunction[trade.FxSingleTrade] { return CurrencyExposureFunction{} }),
		measure.Pv01:             fxConfig(func() engine.CalculationFunction[trade.FxSingleTrade] { return Pv01Function{} }),
		measure.BucketedPv01:     fxConfig(func() engine.CalculationFunction[trade.FxSingleTrade] { return BucketedPv01Function{} }),
		measure.ParSpread:        fxConfig(func() engine.CalculationFunction[trade.FxSingleTrade] { return ParSpreadFunction{} }),
		measure.ForwardFxRate:    fxConfig(func() engine.CalculationFunction[trade.FxSingleTrade] { return ForwardFxRateFunction{} }),
	})
}

func fxConfig(factory func() engine.CalculationFunction[trade.FxSingleTrade]) engine.FunctionConfig[trade.FxSingleTrade] {
	return engine.NewFunctionConfig(factory)
}

// discountingRequirements declares the discount factors for both legs.
// Both currencies are output currencies; netting them is the
// aggregator's job, not the function's.
func discountingRequirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	pair := t.Product.Pair()
	return engine.NewRequirements(
		[]marketdata.Key{
			marketdata.DiscountFactorsKey{Currency: pair.Base},
			marketdata.DiscountFactorsKey{Currency: pair.Counter},
		},
		nil,
		[]currency.Currency{pair.Base, pair.Counter},
	)
}

// forwardRequirements additionally needs the spot rate for the pair.
func forwardRequirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	pair := t.Product.Pair()
	return discountingRequirements(t).Merge(engine.NewRequirements(
		[]marketdata.Key{marketdata.FxRateKey{Pair: pair}},
		nil,
		nil,
	))
}

func baseCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return t.Product.BaseAmount().Currency, true
}
