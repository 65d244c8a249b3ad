package fxmeasure

import (
	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/trade"
)

// Spread is a dimensionless rate spread labelled by the pair it applies
// to.
type Spread struct {
	Pair  currency.Pair
	Value float64
}

// ForwardFxRateFunction projects the forward rate for the trade's pair
// at its payment date from spot and the two discount curves.
type ForwardFxRateFunction struct{}

func (ForwardFxRateFunction) Requirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	return forwardRequirements(t)
}

func (ForwardFxRateFunction) DefaultReportingCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return baseCurrency(t)
}

func (ForwardFxRateFunction) Execute(t trade.FxSingleTrade, md marketdata.Snapshot) (any, error) {
	fwd, err := forwardRate(t, md)
	if err != nil {
		return nil, err
	}
	return currency.FxRate{Pair: t.Product.Pair(), Rate: fwd}, nil
}

// ParSpreadFunction computes the rate spread between the forward rate
// and the rate the trade was struck at. A zero spread means the trade
// has zero present value.
type ParSpreadFunction struct{}

func (ParSpreadFunction) Requirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	return forwardRequirements(t)
}

func (ParSpreadFunction) DefaultReportingCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return baseCurrency(t)
}

func (ParSpreadFunction) Execute(t trade.FxSingleTrade, md marketdata.Snapshot) (any, error) {
	fwd, err := forwardRate(t, md)
	if err != nil {
		return nil, err
	}
	spread := fwd - t.Product.Rate()
	// a trade paying the counter currency is long the base at the
	// struck rate; the spread flips with direction
	if t.Product.BaseAmount().Value < 0 {
		spread = -spread
	}
	return Spread{Pair: t.Product.Pair(), Value: spread}, nil
}

// forwardRate applies covered interest parity:
// forward = spot * dfBase / dfCounter at the payment date.
func forwardRate(t trade.FxSingleTrade, md marketdata.Snapshot) (float64, error) {
	pair := t.Product.Pair()
	spot, err := md.FxRate(pair.Base, pair.Counter)
	if err != nil {
		return 0, err
	}
	dfBase, err := md.DiscountFactors(pair.Base)
	if err != nil {
		return 0, err
	}
	dfCounter, err := md.DiscountFactors(pair.Counter)
	if err != nil {
		return 0, err
	}
	pay := t.Product.PaymentDate()
	return spot * dfBase.DF(pay) / dfCounter.DF(pay), nil
}
