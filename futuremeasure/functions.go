package futuremeasure

import (
	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/trade"
)

// QuotedPrice is a security price labelled by the security it belongs
// to.
type QuotedPrice struct {
	SecurityID string
	Value      float64
}

// UnitPriceFunction reports the current price of one contract.
type UnitPriceFunction struct{}

func (UnitPriceFunction) Requirements(t trade.IborFutureTrade) engine.FunctionRequirements {
	return quotedRequirements(t)
}

func (UnitPriceFunction) DefaultReportingCurrency(t trade.IborFutureTrade) (currency.Currency, bool) {
	return t.Security.Currency(), true
}

func (UnitPriceFunction) Execute(t trade.IborFutureTrade, md marketdata.Snapshot) (any, error) {
	price, err := currentPrice(t, md)
	if err != nil {
		return nil, err
	}
	return QuotedPrice{SecurityID: t.Security.SecurityID(), Value: price}, nil
}

// PresentValueFunction marks the position against its reference price.
// Futures settle daily, so no discounting applies.
type PresentValueFunction struct{}

func (PresentValueFunction) Requirements(t trade.IborFutureTrade) engine.FunctionRequirements {
	return quotedRequirements(t)
}

func (PresentValueFunction) DefaultReportingCurrency(t trade.IborFutureTrade) (currency.Currency, bool) {
	return t.Security.Currency(), true
}

func (PresentValueFunction) Execute(t trade.IborFutureTrade, md marketdata.Snapshot) (any, error) {
	price, err := currentPrice(t, md)
	if err != nil {
		return nil, err
	}
	sec := t.Security
	value := (price - t.Price) * sec.Notional() * sec.AccrualFactor() * t.Quantity
	return currency.MultiOf(currency.NewAmount(sec.Currency(), value)), nil
}

// ParSpreadFunction is the price spread between the current price and
// the trade's reference price.
type ParSpreadFunction struct{}

func (ParSpreadFunction) Requirements(t trade.IborFutureTrade) engine.FunctionRequirements {
	return quotedRequirements(t)
}

func (ParSpreadFunction) DefaultReportingCurrency(t trade.IborFutureTrade) (currency.Currency, bool) {
	return t.Security.Currency(), true
}

func (ParSpreadFunction) Execute(t trade.IborFutureTrade, md marketdata.Snapshot) (any, error) {
	price, err := currentPrice(t, md)
	if err != nil {
		return nil, err
	}
	return QuotedPrice{SecurityID: t.Security.SecurityID(), Value: price - t.Price}, nil
}
