package trade

import (
	"fmt"
	"time"

	"github.com/openquant/calcengine/currency"
)

// IborFuture is a short-term interest rate future security. Prices
// quote as 1 - rate, so a 4% rate quotes at 0.96.
type IborFuture struct {
	securityID    string
	ccy           currency.Currency
	notional      float64
	accrualFactor float64
	lastTradeDate time.Time
	rateIndex     string
}

// IborFutureBuilder is a plain mutable struct consumed once by Build.
type IborFutureBuilder struct {
	SecurityID    string
	Currency      currency.Currency
	Notional      float64
	AccrualFactor float64
	LastTradeDate time.Time
	RateIndex     string
}

func (b IborFutureBuilder) Build() (IborFuture, error) {
	if b.SecurityID == "" {
		return IborFuture{}, fmt.Errorf("future security id is required")
	}
	if b.Currency == "" {
		return IborFuture{}, fmt.Errorf("future currency is required")
	}
	if b.Notional <= 0 {
		return IborFuture{}, fmt.Errorf("future notional must be positive, got %g", b.Notional)
	}
	if b.AccrualFactor <= 0 {
		return IborFuture{}, fmt.Errorf("future accrual factor must be positive, got %g", b.AccrualFactor)
	}
	if b.LastTradeDate.IsZero() {
		return IborFuture{}, fmt.Errorf("future last trade date is required")
	}
	if b.RateIndex == "" {
		return IborFuture{}, fmt.Errorf("future rate index is required")
	}
	return IborFuture{
		securityID:    b.SecurityID,
		ccy:           b.Currency,
		notional:      b.Notional,
		accrualFactor: b.AccrualFactor,
		lastTradeDate: b.LastTradeDate,
		rateIndex:     b.RateIndex,
	}, nil
}

func (f IborFuture) SecurityID() string {
	return f.securityID
}

func (f IborFuture) Currency() currency.Currency {
	return f.ccy
}

func (f IborFuture) Notional() float64 {
	return f.notional
}

func (f IborFuture) AccrualFactor() float64 {
	return f.accrualFactor
}

func (f IborFuture) LastTradeDate() time.Time {
	return f.lastTradeDate
}

func (f IborFuture) RateIndex() string {
	return f.rateIndex
}

// IborFutureTrade is a position in a future: a signed quantity of
// contracts at a reference trade price. Price may be zero for positions
// without a booked reference price; price-relative measures do not apply
// to those.
type IborFutureTrade struct {
	Info     Info
	Security IborFuture
	Quantity float64
	Price    float64
}
