package trade

import (
	"fmt"
	"math"
	"time"

	"github.com/openquant/calcengine/currency"
)

// FxSingle is a single FX exchange: one amount paid and one received on
// the same payment date, in two different currencies. The two amounts
// carry opposite signs.
type FxSingle struct {
	baseAmount    currency.Amount
	counterAmount currency.Amount
	paymentDate   time.Time
}

// NewFxSingle validates and builds the product. The base amount's
// currency is the pair's base; amounts must be in distinct currencies
// and have opposite signs.
func NewFxSingle(baseAmount, counterAmount currency.Amount, paymentDate time.Time) (FxSingle, error) {
	if baseAmount.Currency == counterAmount.Currency {
		return FxSingle{}, fmt.Errorf("fx single requires two currencies, got %s twice", baseAmount.Currency)
	}
	if baseAmount.Value == 0 || counterAmount.Value == 0 {
		return FxSingle{}, fmt.Errorf("fx single amounts must be non-zero")
	}
	if baseAmount.Value*counterAmount.Value > 0 {
		return FxSingle{}, fmt.Errorf("fx single amounts must have opposite signs, got %s and %s",
			baseAmount, counterAmount)
	}
	if paymentDate.IsZero() {
		return FxSingle{}, fmt.Errorf("fx single payment date is required")
	}
	return FxSingle{
		baseAmount:    baseAmount,
		counterAmount: counterAmount,
		paymentDate:   paymentDate,
	}, nil
}

func (f FxSingle) BaseAmount() currency.Amount {
	return f.baseAmount
}

func (f FxSingle) CounterAmount() currency.Amount {
	return f.counterAmount
}

func (f FxSingle) PaymentDate() time.Time {
	return f.paymentDate
}

// Pair returns the currency pair, base first.
func (f FxSingle) Pair() currency.Pair {
	return currency.NewPair(f.baseAmount.Currency, f.counterAmount.Currency)
}

// Rate returns the implied exchange rate: counter units per base unit.
func (f FxSingle) Rate() float64 {
	return math.Abs(f.counterAmount.Value / f.baseAmount.Value)
}

// FxSingleTrade pairs trade attributes with an FxSingle product.
type FxSingleTrade struct {
	Info    Info
	Product FxSingle
}
