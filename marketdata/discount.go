package marketdata

import (
	"math"
	"time"

	"github.com/openquant/calcengine/currency"
)

// DiscountFactors provides discount factors for one currency.
type DiscountFactors interface {
	Currency() currency.Currency
	// DF returns the discount factor from the valuation date to the
	// given date.
	DF(date time.Time) float64
}

// ConstantDiscountFactors applies the same factor to every date.
type ConstantDiscountFactors struct {
	ccy    currency.Currency
	factor float64
}

func NewConstantDiscountFactors(ccy currency.Currency, factor float64) ConstantDiscountFactors {
	return ConstantDiscountFactors{ccy: ccy, factor: factor}
}

func (d ConstantDiscountFactors) Currency() currency.Currency {
	return d.ccy
}

func (d ConstantDiscountFactors) DF(time.Time) float64 {
	return d.factor
}

// ZeroRateDiscountFactors derives factors from a flat continuously
// compounded zero rate on an ACT/365F basis.
type ZeroRateDiscountFactors struct {
	ccy           currency.Currency
	valuationDate time.Time
	zeroRate      float64
}

func NewZeroRateDiscountFactors(ccy currency.Currency, valuationDate time.Time, zeroRate float64) ZeroRateDiscountFactors {
	return ZeroRateDiscountFactors{ccy: ccy, valuationDate: valuationDate, zeroRate: zeroRate}
}

func (d ZeroRateDiscountFactors) Currency() currency.Currency {
	return d.ccy
}

func (d ZeroRateDiscountFactors) DF(date time.Time) float64 {
	t := date.Sub(d.valuationDate).Hours() / 24 / 365
	if t <= 0 {
		return 1
	}
	return math.Exp(-d.zeroRate * t)
}

// shiftedDiscountFactors applies a parallel zero-rate shift on top of a
// base curve. Used to derive scenario snapshots.
type shiftedDiscountFactors struct {
	base          DiscountFactors
	valuationDate time.Time
	shift         float64 // absolute zero-rate shift, e.g. 0.0001 for 1bp
}

// ShiftedDiscountFactors wraps a curve with a parallel zero-rate shift.
func ShiftedDiscountFactors(base DiscountFactors, valuationDate time.Time, shift float64) DiscountFactors {
	return shiftedDiscountFactors{base: base, valuationDate: valuationDate, shift: shift}
}

func (d shiftedDiscountFactors) Currency() currency.Currency {
	return d.base.Currency()
}

func (d shiftedDiscountFactors) DF(date time.Time) float64 {
	t := date.Sub(d.valuationDate).Hours() / 24 / 365
	if t <= 0 {
		return d.base.DF(date)
	}
	return d.base.DF(date) * math.Exp(-d.shift*t)
}
