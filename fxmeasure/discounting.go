package fxmeasure

import (
	"sort"
	"time"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/daycount"
	"github.com/openquant/calcengine/engine"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/trade"
)

// PresentValueFunction discounts each leg's cashflow to the valuation
// date. A trade whose payment date precedes valuation has no remaining
// cashflows and prices to an empty multi-currency amount.
type PresentValueFunction struct{}

func (PresentValueFunction) Requirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	return discountingRequirements(t)
}

func (PresentValueFunction) DefaultReportingCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return baseCurrency(t)
}

func (PresentValueFunction) Execute(t trade.FxSingleTrade, md marketdata.Snapshot) (any, error) {
	return presentValue(t, md)
}

// CurrencyExposureFunction reports the discounted value of each leg in
// its own currency. For a single FX exchange this coincides with the
// present value split by currency.
type CurrencyExposureFunction struct{}

func (CurrencyExposureFunction) Requirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	return discountingRequirements(t)
}

func (CurrencyExposureFunction) DefaultReportingCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return baseCurrency(t)
}

func (CurrencyExposureFunction) Execute(t trade.FxSingleTrade, md marketdata.Snapshot) (any, error) {
	return presentValue(t, md)
}

// Pv01Function computes the change in present value for a one basis
// point parallel shift of each discount curve, per currency.
type Pv01Function struct{}

func (Pv01Function) Requirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	return discountingRequirements(t)
}

func (Pv01Function) DefaultReportingCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return baseCurrency(t)
}

func (Pv01Function) Execute(t trade.FxSingleTrade, md marketdata.Snapshot) (any, error) {
	pay := t.Product.PaymentDate()
	if pay.Before(md.ValuationDate()) {
		return currency.EmptyMulti(), nil
	}
	out := currency.EmptyMulti()
	for _, leg := range []currency.Amount{t.Product.BaseAmount(), t.Product.CounterAmount()} {
		s, err := zeroRateSensitivity(leg, pay, md)
		if err != nil {
			return nil, err
		}
		out = out.Plus(currency.NewAmount(leg.Currency, s))
	}
	return out, nil
}

// PointSensitivity is a sensitivity attributed to a single cashflow
// date on a curve.
type PointSensitivity struct {
	Date  time.Time
	Value float64
}

// CurveSensitivity is the bucketed sensitivity of one curve, labelled
// by the curve's currency.
type CurveSensitivity struct {
	Curve         string
	Currency      currency.Currency
	Sensitivities []PointSensitivity
}

// BucketedPv01Function attributes the one basis point sensitivity to
// each cashflow date per discount curve.
type BucketedPv01Function struct{}

func (BucketedPv01Function) Requirements(t trade.FxSingleTrade) engine.FunctionRequirements {
	return discountingRequirements(t)
}

func (BucketedPv01Function) DefaultReportingCurrency(t trade.FxSingleTrade) (currency.Currency, bool) {
	return baseCurrency(t)
}

func (BucketedPv01Function) Execute(t trade.FxSingleTrade, md marketdata.Snapshot) (any, error) {
	pay := t.Product.PaymentDate()
	if pay.Before(md.ValuationDate()) {
		return []CurveSensitivity{}, nil
	}
	out := make([]CurveSensitivity, 0, 2)
	for _, leg := range []currency.Amount{t.Product.BaseAmount(), t.Product.CounterAmount()} {
		s, err := zeroRateSensitivity(leg, pay, md)
		if err != nil {
			return nil, err
		}
		out = append(out, CurveSensitivity{
			Curve:         "Discount/" + leg.Currency.String(),
			Currency:      leg.Currency,
			Sensitivities: []PointSensitivity{{Date: pay, Value: s}},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func presentValue(t trade.FxSingleTrade, md marketdata.Snapshot) (currency.MultiAmount, error) {
	pay := t.Product.PaymentDate()
	if pay.Before(md.ValuationDate()) {
		return currency.EmptyMulti(), nil
	}
	out := currency.EmptyMulti()
	for _, leg := range []currency.Amount{t.Product.BaseAmount(), t.Product.CounterAmount()} {
		df, err := md.DiscountFactors(leg.Currency)
		if err != nil {
			return currency.MultiAmount{}, err
		}
		out = out.Plus(leg.MultipliedBy(df.DF(pay)))
	}
	return out, nil
}

// zeroRateSensitivity is the cashflow's PV change for a 1bp zero-rate
// shift: d(a*e^(-rt))/dr * 1bp = -t * df * a * 1e-4.
func zeroRateSensitivity(leg currency.Amount, pay time.Time, md marketdata.Snapshot) (float64, error) {
	df, err := md.DiscountFactors(leg.Currency)
	if err != nil {
		return 0, err
	}
	tf, err := daycount.YearFraction(md.ValuationDate(), pay, daycount.Act365F)
	if err != nil {
		return 0, err
	}
	return -tf * df.DF(pay) * leg.Value * 1e-4, nil
}
