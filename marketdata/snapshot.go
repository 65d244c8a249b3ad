package marketdata

import (
	"fmt"
	"time"

	"github.com/openquant/calcengine/currency"
)

// Snapshot is an immutable, point-in-time store of market data keyed by
// typed identifiers. It is safe to share read-only across concurrent
// evaluations. Lookups for absent keys fail explicitly; a snapshot never
// partially satisfies a requirement by defaulting.
type Snapshot struct {
	valuationDate time.Time
	values        map[Key]any
	series        map[Key]LocalDateSeries
}

// NewSnapshot copies the supplied maps so later caller mutation cannot
// leak into the snapshot.
func NewSnapshot(valuationDate time.Time, values map[Key]any, series map[Key]LocalDateSeries) Snapshot {
	v := make(map[Key]any, len(values))
	for k, val := range values {
		v[k] = val
	}
	s := make(map[Key]LocalDateSeries, len(series))
	for k, ts := range series {
		s[k] = ts
	}
	return Snapshot{valuationDate: valuationDate, values: v, series: s}
}

func (s Snapshot) ValuationDate() time.Time {
	return s.valuationDate
}

// Value looks up a single-value key.
func (s Snapshot) Value(key Key) (any, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, MissingDataError{Key: key}
	}
	return v, nil
}

// TimeSeries looks up a time-series key.
func (s Snapshot) TimeSeries(key Key) (LocalDateSeries, error) {
	ts, ok := s.series[key]
	if !ok {
		return LocalDateSeries{}, MissingDataError{Key: key}
	}
	return ts, nil
}

func (s Snapshot) Contains(key Key) bool {
	_, ok := s.values[key]
	return ok
}

func (s Snapshot) ContainsTimeSeries(key Key) bool {
	_, ok := s.series[key]
	return ok
}

// DiscountFactors looks up the discount factors for a currency.
func (s Snapshot) DiscountFactors(ccy currency.Currency) (DiscountFactors, error) {
	v, err := s.Value(DiscountFactorsKey{Currency: ccy})
	if err != nil {
		return nil, err
	}
	df, ok := v.(DiscountFactors)
	if !ok {
		return nil, fmt.Errorf("value for %s is %T, not DiscountFactors", DiscountFactorsKey{Currency: ccy}, v)
	}
	return df, nil
}

// Quote looks up the market price of a listed security.
func (s Snapshot) Quote(securityID string) (float64, error) {
	v, err := s.Value(QuoteKey{SecurityID: securityID})
	if err != nil {
		return 0, err
	}
	q, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("value for %s is %T, not float64", QuoteKey{SecurityID: securityID}, v)
	}
	return q, nil
}

// FxRate implements currency.RateProvider. The rate is resolved from a
// stored FxRateKey for the pair or its inverse; a pair with neither
// direction present fails with a MissingFxRateError.
func (s Snapshot) FxRate(base, counter currency.Currency) (float64, error) {
	if base == counter {
		return 1, nil
	}
	pair := currency.Pair{Base: base, Counter: counter}
	if v, ok := s.values[FxRateKey{Pair: pair}]; ok {
		return fxRateValue(v, pair)
	}
	if v, ok := s.values[FxRateKey{Pair: pair.Inverse()}]; ok {
		rate, err := fxRateValue(v, pair.Inverse())
		if err != nil {
			return 0, err
		}
		return 1 / rate, nil
	}
	return 0, currency.MissingFxRateError{Pair: pair}
}

func fxRateValue(v any, pair currency.Pair) (float64, error) {
	switch r := v.(type) {
	case float64:
		return r, nil
	case currency.FxRate:
		return r.Rate, nil
	default:
		return 0, fmt.Errorf("value for %s is %T, not an FX rate", FxRateKey{Pair: pair}, v)
	}
}
