package currency

import "fmt"

// FxRate is an exchange rate for a pair: Rate counter units per base unit.
type FxRate struct {
	Pair Pair
	Rate float64
}

func NewFxRate(base, counter Currency, rate float64) (FxRate, error) {
	if base == counter {
		return FxRate{}, fmt.Errorf("fx rate base and counter must differ, got %s", base)
	}
	if rate <= 0 {
		return FxRate{}, fmt.Errorf("fx rate for %s/%s must be positive, got %g", base, counter, rate)
	}
	return FxRate{Pair: Pair{Base: base, Counter: counter}, Rate: rate}, nil
}

// Inverse returns the rate for the inverted pair.
func (r FxRate) Inverse() FxRate {
	return FxRate{Pair: r.Pair.Inverse(), Rate: 1 / r.Rate}
}

func (r FxRate) String() string {
	return fmt.Sprintf("%s %.6g", r.Pair, r.Rate)
}

// RateProvider supplies FX rates for conversion. Implementations return a
// MissingFxRateError when no rate is available for the pair, never a
// substitute rate.
type RateProvider interface {
	FxRate(base, counter Currency) (float64, error)
}

// Convertible is a result value that can be collapsed into a single
// currency using FX rates.
type Convertible interface {
	ConvertedTo(to Currency, rates RateProvider) (Amount, error)
}

// MissingFxRateError reports that no rate is available for a pair.
type MissingFxRateError struct {
	Pair Pair
}

func (e MissingFxRateError) Error() string {
	return fmt.Sprintf("no FX rate available for %s", e.Pair)
}
