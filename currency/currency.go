package currency

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 currency code, e.g. "USD".
type Currency string

const (
	AUD Currency = "AUD"
	CHF Currency = "CHF"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	KRW Currency = "KRW"
	USD Currency = "USD"
)

// Parse validates and normalizes a currency code.
func Parse(code string) (Currency, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 {
		return "", fmt.Errorf("invalid currency code %q", code)
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("invalid currency code %q", code)
		}
	}
	return Currency(c), nil
}

func (c Currency) String() string {
	return string(c)
}

// Pair is an ordered currency pair. The rate for a pair is the number of
// counter currency units per one unit of base currency.
type Pair struct {
	Base    Currency
	Counter Currency
}

func NewPair(base, counter Currency) Pair {
	return Pair{Base: base, Counter: counter}
}

// ParsePair parses "GBP/USD" style pair notation.
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("invalid currency pair %q", s)
	}
	base, err := Parse(parts[0])
	if err != nil {
		return Pair{}, err
	}
	counter, err := Parse(parts[1])
	if err != nil {
		return Pair{}, err
	}
	return Pair{Base: base, Counter: counter}, nil
}

// Inverse swaps base and counter.
func (p Pair) Inverse() Pair {
	return Pair{Base: p.Counter, Counter: p.Base}
}

func (p Pair) String() string {
	return string(p.Base) + "/" + string(p.Counter)
}
