package currency

import (
	"fmt"
	"math"
	"sort"
)

// Amount is a signed monetary amount in a single currency.
type Amount struct {
	Currency Currency
	Value    float64
}

func NewAmount(ccy Currency, value float64) Amount {
	return Amount{Currency: ccy, Value: value}
}

func (a Amount) Negated() Amount {
	return Amount{Currency: a.Currency, Value: -a.Value}
}

func (a Amount) MultipliedBy(factor float64) Amount {
	return Amount{Currency: a.Currency, Value: a.Value * factor}
}

// Plus adds another amount in the same currency.
func (a Amount) Plus(other Amount) (Amount, error) {
	if a.Currency != other.Currency {
		return Amount{}, fmt.Errorf("cannot add %s to %s", other.Currency, a.Currency)
	}
	return Amount{Currency: a.Currency, Value: a.Value + other.Value}, nil
}

// ConvertedTo converts the amount into the target currency using rates
// from the provider. Converting to the same currency is a no-op.
func (a Amount) ConvertedTo(to Currency, rates RateProvider) (Amount, error) {
	if a.Currency == to {
		return a, nil
	}
	rate, err := rates.FxRate(a.Currency, to)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Currency: to, Value: a.Value * rate}, nil
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %.2f", a.Currency, a.Value)
}

// MultiAmount holds at most one amount per currency. The zero value is an
// empty multi-currency amount. Methods return new values, never mutate.
type MultiAmount struct {
	amounts map[Currency]float64
}

// EmptyMulti returns a multi-currency amount with no entries.
func EmptyMulti() MultiAmount {
	return MultiAmount{}
}

// MultiOf builds a multi-currency amount, merging duplicate currencies
// by addition.
func MultiOf(amounts ...Amount) MultiAmount {
	m := MultiAmount{}
	for _, a := range amounts {
		m = m.Plus(a)
	}
	return m
}

func (m MultiAmount) clone() map[Currency]float64 {
	out := make(map[Currency]float64, len(m.amounts)+1)
	for ccy, v := range m.amounts {
		out[ccy] = v
	}
	return out
}

// Plus returns a new MultiAmount with the amount merged in.
func (m MultiAmount) Plus(a Amount) MultiAmount {
	out := m.clone()
	out[a.Currency] += a.Value
	return MultiAmount{amounts: out}
}

// PlusMulti merges two multi-currency amounts, adding per currency.
func (m MultiAmount) PlusMulti(other MultiAmount) MultiAmount {
	out := m.clone()
	for ccy, v := range other.amounts {
		out[ccy] += v
	}
	return MultiAmount{amounts: out}
}

// Amount reports the entry for a currency, if present.
func (m MultiAmount) Amount(ccy Currency) (Amount, bool) {
	v, ok := m.amounts[ccy]
	if !ok {
		return Amount{}, false
	}
	return Amount{Currency: ccy, Value: v}, true
}

func (m MultiAmount) Size() int {
	return len(m.amounts)
}

func (m MultiAmount) IsEmpty() bool {
	return len(m.amounts) == 0
}

// Amounts returns the entries sorted by currency code.
func (m MultiAmount) Amounts() []Amount {
	out := make([]Amount, 0, len(m.amounts))
	for ccy, v := range m.amounts {
		out = append(out, Amount{Currency: ccy, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}

// Currencies returns the currencies present, sorted.
func (m MultiAmount) Currencies() []Currency {
	out := make([]Currency, 0, len(m.amounts))
	for ccy := range m.amounts {
		out = append(out, ccy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ConvertedTo converts every entry to the target currency and sums them
// into a single amount. Fails if any needed rate is unavailable.
func (m MultiAmount) ConvertedTo(to Currency, rates RateProvider) (Amount, error) {
	total := 0.0
	for _, a := range m.Amounts() {
		conv, err := a.ConvertedTo(to, rates)
		if err != nil {
			return Amount{}, err
		}
		total += conv.Value
	}
	return Amount{Currency: to, Value: total}, nil
}

// Equal compares two multi-currency amounts within a tolerance.
func (m MultiAmount) Equal(other MultiAmount, tol float64) bool {
	if len(m.amounts) != len(other.amounts) {
		return false
	}
	for ccy, v := range m.amounts {
		ov, ok := other.amounts[ccy]
		if !ok || math.Abs(v-ov) > tol {
			return false
		}
	}
	return true
}

func (m MultiAmount) String() string {
	if m.IsEmpty() {
		return "[]"
	}
	s := "["
	for i, a := range m.Amounts() {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + "]"
}
