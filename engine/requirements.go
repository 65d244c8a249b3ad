// Package engine is the measure-dispatch core: it resolves a
// calculation function for a (trade variant, measure) pair, collects the
// function's declared market-data requirements, executes it across
// scenarios and converts results into a reporting currency.
package engine

import (
	"sort"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/marketdata"
)

// FunctionRequirements declares the market data a function needs before
// it can execute: single-value keys, time-series keys and the
// currencies its output is denominated in. Membership is unique and
// order-irrelevant; accessors return sorted slices for deterministic
// iteration.
type FunctionRequirements struct {
	singleValues     map[marketdata.Key]struct{}
	timeSeries       map[marketdata.Key]struct{}
	outputCurrencies map[currency.Currency]struct{}
}

// NewRequirements builds a requirement set, de-duplicating each input.
func NewRequirements(singleValues, timeSeries []marketdata.Key, outputCurrencies []currency.Currency) FunctionRequirements {
	r := FunctionRequirements{
		singleValues:     make(map[marketdata.Key]struct{}, len(singleValues)),
		timeSeries:       make(map[marketdata.Key]struct{}, len(timeSeries)),
		outputCurrencies: make(map[currency.Currency]struct{}, len(outputCurrencies)),
	}
	for _, k := range singleValues {
		r.singleValues[k] = struct{}{}
	}
	for _, k := range timeSeries {
		r.timeSeries[k] = struct{}{}
	}
	for _, c := range outputCurrencies {
		r.outputCurrencies[c] = struct{}{}
	}
	return r
}

// SingleValues returns the single-value keys sorted by their string form.
func (r FunctionRequirements) SingleValues() []marketdata.Key {
	return sortedKeys(r.singleValues)
}

// TimeSeries returns the time-series keys sorted by their string form.
func (r FunctionRequirements) TimeSeries() []marketdata.Key {
	return sortedKeys(r.timeSeries)
}

// OutputCurrencies returns the output currencies sorted by code.
func (r FunctionRequirements) OutputCurrencies() []currency.Currency {
	out := make([]currency.Currency, 0, len(r.outputCurrencies))
	for c := range r.outputCurrencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r FunctionRequirements) RequiresSingleValue(k marketdata.Key) bool {
	_, ok := r.singleValues[k]
	return ok
}

func (r FunctionRequirements) RequiresTimeSeries(k marketdata.Key) bool {
	_, ok := r.timeSeries[k]
	return ok
}

// MissingFrom reports the declared keys a snapshot does not satisfy,
// sorted. An empty result means the snapshot covers the requirements.
func (r FunctionRequirements) MissingFrom(md marketdata.Snapshot) []marketdata.Key {
	var missing []marketdata.Key
	for k := range r.singleValues {
		if !md.Contains(k) {
			missing = append(missing, k)
		}
	}
	for k := range r.timeSeries {
		if !md.ContainsTimeSeries(k) {
			missing = append(missing, k)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].String() < missing[j].String() })
	return missing
}

// Merge combines two requirement sets.
func (r FunctionRequirements) Merge(other FunctionRequirements) FunctionRequirements {
	merged := NewRequirements(r.SingleValues(), r.TimeSeries(), r.OutputCurrencies())
	for _, k := range other.SingleValues() {
		merged.singleValues[k] = struct{}{}
	}
	for _, k := range other.TimeSeries() {
		merged.timeSeries[k] = struct{}{}
	}
	for _, c := range other.OutputCurrencies() {
		merged.outputCurrencies[c] = struct{}{}
	}
	return merged
}

func sortedKeys(set map[marketdata.Key]struct{}) []marketdata.Key {
	out := make([]marketdata.Key, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
