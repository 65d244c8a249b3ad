// Package measure enumerates the financial outputs a calculation
// function can produce.
package measure

import (
	"fmt"
	"sort"
)

// Measure identifies a requested calculation output. Measures compare by
// name and sort lexically so iteration order is deterministic.
type Measure string

const (
	BucketedPv01     Measure = "BucketedPV01"
	CurrencyExposure Measure = "CurrencyExposure"
	ForwardFxRate    Measure = "ForwardFxRate"
	ParSpread        Measure = "ParSpread"
	PresentValue     Measure = "PresentValue"
	Pv01             Measure = "PV01"
	UnitPrice        Measure = "UnitPrice"
)

// All returns every supported measure in sorted order.
func All() []Measure {
	out := []Measure{
		BucketedPv01,
		CurrencyExposure,
		ForwardFxRate,
		ParSpread,
		PresentValue,
		Pv01,
		UnitPrice,
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse resolves a measure by name.
func Parse(name string) (Measure, error) {
	for _, m := range All() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown measure %q", name)
}

func (m Measure) String() string {
	return string(m)
}

// Sort orders a slice of measures in place.
func Sort(measures []Measure) {
	sort.Slice(measures, func(i, j int) bool { return measures[i] < measures[j] })
}
