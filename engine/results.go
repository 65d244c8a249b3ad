package engine

import (
	"fmt"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/marketdata"
)

// ScenarioResults is an ordered, non-empty sequence of per-scenario
// result values plus the reporting currency used (or usable) for
// conversion. Index i always corresponds to input scenario i, even when
// scenarios were computed out of order.
type ScenarioResults struct {
	values       []any
	reportingCcy currency.Currency
}

// NewScenarioResults copies the values; an empty sequence is rejected,
// mirroring the non-empty scenario set it derives from.
func NewScenarioResults(values []any, reportingCcy currency.Currency) (ScenarioResults, error) {
	if len(values) == 0 {
		return ScenarioResults{}, fmt.Errorf("scenario results must not be empty")
	}
	out := make([]any, len(values))
	copy(out, values)
	return ScenarioResults{values: out, reportingCcy: reportingCcy}, nil
}

func (r ScenarioResults) Len() int {
	return len(r.values)
}

// Value returns the result for scenario index i.
func (r ScenarioResults) Value(i int) (any, error) {
	if i < 0 || i >= len(r.values) {
		return nil, fmt.Errorf("scenario index %d out of range [0,%d)", i, len(r.values))
	}
	return r.values[i], nil
}

// ReportingCurrency is the currency results are converted to, or the
// default the producing function suggested.
func (r ScenarioResults) ReportingCurrency() currency.Currency {
	return r.reportingCcy
}

// ConvertResults converts each scenario value into the target currency
// using FX rates from that scenario's own snapshot. Values that are not
// currency-convertible (rates, bucketed sensitivities) pass through
// unchanged. Scenario order is preserved. A missing rate fails the
// conversion outright; parity is never assumed.
func ConvertResults(raw ScenarioResults, snapshots []marketdata.Snapshot, to currency.Currency) (ScenarioResults, error) {
	if len(snapshots) != raw.Len() {
		return ScenarioResults{}, fmt.Errorf("have %d snapshots for %d scenario results", len(snapshots), raw.Len())
	}
	converted := make([]any, raw.Len())
	for i := range converted {
		v, err := raw.Value(i)
		if err != nil {
			return ScenarioResults{}, err
		}
		conv, ok := v.(currency.Convertible)
		if !ok {
			converted[i] = v
			continue
		}
		amount, err := conv.ConvertedTo(to, snapshots[i])
		if err != nil {
			return ScenarioResults{}, fmt.Errorf("convert scenario %d: %w", i, err)
		}
		converted[i] = amount
	}
	return NewScenarioResults(converted, to)
}
