package marketdata

import (
	"time"

	"github.com/openquant/calcengine/currency"
)

// ScenarioDefinition describes how one scenario perturbs the base
// snapshot. The zero value is the unperturbed base scenario.
type ScenarioDefinition struct {
	Name string
	// DiscountShiftBp shifts every discount curve's zero rate in
	// parallel, in basis points.
	DiscountShiftBp float64
	// FxShiftPct scales every FX spot rate, in percent.
	FxShiftPct float64
}

// ScenarioSnapshots derives one snapshot per definition from a base
// snapshot. Definitions order is preserved: snapshot i corresponds to
// defs[i]. Time series are shared unperturbed.
func ScenarioSnapshots(base Snapshot, defs []ScenarioDefinition) []Snapshot {
	out := make([]Snapshot, 0, len(defs))
	for _, def := range defs {
		out = append(out, applyScenario(base, def))
	}
	return out
}

func applyScenario(base Snapshot, def ScenarioDefinition) Snapshot {
	if def.DiscountShiftBp == 0 && def.FxShiftPct == 0 {
		return base
	}
	values := make(map[Key]any, len(base.values))
	for k, v := range base.values {
		values[k] = perturbValue(k, v, base.valuationDate, def)
	}
	return Snapshot{valuationDate: base.valuationDate, values: values, series: base.series}
}

func perturbValue(k Key, v any, valuationDate time.Time, def ScenarioDefinition) any {
	switch k.(type) {
	case DiscountFactorsKey:
		if df, ok := v.(DiscountFactors); ok && def.DiscountShiftBp != 0 {
			return ShiftedDiscountFactors(df, valuationDate, def.DiscountShiftBp/10000)
		}
	case FxRateKey:
		if def.FxShiftPct != 0 {
			scale := 1 + def.FxShiftPct/100
			switch r := v.(type) {
			case float64:
				return r * scale
			case currency.FxRate:
				return currency.FxRate{Pair: r.Pair, Rate: r.Rate * scale}
			}
		}
	}
	return v
}
