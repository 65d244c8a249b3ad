package engine

import (
	"fmt"

	"github.com/openquant/calcengine/measure"
)

// FunctionGroup maps measures to function configs for one trade variant
// family. The mapping is built once at construction and never mutated,
// so lookups are safe for concurrent use without locking.
type FunctionGroup[T any] struct {
	name    string
	configs map[measure.Measure]FunctionConfig[T]
}

// NewFunctionGroup copies the config mapping. At most one config per
// measure is inherent in the map input.
func NewFunctionGroup[T any](name string, configs map[measure.Measure]FunctionConfig[T]) FunctionGroup[T] {
	m := make(map[measure.Measure]FunctionConfig[T], len(configs))
	for k, v := range configs {
		m[k] = v
	}
	return FunctionGroup[T]{name: name, configs: m}
}

func (g FunctionGroup[T]) Name() string {
	return g.name
}

// ConfiguredMeasures returns every measure with a registered function
// applicable to this trade's runtime shape, sorted.
func (g FunctionGroup[T]) ConfiguredMeasures(trade T) []measure.Measure {
	out := make([]measure.Measure, 0, len(g.configs))
	for m, cfg := range g.configs {
		if cfg.appliesTo(trade) {
			out = append(out, m)
		}
	}
	measure.Sort(out)
	return out
}

// FunctionConfig looks up the config for a measure. A measure with no
// applicable config returns ok=false; an unsupported measure is an
// expected, checkable condition, not an error.
func (g FunctionGroup[T]) FunctionConfig(trade T, m measure.Measure) (FunctionConfig[T], bool) {
	cfg, ok := g.configs[m]
	if !ok || !cfg.appliesTo(trade) {
		return FunctionConfig[T]{}, false
	}
	return cfg, true
}

// UnsupportedMeasureError is returned by the runner when asked to
// compute a measure the group has no applicable function for.
type UnsupportedMeasureError struct {
	Measure measure.Measure
	Group   string
}

func (e UnsupportedMeasureError) Error() string {
	return fmt.Sprintf("measure %s is not supported by group %s", e.Measure, e.Group)
}
