package engine

import (
	"fmt"
	"sync"

	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/marketdata"
	"github.com/openquant/calcengine/measure"
)

// Runner evaluates measures for one trade variant family across
// scenario snapshots. Scenario evaluations run on parallel workers,
// each with its own function instance; results are re-joined by index
// so output order always matches snapshot order.
type Runner[T any] struct {
	Group FunctionGroup[T]

	// Workers caps concurrent scenario evaluations. Zero or negative
	// means one worker per scenario.
	Workers int
}

// Run computes one measure for one trade over the given scenario
// snapshots and converts the results into reportingCcy. An empty
// reportingCcy falls back to the function's default; with no default
// either, results are returned unconverted.
func (r Runner[T]) Run(trade T, m measure.Measure, snapshots []marketdata.Snapshot, reportingCcy currency.Currency) (ScenarioResults, error) {
	if len(snapshots) == 0 {
		return ScenarioResults{}, fmt.Errorf("at least one scenario snapshot is required")
	}

	cfg, ok := r.Group.FunctionConfig(trade, m)
	if !ok {
		return ScenarioResults{}, UnsupportedMeasureError{Measure: m, Group: r.Group.Name()}
	}

	fn := cfg.CreateFunction()
	reqs := fn.Requirements(trade)
	for i, md := range snapshots {
		if missing := reqs.MissingFrom(md); len(missing) > 0 {
			return ScenarioResults{}, fmt.Errorf("scenario %d: %w", i, marketdata.MissingDataError{Key: missing[0]})
		}
	}

	defaultCcy, hasDefault := fn.DefaultReportingCurrency(trade)
	if reportingCcy == "" && hasDefault {
		reportingCcy = defaultCcy
	}

	values, err := r.executeScenarios(cfg, trade, snapshots)
	if err != nil {
		return ScenarioResults{}, err
	}

	raw, err := NewScenarioResults(values, reportingCcy)
	if err != nil {
		return ScenarioResults{}, err
	}
	if reportingCcy == "" {
		return raw, nil
	}
	return ConvertResults(raw, snapshots, reportingCcy)
}

func (r Runner[T]) executeScenarios(cfg FunctionConfig[T], trade T, snapshots []marketdata.Snapshot) ([]any, error) {
	workers := r.Workers
	if workers <= 0 || workers > len(snapshots) {
		workers = len(snapshots)
	}

	values := make([]any, len(snapshots))
	errs := make([]error, len(snapshots))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i := range snapshots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// each worker owns a fresh instance
			fn := cfg.CreateFunction()
			values[i], errs[i] = fn.Execute(trade, snapshots[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}
	return values, nil
}
