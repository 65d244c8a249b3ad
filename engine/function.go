package engine

import (
	"github.com/openquant/calcengine/currency"
	"github.com/openquant/calcengine/marketdata"
)

// CalculationFunction computes one measure for one trade variant. The
// contract is two-phase: Requirements declares the market data needed
// without touching any, then Execute computes the value from a snapshot
// that satisfies the declaration.
//
// Implementations must be stateless and pure: Execute is a function of
// (trade, snapshot) only, so identical inputs yield identical results
// and instances never need synchronization.
type CalculationFunction[T any] interface {
	// Requirements inspects the trade's static structure and returns
	// the minimal market data needed. It must not access market data.
	Requirements(trade T) FunctionRequirements

	// DefaultReportingCurrency suggests the currency results should be
	// converted to when the caller does not force one. ok is false when
	// the function has no sensible default.
	DefaultReportingCurrency(trade T) (ccy currency.Currency, ok bool)

	// Execute computes the measure. A snapshot lacking a declared key
	// is a contract violation surfaced as a MissingDataError, never a
	// silent default.
	Execute(trade T, md marketdata.Snapshot) (any, error)
}

// FunctionConfig describes how to obtain a function for one measure.
// CreateFunction returns a fresh instance each call; instances are cheap
// and callers running scenarios in parallel should give each worker its
// own.
type FunctionConfig[T any] struct {
	factory func() CalculationFunction[T]
	applies func(T) bool
}

func NewFunctionConfig[T any](factory func() CalculationFunction[T]) FunctionConfig[T] {
	return FunctionConfig[T]{factory: factory}
}

// WithApplicability restricts the config to trades the predicate
// accepts, for variants whose support depends on runtime shape rather
// than static type.
func (c FunctionConfig[T]) WithApplicability(applies func(T) bool) FunctionConfig[T] {
	c.applies = applies
	return c
}

// CreateFunction returns a new function instance.
func (c FunctionConfig[T]) CreateFunction() CalculationFunction[T] {
	return c.factory()
}

func (c FunctionConfig[T]) appliesTo(trade T) bool {
	return c.applies == nil || c.applies(trade)
}
