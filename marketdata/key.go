// Package marketdata defines the typed keys and the immutable snapshot
// that calculation functions read market data from.
package marketdata

import (
	"fmt"

	"github.com/openquant/calcengine/currency"
)

// Key identifies one piece of market data. Implementations are small
// comparable structs so keys can be used directly as map keys and as
// requirement tokens.
type Key interface {
	fmt.Stringer
	isKey()
}

// DiscountFactorsKey requests the discount factors for a currency.
type DiscountFactorsKey struct {
	Currency currency.Currency
}

func (k DiscountFactorsKey) isKey() {}

func (k DiscountFactorsKey) String() string {
	return fmt.Sprintf("DiscountFactors/%s", k.Currency)
}

// FxRateKey requests the spot exchange rate for a currency pair.
type FxRateKey struct {
	Pair currency.Pair
}

func (k FxRateKey) isKey() {}

func (k FxRateKey) String() string {
	return fmt.Sprintf("FxRate/%s", k.Pair)
}

// QuoteKey requests the quoted market price of a listed security.
type QuoteKey struct {
	SecurityID string
}

func (k QuoteKey) isKey() {}

func (k QuoteKey) String() string {
	return fmt.Sprintf("Quote/%s", k.SecurityID)
}

// FixingSeriesKey requests the historical fixing time series of a rate
// index.
type FixingSeriesKey struct {
	Index string
}

func (k FixingSeriesKey) isKey() {}

func (k FixingSeriesKey) String() string {
	return fmt.Sprintf("Fixings/%s", k.Index)
}

// MissingDataError reports a lookup for a key absent from the snapshot.
// A missing key is a contract violation by the caller, never defaulted.
type MissingDataError struct {
	Key Key
}

func (e MissingDataError) Error() string {
	return fmt.Sprintf("market data missing for %s", e.Key)
}
