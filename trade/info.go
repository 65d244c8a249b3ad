// Package trade holds the immutable trade domain model consumed by
// calculation functions.
package trade

import (
	"fmt"
	"time"
)

// Info carries the descriptive attributes common to all trades. Optional
// fields are explicit (ok-returning accessors) rather than zero-value
// sentinels read directly.
type Info struct {
	id           string
	tradeDate    time.Time
	counterparty string
	settleDate   time.Time
	hasSettle    bool
}

func (i Info) ID() string {
	return i.id
}

func (i Info) TradeDate() time.Time {
	return i.tradeDate
}

// Counterparty reports the counterparty, if one was recorded.
func (i Info) Counterparty() (string, bool) {
	return i.counterparty, i.counterparty != ""
}

// SettlementDate reports the settlement date, if one was recorded.
func (i Info) SettlementDate() (time.Time, bool) {
	return i.settleDate, i.hasSettle
}

// InfoBuilder is a plain mutable struct consumed once by Build.
type InfoBuilder struct {
	ID           string
	TradeDate    time.Time
	Counterparty string
	SettleDate   time.Time
}

func (b InfoBuilder) Build() (Info, error) {
	if b.ID == "" {
		return Info{}, fmt.Errorf("trade id is required")
	}
	if b.TradeDate.IsZero() {
		return Info{}, fmt.Errorf("trade date is required")
	}
	return Info{
		id:           b.ID,
		tradeDate:    b.TradeDate,
		counterparty: b.Counterparty,
		settleDate:   b.SettleDate,
		hasSettle:    !b.SettleDate.IsZero(),
	}, nil
}
