// Package journal is the append-only audit trail of a game session: every
// executed fill and an equity snapshot per tick. Nothing is ever read back
// into a session.
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// FillRecord is one executed buy or sell.
type FillRecord struct {
	FillID    string
	Time      time.Time
	Side      string // BUY or SELL
	Symbol    string
	Quantity  int64
	Price     decimal.Decimal
	Gross     decimal.Decimal
	Fee       decimal.Decimal
	Net       decimal.Decimal // total cost for buys, net revenue for sells
	CashAfter decimal.Decimal
}

// EquitySnapshot is the ledger valuation after a tick.
type EquitySnapshot struct {
	Time      time.Time
	Tick      int64
	Cash      decimal.Decimal
	Portfolio decimal.Decimal
	Total     decimal.Decimal
}

type Journal interface {
	RecordFill(FillRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordFill(FillRecord) error       { return nil }
func (Nop) RecordEquity(EquitySnapshot) error { return nil }
func (Nop) Close() error                      { return nil }
