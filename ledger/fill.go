package ledger

import (
	"fmt"

	"github.com/rustyeddy/stockgame/money"
	"github.com/shopspring/decimal"
)

type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Fill is the confirmation of an executed trade.
type Fill struct {
	Side     Side
	Symbol   string
	Name     string
	Quantity int64
	Price    decimal.Decimal

	Gross decimal.Decimal // price x quantity
	Fee   decimal.Decimal
	// Net is the total cost for a buy and the net revenue for a sell.
	Net decimal.Decimal

	CashAfter decimal.Decimal
}

// Message is the confirmation shown to the player.
func (f Fill) Message() string {
	switch f.Side {
	case SideBuy:
		return fmt.Sprintf("Bought %dx %s for %s (fee %s, total %s).",
			f.Quantity, f.Symbol, money.Plain(f.Gross), money.Plain(f.Fee), money.Plain(f.Net))
	case SideSell:
		return fmt.Sprintf("Sold %dx %s for %s (fee %s, net %s).",
			f.Quantity, f.Symbol, money.Plain(f.Gross), money.Plain(f.Fee), money.Plain(f.Net))
	default:
		return fmt.Sprintf("%s %dx %s", f.Side, f.Quantity, f.Symbol)
	}
}

// Describe returns the text to show for a trade outcome: the rejection
// reason when err is set, the fill confirmation otherwise.
func Describe(f Fill, err error) string {
	if err != nil {
		return err.Error()
	}
	return f.Message()
}
