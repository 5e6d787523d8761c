package ledger

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/stockgame/money"
	"github.com/shopspring/decimal"
)

// Rejection kinds. Every failed trade returns a *TradeError that unwraps to
// exactly one of these.
var (
	ErrInstrumentNotFound = errors.New("instrument not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidFeeRate     = errors.New("invalid fee rate")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoPosition         = errors.New("no position")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// TradeError describes a rejected buy or sell with the numbers that caused
// the rejection. The ledger is unchanged whenever one is returned.
type TradeError struct {
	Kind     error
	Side     Side
	Symbol   string
	Quantity int64

	// InsufficientFunds
	Required  decimal.Decimal
	Available decimal.Decimal

	// InsufficientShares
	Held int64

	// InvalidFeeRate
	FeeRate decimal.Decimal
}

func (e *TradeError) Error() string {
	switch e.Kind {
	case ErrInstrumentNotFound:
		return fmt.Sprintf("%s: %s", e.Kind, e.Symbol)
	case ErrInvalidQuantity:
		return fmt.Sprintf("%s: quantity must be positive, got %d", e.Kind, e.Quantity)
	case ErrInvalidFeeRate:
		return fmt.Sprintf("%s: must be in [0,1), got %s", e.Kind, e.FeeRate)
	case ErrInsufficientFunds:
		return fmt.Sprintf("%s: need %s, have %s", e.Kind, money.Plain(e.Required), money.Plain(e.Available))
	case ErrNoPosition:
		return fmt.Sprintf("%s in %s", e.Kind, e.Symbol)
	case ErrInsufficientShares:
		return fmt.Sprintf("%s: hold %dx %s, cannot sell %d", e.Kind, e.Held, e.Symbol, e.Quantity)
	default:
		return fmt.Sprintf("%s %s: %v", e.Side, e.Symbol, e.Kind)
	}
}

func (e *TradeError) Unwrap() error { return e.Kind }

// KindName returns a stable snake_case label for a rejection, or "unknown"
// when err is not a trade rejection.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrInstrumentNotFound):
		return "instrument_not_found"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrInvalidFeeRate):
		return "invalid_fee_rate"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNoPosition):
		return "no_position"
	case errors.Is(err, ErrInsufficientShares):
		return "insufficient_shares"
	default:
		return "unknown"
	}
}
