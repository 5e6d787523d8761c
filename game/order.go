package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/stockgame/ledger"
	"github.com/rustyeddy/stockgame/market"
)

// Order is a requested trade parsed from "SYMBOL:QTY".
type Order struct {
	Side     ledger.Side
	Symbol   string
	Quantity int64
}

// ParseOrder parses "SYMBOL:QTY". Quantity validation is left to the
// ledger so that a zero or negative quantity is rejected the same way as
// one typed into the UI.
func ParseOrder(side ledger.Side, s string) (Order, error) {
	sym, qty, ok := strings.Cut(s, ":")
	if !ok {
		return Order{}, fmt.Errorf("order %q: want SYMBOL:QTY", s)
	}
	sym = market.Normalize(sym)
	if sym == "" {
		return Order{}, fmt.Errorf("order %q: missing symbol", s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(qty), 10, 64)
	if err != nil {
		return Order{}, fmt.Errorf("order %q: bad quantity: %w", s, err)
	}
	return Order{Side: side, Symbol: sym, Quantity: n}, nil
}

// Describe returns the text to show the player for a trade outcome. A fill
// whose journal write failed still executed, so its confirmation is shown
// with the journal error appended.
func Describe(fill ledger.Fill, err error) string {
	if errors.Is(err, ErrJournal) {
		return fmt.Sprintf("%s Warning: %v", fill.Message(), err)
	}
	return ledger.Describe(fill, err)
}

// Place executes o against the session.
func (s *Session) Place(o Order) (ledger.Fill, error) {
	if o.Side == ledger.SideSell {
		return s.Sell(o.Symbol, o.Quantity)
	}
	return s.Buy(o.Symbol, o.Quantity)
}
