package game

import (
	"github.com/rustyeddy/stockgame/ledger"
	"github.com/rustyeddy/stockgame/market"
	"github.com/shopspring/decimal"
)

// Holding is a position valued at the current market price.
type Holding struct {
	ledger.Position
	Price decimal.Decimal
	Value decimal.Decimal
	PL    decimal.Decimal
}

// Snapshot is a consistent read of the whole session, taken under the
// session lock.
type Snapshot struct {
	Tick           int64
	Quotes         []market.Quote
	Holdings       []Holding
	Cash           decimal.Decimal
	PortfolioValue decimal.Decimal
	TotalValue     decimal.Decimal
	FeeRate        decimal.Decimal
	Currency       string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := s.ledger.Holdings()
	holdings := make([]Holding, 0, len(positions))
	for _, p := range positions {
		h := Holding{Position: p}
		if inst, ok := s.market.Lookup(p.Symbol); ok {
			h.Price = inst.Price()
			h.Value = p.MarketValue(h.Price)
			h.PL = p.UnrealizedPL(h.Price)
		}
		holdings = append(holdings, h)
	}

	pv := s.ledger.PortfolioValue(s.market)
	return Snapshot{
		Tick:           s.ticks,
		Quotes:         s.market.Quotes(),
		Holdings:       holdings,
		Cash:           s.ledger.Cash(),
		PortfolioValue: pv,
		TotalValue:     s.ledger.Cash().Add(pv),
		FeeRate:        s.feeRate,
		Currency:       s.currency,
	}
}

// Quote returns the current quote for symbol.
func (s *Session) Quote(symbol string) (market.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.market.Lookup(symbol)
	if !ok {
		return market.Quote{}, false
	}
	return inst.Quote(), true
}
