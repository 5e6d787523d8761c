// Package ledger keeps the player's cash and positions and executes trades
// against market prices.
//
// Every operation validates all of its preconditions before touching any
// state, so a rejected trade leaves cash and holdings exactly as they were.
package ledger

import (
	"fmt"
	"sort"

	"github.com/rustyeddy/stockgame/market"
	"github.com/rustyeddy/stockgame/money"
	"github.com/shopspring/decimal"
)

// Quoter resolves a symbol to its instrument. *market.Market implements it.
type Quoter interface {
	Lookup(symbol string) (*market.Instrument, bool)
}

// Ledger is one player's book. It is not safe for concurrent use.
type Ledger struct {
	cash     decimal.Decimal
	holdings map[string]*Position
}

// New opens a ledger with the given starting cash.
func New(startCash decimal.Decimal) (*Ledger, error) {
	if startCash.IsNegative() {
		return nil, fmt.Errorf("ledger: starting cash must not be negative, got %s", startCash)
	}
	return &Ledger{
		cash:     money.Cash(startCash),
		holdings: make(map[string]*Position),
	}, nil
}

func (l *Ledger) Cash() decimal.Decimal { return l.cash }

// Position returns a copy of the holding in symbol.
func (l *Ledger) Position(symbol string) (Position, bool) {
	p, ok := l.holdings[market.Normalize(symbol)]
	if !ok {
		return Position{}, false
	}
	return *p, true
}

// Holdings returns copies of all positions sorted by symbol.
func (l *Ledger) Holdings() []Position {
	out := make([]Position, 0, len(l.holdings))
	for _, p := range l.holdings {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// PortfolioValue is the market value of every position. Positions whose
// symbol no longer resolves count as zero.
func (l *Ledger) PortfolioValue(q Quoter) decimal.Decimal {
	total := decimal.Zero
	for sym, p := range l.holdings {
		in, ok := q.Lookup(sym)
		if !ok {
			continue
		}
		total = total.Add(p.MarketValue(in.Price()))
	}
	return total
}

// TotalValue is cash plus portfolio value.
func (l *Ledger) TotalValue(q Quoter) decimal.Decimal {
	return l.cash.Add(l.PortfolioValue(q))
}

// Buy purchases quantity units of symbol at the current price. The fee is
// charged on top of the gross cost and is not part of the cost basis.
func (l *Ledger) Buy(q Quoter, symbol string, quantity int64, feeRate decimal.Decimal) (Fill, error) {
	in, err := l.check(q, SideBuy, symbol, quantity, feeRate)
	if err != nil {
		return Fill{}, err
	}

	price := in.Price()
	gross, fee := amounts(price, quantity, feeRate)
	total := gross.Add(fee)

	if total.GreaterThan(l.cash) {
		return Fill{}, &TradeError{
			Kind:      ErrInsufficientFunds,
			Side:      SideBuy,
			Symbol:    in.Symbol(),
			Quantity:  quantity,
			Required:  total,
			Available: l.cash,
		}
	}

	l.cash = l.cash.Sub(total)
	if p, ok := l.holdings[in.Symbol()]; ok {
		p.add(quantity, price)
	} else {
		l.holdings[in.Symbol()] = &Position{
			Symbol:      in.Symbol(),
			Quantity:    quantity,
			AverageCost: price,
		}
	}

	return Fill{
		Side:      SideBuy,
		Symbol:    in.Symbol(),
		Name:      in.Name(),
		Quantity:  quantity,
		Price:     price,
		Gross:     gross,
		Fee:       fee,
		Net:       total,
		CashAfter: l.cash,
	}, nil
}

// Sell disposes of quantity units of symbol at the current price. Average
// cost is left alone; a position sold down to zero is removed.
func (l *Ledger) Sell(q Quoter, symbol string, quantity int64, feeRate decimal.Decimal) (Fill, error) {
	in, err := l.check(q, SideSell, symbol, quantity, feeRate)
	if err != nil {
		return Fill{}, err
	}

	p, ok := l.holdings[in.Symbol()]
	if !ok {
		return Fill{}, &TradeError{
			Kind:     ErrNoPosition,
			Side:     SideSell,
			Symbol:   in.Symbol(),
			Quantity: quantity,
		}
	}
	if quantity > p.Quantity {
		return Fill{}, &TradeError{
			Kind:     ErrInsufficientShares,
			Side:     SideSell,
			Symbol:   in.Symbol(),
			Quantity: quantity,
			Held:     p.Quantity,
		}
	}

	price := in.Price()
	gross, fee := amounts(price, quantity, feeRate)
	net := gross.Sub(fee)

	l.cash = l.cash.Add(net)
	p.Quantity -= quantity
	if p.Quantity == 0 {
		delete(l.holdings, in.Symbol())
	}

	return Fill{
		Side:      SideSell,
		Symbol:    in.Symbol(),
		Name:      in.Name(),
		Quantity:  quantity,
		Price:     price,
		Gross:     gross,
		Fee:       fee,
		Net:       net,
		CashAfter: l.cash,
	}, nil
}

// check runs the preconditions shared by buy and sell, in order.
func (l *Ledger) check(q Quoter, side Side, symbol string, quantity int64, feeRate decimal.Decimal) (*market.Instrument, error) {
	in, ok := q.Lookup(symbol)
	if !ok {
		return nil, &TradeError{Kind: ErrInstrumentNotFound, Side: side, Symbol: market.Normalize(symbol), Quantity: quantity}
	}
	if quantity <= 0 {
		return nil, &TradeError{Kind: ErrInvalidQuantity, Side: side, Symbol: in.Symbol(), Quantity: quantity}
	}
	if !ValidFeeRate(feeRate) {
		return nil, &TradeError{Kind: ErrInvalidFeeRate, Side: side, Symbol: in.Symbol(), Quantity: quantity, FeeRate: feeRate}
	}
	return in, nil
}

// ValidFeeRate reports whether rate is in [0,1).
func ValidFeeRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThan(decimal.NewFromInt(1))
}

func amounts(price decimal.Decimal, quantity int64, feeRate decimal.Decimal) (gross, fee decimal.Decimal) {
	gross = money.Cash(price.Mul(decimal.NewFromInt(quantity)))
	fee = money.Cash(gross.Mul(feeRate))
	return gross, fee
}
