package ledger

import (
	"github.com/rustyeddy/stockgame/money"
	"github.com/shopspring/decimal"
)

// CostDecimals is the precision kept for average cost.
const CostDecimals int32 = 6

// Position is a holding in one symbol. A ledger only keeps positions with a
// positive quantity.
type Position struct {
	Symbol      string
	Quantity    int64
	AverageCost decimal.Decimal // volume-weighted execution price, fees excluded
}

// CostBasis is the total paid for the units still held, fees excluded.
func (p Position) CostBasis() decimal.Decimal {
	return money.Cash(p.AverageCost.Mul(decimal.NewFromInt(p.Quantity)))
}

// MarketValue values the position at price.
func (p Position) MarketValue(price decimal.Decimal) decimal.Decimal {
	return money.Cash(price.Mul(decimal.NewFromInt(p.Quantity)))
}

// UnrealizedPL is the gain or loss against cost basis at price.
func (p Position) UnrealizedPL(price decimal.Decimal) decimal.Decimal {
	return p.MarketValue(price).Sub(p.CostBasis())
}

// add folds a purchase of qty at price into the position.
func (p *Position) add(qty int64, price decimal.Decimal) {
	oldQty := decimal.NewFromInt(p.Quantity)
	addQty := decimal.NewFromInt(qty)

	paid := p.AverageCost.Mul(oldQty).Add(price.Mul(addQty))
	p.AverageCost = paid.DivRound(oldQty.Add(addQty), CostDecimals)
	p.Quantity += qty
}
