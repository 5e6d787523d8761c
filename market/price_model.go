package market

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultEventProbability is the per-tick chance of a jump event.
const DefaultEventProbability = 0.02

// DefaultFloor is the lowest price any instrument can reach.
var DefaultFloor = decimal.RequireFromString("0.10")

// DefaultEventFactors are the multiplicative jumps: -20%, -15%, +15%, +20%.
func DefaultEventFactors() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.RequireFromString("0.80"),
		decimal.RequireFromString("0.85"),
		decimal.RequireFromString("1.15"),
		decimal.RequireFromString("1.20"),
	}
}

// EventPolicy controls the occasional price jump applied on top of drift.
type EventPolicy struct {
	Probability float64
	Factors     []decimal.Decimal
}

func DefaultEventPolicy() EventPolicy {
	return EventPolicy{
		Probability: DefaultEventProbability,
		Factors:     DefaultEventFactors(),
	}
}

// PriceModel is the stochastic update rule applied to each instrument once
// per tick. The zero value has no floor and no events; use
// DefaultPriceModel for the game rules.
type PriceModel struct {
	Floor  decimal.Decimal
	Events EventPolicy
}

func DefaultPriceModel() PriceModel {
	return PriceModel{
		Floor:  DefaultFloor,
		Events: DefaultEventPolicy(),
	}
}

// Next draws the price that follows price for the given volatility.
//
// Draw order is fixed: one Float64 for the drift, one Float64 for the event
// roll, and one Intn for the event factor only when the event fires.
func (pm PriceModel) Next(r Rand, price decimal.Decimal, volatility float64) (decimal.Decimal, bool) {
	drift := volatility * (2*closedUnit(r.Float64()) - 1)
	next := price.Mul(decimal.NewFromFloat(1 + drift))

	event := false
	if r.Float64() < pm.Events.Probability && len(pm.Events.Factors) > 0 {
		next = next.Mul(pm.Events.Factors[r.Intn(len(pm.Events.Factors))])
		event = true
	}

	next = RoundPrice(next)
	if next.LessThan(pm.Floor) {
		next = pm.Floor
	}
	return next, event
}

// maxFloat64Draw is the largest value math/rand's Float64 returns.
const maxFloat64Draw = 1 - 0x1p-53

// closedUnit stretches a [0,1) draw onto [0,1] so the drift spans the closed
// interval [-v, +v].
func closedUnit(u float64) float64 {
	return math.Min(u/maxFloat64Draw, 1)
}

// Apply replaces the instrument's price with the next draw and reports
// whether a jump event fired.
func (pm PriceModel) Apply(r Rand, in *Instrument) bool {
	next, event := pm.Next(r, in.price, in.volatility)
	in.price = next
	return event
}
