package market

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Instrument is one tradable asset. Its identity never changes; its price
// is replaced on every tick by the PriceModel and by nothing else.
type Instrument struct {
	symbol     string
	name       string
	price      decimal.Decimal
	volatility float64
}

// Quote is an immutable view of an instrument at one point in time.
type Quote struct {
	Symbol     string
	Name       string
	Price      decimal.Decimal
	Volatility float64
}

// Normalize returns the canonical form of a symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// NewInstrument validates and builds an instrument with a seed price.
// Volatility is the maximum symmetric per-tick drift as a fraction.
func NewInstrument(symbol, name string, price decimal.Decimal, volatility float64) (*Instrument, error) {
	sym := Normalize(symbol)
	if sym == "" {
		return nil, fmt.Errorf("instrument: symbol is required")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("instrument %s: price must be positive, got %s", sym, price)
	}
	if math.IsNaN(volatility) || volatility < 0 || volatility >= 1 {
		return nil, fmt.Errorf("instrument %s: volatility must be in [0,1), got %g", sym, volatility)
	}
	return &Instrument{
		symbol:     sym,
		name:       name,
		price:      RoundPrice(price),
		volatility: volatility,
	}, nil
}

func (i *Instrument) Symbol() string         { return i.symbol }
func (i *Instrument) Name() string           { return i.name }
func (i *Instrument) Price() decimal.Decimal { return i.price }
func (i *Instrument) Volatility() float64    { return i.volatility }

// Quote returns a copy of the instrument's current state.
func (i *Instrument) Quote() Quote {
	return Quote{
		Symbol:     i.symbol,
		Name:       i.name,
		Price:      i.price,
		Volatility: i.volatility,
	}
}

func (i *Instrument) String() string {
	return fmt.Sprintf("%s(%s)", i.symbol, i.price.StringFixed(2))
}
