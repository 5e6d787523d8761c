package market

import (
	"fmt"
)

// Market is the registry of instruments for one session. The instrument
// universe is fixed at construction.
//
// Market is not safe for concurrent use. game.Session serializes every
// operation against it.
type Market struct {
	instruments []*Instrument
	bySymbol    map[string]*Instrument
	model       PriceModel
	rng         Rand
}

// New registers instruments in the given order. Symbols must be unique
// after normalization. A nil rng is replaced by a randomly seeded one.
func New(rng Rand, model PriceModel, instruments ...*Instrument) (*Market, error) {
	if rng == nil {
		rng = NewRand(0)
	}

	m := &Market{
		instruments: make([]*Instrument, 0, len(instruments)),
		bySymbol:    make(map[string]*Instrument, len(instruments)),
		model:       model,
		rng:         rng,
	}
	for _, in := range instruments {
		if in == nil {
			return nil, fmt.Errorf("market: nil instrument")
		}
		if _, dup := m.bySymbol[in.symbol]; dup {
			return nil, fmt.Errorf("market: duplicate symbol %s", in.symbol)
		}
		m.bySymbol[in.symbol] = in
		m.instruments = append(m.instruments, in)
	}
	return m, nil
}

// Tick applies the price model to every instrument independently and
// returns how many jump events fired.
func (m *Market) Tick() int {
	events := 0
	for _, in := range m.instruments {
		if m.model.Apply(m.rng, in) {
			events++
		}
	}
	return events
}

// Lookup finds an instrument by symbol, ignoring case.
func (m *Market) Lookup(symbol string) (*Instrument, bool) {
	in, ok := m.bySymbol[Normalize(symbol)]
	return in, ok
}

// Instruments returns every instrument in registration order.
func (m *Market) Instruments() []*Instrument {
	out := make([]*Instrument, len(m.instruments))
	copy(out, m.instruments)
	return out
}

// Quotes returns a snapshot of every instrument in registration order.
func (m *Market) Quotes() []Quote {
	out := make([]Quote, 0, len(m.instruments))
	for _, in := range m.instruments {
		out = append(out, in.Quote())
	}
	return out
}

func (m *Market) Len() int { return len(m.instruments) }

// Model returns the price model used by Tick.
func (m *Market) Model() PriceModel { return m.model }
