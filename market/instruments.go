// market/instruments.go
package market

// InstrumentMeta is the static description of a catalog instrument.
type InstrumentMeta struct {
	Symbol     string
	Name       string
	SeedPrice  float64
	Volatility float64 // 0.01 = +/- 1% per tick
}

// Catalog is the default instrument universe in display order.
var Catalog = []InstrumentMeta{
	{Symbol: "TECH", Name: "Techify AG", SeedPrice: 150.0, Volatility: 0.01},
	{Symbol: "GREEN", Name: "GreenCorp SE", SeedPrice: 80.0, Volatility: 0.008},
	{Symbol: "SPACE", Name: "SpaceXplorer", SeedPrice: 220.0, Volatility: 0.015},
	{Symbol: "FOOD", Name: "FoodWorld AG", SeedPrice: 45.0, Volatility: 0.006},
	{Symbol: "BANK", Name: "SafeBank SA", SeedPrice: 60.0, Volatility: 0.005},
	{Symbol: "AUTO", Name: "AutoMotion AG", SeedPrice: 95.0, Volatility: 0.012},
	{Symbol: "ENER", Name: "EnerGen SE", SeedPrice: 70.0, Volatility: 0.011},
	{Symbol: "HEAL", Name: "HealthPlus AG", SeedPrice: 55.0, Volatility: 0.007},
	{Symbol: "GAME", Name: "GameWorld SE", SeedPrice: 40.0, Volatility: 0.02},
	{Symbol: "CLOUD", Name: "Cloudify SA", SeedPrice: 130.0, Volatility: 0.013},
}

// FromMeta builds fresh instruments from metadata, preserving order.
func FromMeta(metas []InstrumentMeta) ([]*Instrument, error) {
	out := make([]*Instrument, 0, len(metas))
	for _, meta := range metas {
		in, err := NewInstrument(meta.Symbol, meta.Name, FromFloat(meta.SeedPrice), meta.Volatility)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// DefaultInstruments returns new instruments for the default catalog.
func DefaultInstruments() []*Instrument {
	out, err := FromMeta(Catalog)
	if err != nil {
		// Catalog is static.
		panic(err)
	}
	return out
}
