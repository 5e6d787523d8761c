package cmd

import (
	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/market"
)

// defaultCatalogConfig spells out the built-in catalog so a generated
// config file can be edited instrument by instrument.
func defaultCatalogConfig() []config.InstrumentConfig {
	out := make([]config.InstrumentConfig, 0, len(market.Catalog))
	for _, m := range market.Catalog {
		out = append(out, config.InstrumentConfig{
			Symbol:     m.Symbol,
			Name:       m.Name,
			Price:      m.SeedPrice,
			Volatility: m.Volatility,
		})
	}
	return out
}
