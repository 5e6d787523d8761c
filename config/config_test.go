package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, 10000.0, cfg.Game.StartCash)
	assert.Equal(t, 0.01, cfg.Game.FeeRate)
	assert.Equal(t, "EUR", cfg.Game.Currency)
	assert.Equal(t, 0.02, cfg.Market.EventProbability)
	assert.Equal(t, []float64{0.80, 0.85, 1.15, 1.20}, cfg.Market.EventFactors)
	assert.NoError(t, cfg.Validate())

	d, err := cfg.TickDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"negative cash", func(c *Config) { c.Game.StartCash = -1 }, "game.start_cash must not be negative"},
		{"fee rate of one", func(c *Config) { c.Game.FeeRate = 1 }, "game.fee_rate must be in [0,1)"},
		{"negative fee rate", func(c *Config) { c.Game.FeeRate = -0.1 }, "game.fee_rate must be in [0,1)"},
		{"missing currency", func(c *Config) { c.Game.Currency = "" }, "game.currency is required"},
		{"bad tick interval", func(c *Config) { c.Market.TickInterval = "soon" }, "market.tick_interval"},
		{"zero tick interval", func(c *Config) { c.Market.TickInterval = "0s" }, "market.tick_interval must be positive"},
		{"zero floor", func(c *Config) { c.Market.PriceFloor = 0 }, "market.price_floor must be positive"},
		{"probability above one", func(c *Config) { c.Market.EventProbability = 1.5 }, "market.event_probability"},
		{"negative factor", func(c *Config) { c.Market.EventFactors = []float64{1.1, -1} }, "market.event_factors"},
		{"NaN cash", func(c *Config) { c.Game.StartCash = math.NaN() }, "game.start_cash must be a finite number"},
		{"infinite cash", func(c *Config) { c.Game.StartCash = math.Inf(1) }, "game.start_cash must be a finite number"},
		{"NaN fee rate", func(c *Config) { c.Game.FeeRate = math.NaN() }, "game.fee_rate must be in [0,1)"},
		{"NaN floor", func(c *Config) { c.Market.PriceFloor = math.NaN() }, "market.price_floor must be positive"},
		{"infinite floor", func(c *Config) { c.Market.PriceFloor = math.Inf(1) }, "market.price_floor must be positive"},
		{"NaN probability", func(c *Config) { c.Market.EventProbability = math.NaN() }, "market.event_probability"},
		{"infinite factor", func(c *Config) { c.Market.EventFactors = []float64{math.Inf(1)} }, "market.event_factors"},
		{"NaN instrument price", func(c *Config) {
			c.Market.Instruments = []InstrumentConfig{{Symbol: "TECH", Price: math.NaN(), Volatility: 0.01}}
		}, "must be finite"},
		{"NaN instrument volatility", func(c *Config) {
			c.Market.Instruments = []InstrumentConfig{{Symbol: "TECH", Price: 10, Volatility: math.NaN()}}
		}, "must be finite"},
		{"duplicate instruments", func(c *Config) {
			c.Market.Instruments = []InstrumentConfig{
				{Symbol: "TECH", Name: "A", Price: 1, Volatility: 0.01},
				{Symbol: "tech", Name: "B", Price: 2, Volatility: 0.01},
			}
		}, "duplicate symbol TECH"},
		{"bad instrument price", func(c *Config) {
			c.Market.Instruments = []InstrumentConfig{{Symbol: "TECH", Price: 0}}
		}, "price must be positive"},
		{"unknown journal", func(c *Config) { c.Journal.Type = "xml" }, "journal.type must be"},
		{"csv without files", func(c *Config) { c.Journal.Type = "csv" }, "fills_file and equity_file"},
		{"sqlite without path", func(c *Config) { c.Journal.Type = "sqlite" }, "db_path required"},
		{"sqlite with path", func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "x.db" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Game.StartCash = 2500
			cfg.Market.Seed = 42
			cfg.Market.Instruments = []InstrumentConfig{{Symbol: "TECH", Name: "Techify AG", Price: 150, Volatility: 0.01}}
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadFromFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  start_cash: 500\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Game.StartCash)
	assert.Equal(t, 0.01, cfg.Game.FeeRate)
	assert.Equal(t, "1s", cfg.Market.TickInterval)
}

func TestLoadFromFileInvalid(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  fee_rate: 2\n"), 0644))
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestPriceModelFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Market.PriceFloor = 0.5
	cfg.Market.EventProbability = 0.1
	cfg.Market.EventFactors = []float64{0.5, 2}

	pm := cfg.PriceModel()
	assert.Equal(t, "0.5", pm.Floor.String())
	assert.Equal(t, 0.1, pm.Events.Probability)
	require.Len(t, pm.Events.Factors, 2)
	assert.Equal(t, "2", pm.Events.Factors[1].String())
}

func TestBuildInstruments(t *testing.T) {
	cfg := Default()
	ins, err := cfg.BuildInstruments()
	require.NoError(t, err)
	assert.Len(t, ins, 10)

	cfg.Market.Instruments = []InstrumentConfig{
		{Symbol: "zed", Name: "Zed", Price: 12.5, Volatility: 0.03},
		{Symbol: "ABC", Name: "Abc", Price: 1, Volatility: 0},
	}
	ins, err = cfg.BuildInstruments()
	require.NoError(t, err)
	require.Len(t, ins, 2)
	assert.Equal(t, "ZED", ins[0].Symbol())
	assert.Equal(t, "ABC", ins[1].Symbol())
}

func TestStartCashAndFeeRate(t *testing.T) {
	cfg := Default()
	cfg.Game.StartCash = 1234.567
	cfg.Game.FeeRate = 0.0025
	assert.Equal(t, "1234.57", cfg.StartCash().String())
	assert.Equal(t, "0.0025", cfg.FeeRate().String())
}

func TestLoadFromFileRejectsNaN(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  start_cash: .nan\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finite")
}
