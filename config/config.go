package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rustyeddy/stockgame/market"
	"github.com/rustyeddy/stockgame/money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a value is not configured.
const (
	DefaultStartCash    = 10000.0
	DefaultFeeRate      = 0.01
	DefaultTickInterval = "1s"
)

// DefaultPath is the KEY=value file read when no config file is named.
const DefaultPath = "data/config.txt"

// Config represents the complete game configuration
type Config struct {
	Game    GameConfig    `json:"game" yaml:"game"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// GameConfig contains the player's starting conditions
type GameConfig struct {
	StartCash float64 `json:"start_cash" yaml:"start_cash"`
	FeeRate   float64 `json:"fee_rate" yaml:"fee_rate"`
	Currency  string  `json:"currency" yaml:"currency"`
}

// MarketConfig contains price model parameters and the instrument universe
type MarketConfig struct {
	Seed             int64              `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 = random
	TickInterval     string             `json:"tick_interval" yaml:"tick_interval"`   // e.g. "1s", "500ms"
	PriceFloor       float64            `json:"price_floor" yaml:"price_floor"`
	EventProbability float64            `json:"event_probability" yaml:"event_probability"`
	EventFactors     []float64          `json:"event_factors" yaml:"event_factors"`
	Instruments      []InstrumentConfig `json:"instruments,omitempty" yaml:"instruments,omitempty"` // empty = default catalog
}

// InstrumentConfig seeds one instrument
type InstrumentConfig struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Name       string  `json:"name" yaml:"name"`
	Price      float64 `json:"price" yaml:"price"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	FillsFile  string `json:"fills_file,omitempty" yaml:"fills_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Default returns a configuration with the game's standard rules
func Default() *Config {
	return &Config{
		Game: GameConfig{
			StartCash: DefaultStartCash,
			FeeRate:   DefaultFeeRate,
			Currency:  money.DefaultCurrency,
		},
		Market: MarketConfig{
			TickInterval:     DefaultTickInterval,
			PriceFloor:       market.DefaultFloor.InexactFloat64(),
			EventProbability: market.DefaultEventProbability,
			EventFactors:     []float64{0.80, 0.85, 1.15, 1.20},
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file. Keys missing
// from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isStructured(path string) bool {
	return isYAML(path) || strings.ToLower(filepath.Ext(path)) == ".json"
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !finite(c.Game.StartCash) {
		return fmt.Errorf("game.start_cash must be a finite number")
	}
	if c.Game.StartCash < 0 {
		return fmt.Errorf("game.start_cash must not be negative")
	}
	if !finite(c.Game.FeeRate) || c.Game.FeeRate < 0 || c.Game.FeeRate >= 1 {
		return fmt.Errorf("game.fee_rate must be in [0,1)")
	}
	if c.Game.Currency == "" {
		return fmt.Errorf("game.currency is required")
	}

	d, err := c.TickDuration()
	if err != nil {
		return fmt.Errorf("market.tick_interval: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("market.tick_interval must be positive")
	}
	if !finite(c.Market.PriceFloor) || c.Market.PriceFloor <= 0 {
		return fmt.Errorf("market.price_floor must be positive")
	}
	if !finite(c.Market.EventProbability) || c.Market.EventProbability < 0 || c.Market.EventProbability > 1 {
		return fmt.Errorf("market.event_probability must be between 0 and 1")
	}
	for _, f := range c.Market.EventFactors {
		if !finite(f) || f <= 0 {
			return fmt.Errorf("market.event_factors must all be positive")
		}
	}
	if _, err := c.BuildInstruments(); err != nil {
		return fmt.Errorf("market.instruments: %w", err)
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.FillsFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal fills_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// TickDuration parses the tick interval.
func (c *Config) TickDuration() (time.Duration, error) {
	if c.Market.TickInterval == "" {
		return time.ParseDuration(DefaultTickInterval)
	}
	return time.ParseDuration(c.Market.TickInterval)
}

func (c *Config) StartCash() decimal.Decimal { return money.Cash(money.FromFloat(c.Game.StartCash)) }
func (c *Config) FeeRate() decimal.Decimal   { return money.FromFloat(c.Game.FeeRate) }

// PriceModel builds the market price model from the configured policy.
func (c *Config) PriceModel() market.PriceModel {
	factors := make([]decimal.Decimal, 0, len(c.Market.EventFactors))
	for _, f := range c.Market.EventFactors {
		factors = append(factors, decimal.NewFromFloat(f))
	}
	return market.PriceModel{
		Floor: market.FromFloat(c.Market.PriceFloor),
		Events: market.EventPolicy{
			Probability: c.Market.EventProbability,
			Factors:     factors,
		},
	}
}

// BuildInstruments returns fresh instruments for the configured universe,
// or the default catalog when none are configured. Duplicate symbols are
// rejected.
func (c *Config) BuildInstruments() ([]*market.Instrument, error) {
	if len(c.Market.Instruments) == 0 {
		return market.DefaultInstruments(), nil
	}

	metas := make([]market.InstrumentMeta, 0, len(c.Market.Instruments))
	seen := make(map[string]bool, len(c.Market.Instruments))
	for _, ic := range c.Market.Instruments {
		sym := market.Normalize(ic.Symbol)
		if seen[sym] {
			return nil, fmt.Errorf("duplicate symbol %s", sym)
		}
		seen[sym] = true
		if !finite(ic.Price) || !finite(ic.Volatility) {
			return nil, fmt.Errorf("instrument %s: price and volatility must be finite", sym)
		}
		metas = append(metas, market.InstrumentMeta{
			Symbol:     ic.Symbol,
			Name:       ic.Name,
			SeedPrice:  ic.Price,
			Volatility: ic.Volatility,
		})
	}
	return market.FromMeta(metas)
}
