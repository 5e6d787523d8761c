package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/journal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatRand never moves prices: zero drift and no events.
type flatRand struct{}

func (flatRand) Float64() float64 { return 0.5 }
func (flatRand) Intn(int) int     { return 0 }

// upRand drifts every price up by its full volatility.
type upRand struct{}

func (upRand) Float64() float64 { return 0.999999 }
func (upRand) Intn(int) int     { return 0 }

var epoch = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func fixedClock() func() time.Time { return func() time.Time { return epoch } }

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Market.Instruments = []config.InstrumentConfig{
		{Symbol: "TECH", Name: "Techify AG", Price: 150, Volatility: 0.01},
		{Symbol: "FOOD", Name: "FoodWorld AG", Price: 45, Volatility: 0.006},
	}
	return cfg
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *journal.Memory) {
	t.Helper()

	mem := journal.NewMemory()
	base := []Option{
		WithRand(flatRand{}),
		WithJournal(mem),
		WithLogger(quietLogger()),
		WithClock(fixedClock()),
	}
	s, err := New(testConfig(), append(base, opts...)...)
	require.NoError(t, err)
	return s, mem
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s got %s", want, got)
}
