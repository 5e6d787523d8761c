package ledger

import (
	"testing"

	"github.com/rustyeddy/stockgame/market"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuoter lets tests reprice an instrument between trades.
type fakeQuoter map[string]*market.Instrument

func (f fakeQuoter) Lookup(symbol string) (*market.Instrument, bool) {
	in, ok := f[market.Normalize(symbol)]
	return in, ok
}

func (f fakeQuoter) set(t *testing.T, symbol, price string) {
	t.Helper()

	in, err := market.NewInstrument(symbol, symbol+" Corp", dec(price), 0.01)
	require.NoError(t, err)
	f[in.Symbol()] = in
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s got %s", want, got}, msgAndArgs...)...)
}

func newTestLedger(t *testing.T, cash string) *Ledger {
	t.Helper()

	l, err := New(dec(cash))
	require.NoError(t, err)
	return l
}

var feeRate = dec("0.01")
