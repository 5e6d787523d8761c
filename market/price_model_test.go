package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPriceModelNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		price      string
		volatility float64
		floats     []float64
		ints       []int
		want       string
		wantEvent  bool
	}{
		{"upper drift", "100", 0.01, []float64{0.75, 0.5}, nil, "100.5", false},
		{"lower drift", "100", 0.01, []float64{0, 0.5}, nil, "99", false},
		{"largest draw reaches upper bound", "100", 0.01, []float64{maxFloat64Draw, 0.5}, nil, "101", false},
		{"no drift", "150", 0.01, []float64{0.5, 0.99}, nil, "150", false},
		{"jump up", "100", 0, []float64{0.5, 0.01}, []int{2}, "115", true},
		{"jump down", "100", 0, []float64{0.5, 0.0}, []int{0}, "80", true},
		{"floor", "0.11", 0, []float64{0.5, 0.0}, []int{0}, "0.10", true},
		{"roll at probability does not fire", "100", 0, []float64{0.5, 0.02}, nil, "100", false},
	}

	pm := DefaultPriceModel()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &scriptedRand{floats: tt.floats, ints: tt.ints}
			got, event := pm.Next(r, dec(tt.price), tt.volatility)
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
			assert.Equal(t, tt.wantEvent, event)
			assert.Empty(t, r.floats, "all float draws consumed")
			assert.Empty(t, r.ints, "all int draws consumed")
		})
	}
}

func TestPriceModelZeroProbability(t *testing.T) {
	t.Parallel()

	pm := DefaultPriceModel()
	pm.Events.Probability = 0

	r := &scriptedRand{floats: []float64{0.5, 0.0}}
	got, event := pm.Next(r, dec("42"), 0.01)
	assert.False(t, event)
	assert.True(t, dec("42").Equal(got))
}

func TestPriceModelCustomFactors(t *testing.T) {
	t.Parallel()

	pm := PriceModel{
		Floor:  dec("1"),
		Events: EventPolicy{Probability: 1, Factors: []decimal.Decimal{dec("2")}},
	}
	r := &scriptedRand{floats: []float64{0.5, 0.3}, ints: []int{0}}
	got, event := pm.Next(r, dec("10"), 0.05)
	assert.True(t, event)
	assert.True(t, dec("20").Equal(got))
}

func TestPriceModelStaysAboveFloor(t *testing.T) {
	t.Parallel()

	pm := DefaultPriceModel()
	pm.Events.Probability = 0.5

	in, err := NewInstrument("crash", "Crash Corp", dec("1"), 0.9)
	require.NoError(t, err)

	r := NewRand(7)
	for i := 0; i < 5000; i++ {
		pm.Apply(r, in)
		require.True(t, in.Price().GreaterThanOrEqual(DefaultFloor), "tick %d price %s", i, in.Price())
	}
}

func TestPriceModelDriftBounded(t *testing.T) {
	t.Parallel()

	pm := DefaultPriceModel()
	pm.Events.Probability = 0

	const v = 0.02
	slack := dec("0.0001")
	r := NewRand(42)
	price := dec("100")
	for i := 0; i < 2000; i++ {
		next, event := pm.Next(r, price, v)
		require.False(t, event)

		lo := price.Mul(decimal.NewFromFloat(1 - v)).Sub(slack)
		hi := price.Mul(decimal.NewFromFloat(1 + v)).Add(slack)
		require.True(t, next.GreaterThanOrEqual(lo), "tick %d: %s < %s", i, next, lo)
		require.True(t, next.LessThanOrEqual(hi), "tick %d: %s > %s", i, next, hi)
		price = next
	}
}

func TestPriceModelSeededIsReproducible(t *testing.T) {
	t.Parallel()

	pm := DefaultPriceModel()
	a, b := NewRand(99), NewRand(99)
	pa, pb := dec("150"), dec("150")
	for i := 0; i < 100; i++ {
		pa, _ = pm.Next(a, pa, 0.01)
		pb, _ = pm.Next(b, pb, 0.01)
	}
	assert.True(t, pa.Equal(pb))
}
