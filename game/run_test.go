package game

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rustyeddy/stockgame/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	var seen atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, time.Millisecond, func(snap Snapshot) {
			if seen.Add(1) >= 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	assert.GreaterOrEqual(t, s.Snapshot().Tick, int64(3))
}

func TestRunRejectsBadInterval(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t)
	assert.Error(t, s.Run(context.Background(), 0, nil))
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{in: "tech:10", want: Order{Side: ledger.SideBuy, Symbol: "TECH", Quantity: 10}},
		{in: " food : 3", want: Order{Side: ledger.SideBuy, Symbol: "FOOD", Quantity: 3}},
		{in: "TECH:0", want: Order{Side: ledger.SideBuy, Symbol: "TECH", Quantity: 0}},
		{in: "TECH", wantErr: true},
		{in: ":5", wantErr: true},
		{in: "TECH:x", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseOrder(ledger.SideBuy, tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	fill := ledger.Fill{
		Side: ledger.SideSell, Symbol: "TECH", Quantity: 4,
		Gross: dec("600"), Fee: dec("6"), Net: dec("594"),
	}
	rejected := &ledger.TradeError{Kind: ledger.ErrNoPosition, Symbol: "FOOD"}

	tests := []struct {
		name string
		fill ledger.Fill
		err  error
		want string
	}{
		{"filled", fill, nil, "Sold 4x TECH for 600.00 (fee 6.00, net 594.00)."},
		{"rejected", ledger.Fill{}, rejected, "no position in FOOD"},
		{"filled but not journaled", fill, fmt.Errorf("%w: record fill X: %w", ErrJournal, errors.New("disk full")),
			"Sold 4x TECH for 600.00 (fee 6.00, net 594.00). Warning: journal write failed: record fill X: disk full"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Describe(tt.fill, tt.err))
		})
	}
}
