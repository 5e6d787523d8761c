// Package game ties a Market and a Ledger into one session. The session is
// the only owner of both and runs every tick, buy and sell under a single
// lock, so callers on different goroutines (a scheduler and a UI) never see
// a half-applied operation.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/internal/id"
	"github.com/rustyeddy/stockgame/internal/metrics"
	"github.com/rustyeddy/stockgame/journal"
	"github.com/rustyeddy/stockgame/ledger"
	"github.com/rustyeddy/stockgame/market"
	"github.com/shopspring/decimal"
)

// ErrJournal marks a failure to record a fill or an equity snapshot. The
// operation it accompanies has already taken effect.
var ErrJournal = errors.New("journal write failed")

type Session struct {
	mu sync.Mutex

	market   *market.Market
	ledger   *ledger.Ledger
	feeRate  decimal.Decimal
	currency string
	ticks    int64

	journal journal.Journal
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
	rng     market.Rand
}

type Option func(*Session)

// WithRand sets the price model's randomness. The default is seeded from
// the config, or randomly when the config seed is zero.
func WithRand(r market.Rand) Option { return func(s *Session) { s.rng = r } }

// WithJournal records fills and equity snapshots. The default discards them.
func WithJournal(j journal.Journal) Option { return func(s *Session) { s.journal = j } }

func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.logger = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(s *Session) { s.metrics = m } }

// WithClock overrides time.Now for journal timestamps.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// New builds a session from cfg.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s := &Session{
		feeRate:  cfg.FeeRate(),
		currency: cfg.Game.Currency,
		journal:  journal.Nop{},
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = market.NewRand(cfg.Market.Seed)
	}

	instruments, err := cfg.BuildInstruments()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	s.market, err = market.New(s.rng, cfg.PriceModel(), instruments...)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	s.ledger, err = ledger.New(cfg.StartCash())
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s.observeLocked()
	s.logger.Info("session started",
		"instruments", s.market.Len(),
		"cash", s.ledger.Cash().StringFixed(2),
		"fee_rate", s.feeRate.String(),
	)
	return s, nil
}

// Tick advances every instrument price by one step and records an equity
// snapshot.
func (s *Session) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.market.Tick()
	s.ticks++

	if s.metrics != nil {
		s.metrics.Ticks.Inc()
		s.metrics.PriceEvents.Add(float64(events))
	}
	s.observeLocked()
	if events > 0 {
		s.logger.Debug("price events", "tick", s.ticks, "events", events)
	}

	pv := s.ledger.PortfolioValue(s.market)
	err := s.journal.RecordEquity(journal.EquitySnapshot{
		Time:      s.now(),
		Tick:      s.ticks,
		Cash:      s.ledger.Cash(),
		Portfolio: pv,
		Total:     s.ledger.Cash().Add(pv),
	})
	if err != nil {
		s.logger.Error("record equity", "tick", s.ticks, "err", err)
		return fmt.Errorf("%w: record equity: %w", ErrJournal, err)
	}
	return nil
}

// Buy purchases quantity units of symbol at the current price using the
// session fee rate.
func (s *Session) Buy(symbol string, quantity int64) (ledger.Fill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fill, err := s.ledger.Buy(s.market, symbol, quantity, s.feeRate)
	return s.afterTradeLocked(ledger.SideBuy, symbol, quantity, fill, err)
}

// Sell disposes of quantity units of symbol at the current price using the
// session fee rate.
func (s *Session) Sell(symbol string, quantity int64) (ledger.Fill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fill, err := s.ledger.Sell(s.market, symbol, quantity, s.feeRate)
	return s.afterTradeLocked(ledger.SideSell, symbol, quantity, fill, err)
}

// afterTradeLocked logs, counts and journals a trade outcome. A journal
// failure is reported but the fill stands.
func (s *Session) afterTradeLocked(side ledger.Side, symbol string, qty int64, fill ledger.Fill, err error) (ledger.Fill, error) {
	if err != nil {
		kind := ledger.KindName(err)
		if s.metrics != nil {
			s.metrics.Rejections.WithLabelValues(kind).Inc()
		}
		s.logger.Warn("trade rejected", "side", side, "symbol", symbol, "quantity", qty, "kind", kind, "err", err)
		return fill, err
	}

	if s.metrics != nil {
		s.metrics.Fills.WithLabelValues(side.String()).Inc()
	}
	s.observeLocked()

	at := s.now()
	rec := journal.FillRecord{
		FillID:    id.At(at),
		Time:      at,
		Side:      fill.Side.String(),
		Symbol:    fill.Symbol,
		Quantity:  fill.Quantity,
		Price:     fill.Price,
		Gross:     fill.Gross,
		Fee:       fill.Fee,
		Net:       fill.Net,
		CashAfter: fill.CashAfter,
	}
	s.logger.Info("trade filled",
		"fill_id", rec.FillID,
		"side", rec.Side,
		"symbol", rec.Symbol,
		"quantity", rec.Quantity,
		"price", rec.Price.String(),
		"net", rec.Net.StringFixed(2),
		"cash", rec.CashAfter.StringFixed(2),
	)
	if jerr := s.journal.RecordFill(rec); jerr != nil {
		s.logger.Error("record fill", "fill_id", rec.FillID, "err", jerr)
		return fill, fmt.Errorf("%w: record fill %s: %w", ErrJournal, rec.FillID, jerr)
	}
	return fill, nil
}

func (s *Session) observeLocked() {
	if s.metrics == nil {
		return
	}
	s.metrics.Cash.Set(s.ledger.Cash().InexactFloat64())
	s.metrics.TotalValue.Set(s.ledger.TotalValue(s.market).InexactFloat64())
}

// FeeRate is the fraction charged on both buys and sells.
func (s *Session) FeeRate() decimal.Decimal { return s.feeRate }

// Currency is the ISO code used when formatting amounts.
func (s *Session) Currency() string { return s.currency }

// Close closes the journal.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journal.Close()
}
