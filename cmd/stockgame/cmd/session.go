package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/game"
	"github.com/rustyeddy/stockgame/internal/metrics"
	"github.com/rustyeddy/stockgame/journal"
)

// sessionFlags are shared by play and sim.
type sessionFlags struct {
	configPath  string
	seed        int64
	metricsAddr string
}

func loadConfig(path string, seed int64, logger *slog.Logger) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path, logger)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if seed != 0 {
		cfg.Market.Seed = seed
	}
	return cfg, nil
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.FillsFile, cfg.EquityFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	default:
		return journal.Nop{}, nil
	}
}

// newSession wires a session from flags. The returned stop function closes
// the journal and shuts the metrics listener down.
func newSession(f sessionFlags, logger *slog.Logger) (*game.Session, *config.Config, func(), error) {
	cfg, err := loadConfig(f.configPath, f.seed, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create journal: %w", err)
	}

	m := metrics.New()
	sess, err := game.New(cfg,
		game.WithJournal(j),
		game.WithLogger(logger),
		game.WithMetrics(m),
	)
	if err != nil {
		j.Close()
		return nil, nil, nil, err
	}

	var srv *http.Server
	if f.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		srv = &http.Server{Addr: f.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("metrics listening", "addr", f.metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "err", err)
			}
		}()
	}

	stop := func() {
		if srv != nil {
			srv.Close()
		}
		if err := sess.Close(); err != nil {
			logger.Error("close journal", "err", err)
		}
	}
	return sess, cfg, stop, nil
}
