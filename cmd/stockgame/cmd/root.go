package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stockgame",
	Short: "A terminal stock trading game",
	Long: `Stockgame is a single-player stock trading simulation for the terminal.

Prices follow a random walk with occasional jumps. You start with cash,
buy and sell shares at the current price, and every trade pays a fee.

It provides:
  - An interactive terminal game (play)
  - A headless simulation for scripted trades (sim)
  - Configuration management (config)
  - A queryable trade journal (journal)`,
	SilenceUsage: true,
}

var (
	logLevel string
	logFile  string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}

// newLogger builds the process logger. fallback is used when no log file
// is configured.
func newLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", logLevel, err)
	}

	w, closeFn := fallback, func() error { return nil }
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
