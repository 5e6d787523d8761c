package cmd

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game in the terminal",
	Long: `Start the interactive game.

Keys:
  up/down  select a stock
  +/-      change the order quantity
  b        buy
  s        sell
  q        quit

Logs are discarded unless --log-file is given.

Example:
  stockgame play --seed 42 --tick 500ms`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playFlags sessionFlags
	playTick  time.Duration
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playFlags.configPath, "config", "f", config.DefaultPath, "path to config file (YAML, JSON or KEY=VALUE)")
	playCmd.Flags().Int64Var(&playFlags.seed, "seed", 0, "random seed (0 = config or random)")
	playCmd.Flags().StringVar(&playFlags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	playCmd.Flags().DurationVar(&playTick, "tick", 0, "tick interval (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, cfg, stop, err := newSession(playFlags, logger)
	if err != nil {
		return err
	}
	defer stop()

	interval := playTick
	if interval <= 0 {
		if interval, err = cfg.TickDuration(); err != nil {
			return fmt.Errorf("tick interval: %w", err)
		}
	}

	p := tea.NewProgram(tui.NewModel(sess, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	snap := sess.Snapshot()
	fmt.Println(tui.InfoLine(snap))
	return nil
}
