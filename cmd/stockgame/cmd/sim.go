package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/game"
	"github.com/rustyeddy/stockgame/ledger"
	"github.com/rustyeddy/stockgame/tui"
	"github.com/spf13/cobra"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Apply trades at the starting prices, advance the market a number of
ticks and print the resulting market and portfolio.

Rejected trades are reported and do not stop the run.

Examples:
  stockgame sim --ticks 100 --seed 7 --buy TECH:10 --buy FOOD:20
  stockgame sim -f game.yaml --ticks 50 --buy TECH:10 --sell TECH:4`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

var (
	simFlags sessionFlags
	simTicks int
	simBuys  []string
	simSells []string
)

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().StringVarP(&simFlags.configPath, "config", "f", config.DefaultPath, "path to config file (YAML, JSON or KEY=VALUE)")
	simCmd.Flags().Int64Var(&simFlags.seed, "seed", 0, "random seed (0 = config or random)")
	simCmd.Flags().StringVar(&simFlags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	simCmd.Flags().IntVarP(&simTicks, "ticks", "n", 10, "number of ticks to run")
	simCmd.Flags().StringArrayVar(&simBuys, "buy", nil, "buy order SYMBOL:QTY (repeatable)")
	simCmd.Flags().StringArrayVar(&simSells, "sell", nil, "sell order SYMBOL:QTY (repeatable)")
}

func runSim(cmd *cobra.Command, args []string) error {
	if simTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}

	orders, err := parseOrders()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, _, stop, err := newSession(simFlags, logger)
	if err != nil {
		return err
	}
	defer stop()

	out := cmd.OutOrStdout()
	for _, o := range orders {
		fill, err := sess.Place(o)
		fmt.Fprintln(out, game.Describe(fill, err))
	}

	if err := sess.RunTicks(simTicks); err != nil {
		return fmt.Errorf("run ticks: %w", err)
	}

	snap := sess.Snapshot()
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.MarketTable(snap, -1))
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.PortfolioTable(snap))
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.InfoLine(snap))
	return nil
}

// parseOrders returns buys before sells, each in flag order.
func parseOrders() ([]game.Order, error) {
	orders := make([]game.Order, 0, len(simBuys)+len(simSells))
	for _, s := range simBuys {
		o, err := game.ParseOrder(ledger.SideBuy, s)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	for _, s := range simSells {
		o, err := game.ParseOrder(ledger.SideSell, s)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
