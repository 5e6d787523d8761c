package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/stockgame/config"
	"github.com/rustyeddy/stockgame/money"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate configuration files",
	Long: `Manage game configuration files.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  stockgame config init -o game.yaml
  stockgame config validate -f game.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with the standard game rules and the
default instrument catalog.

Example:
  stockgame config init -o game.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check if a configuration file is valid and can be loaded.

Example:
  stockgame config validate -f game.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "stockgame.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	cfg.Market.Instruments = defaultCatalogConfig()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and run with:")
	fmt.Printf("  stockgame play -f %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := os.Stat(configValidatePath); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	cfg, err := config.Load(configValidatePath, logger)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	instruments, err := cfg.BuildInstruments()
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
	fmt.Printf("  Start cash: %s\n", money.Format(cfg.StartCash(), cfg.Game.Currency))
	fmt.Printf("  Fee rate: %.2f%%\n", cfg.Game.FeeRate*100)
	fmt.Printf("  Instruments: %d\n", len(instruments))
	fmt.Printf("  Tick: %s\n", cfg.Market.TickInterval)
	fmt.Printf("  Journal: %s\n", cfg.Journal.Type)
	return nil
}
