// timber is a lumberjack reflex game for the terminal.
//
// Usage:
//
//	timber play              - Play in this terminal
//	timber serve             - Start SSH server for remote play
//	timber keys              - Show the key bindings
//	timber simulate          - Run a headless bot game
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.timber/config.yaml, ./configs/timber.yaml)
//	--fps <rate>       - Set tick rate (default: from config, 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timber/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "timber",
	Short: "Timber - chop the tree, dodge the branches",
	Long: `Timber is a one-screen reflex game. Chop the trunk from the left or the
right, never on the side of a branch hanging at the bottom segment, and keep
chopping before the timer runs out.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  keys      - Show the key bindings
  simulate  - Run a headless bot game

Examples:
  timber play
  timber play --seed 42
  timber serve --ssh :2222
  timber simulate --bot random --seed 7`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagFPS != 0 {
		loaded.Runtime.TickRate = flagFPS
	}
	if flagSeed != 0 {
		loaded.Runtime.Seed = flagSeed
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		loaded.Log.File = flagLogFile
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
