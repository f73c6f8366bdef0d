// fruit2048 is the 2048 sliding-tile puzzle in the terminal, with fruit tiles.
//
// Usage:
//
//	fruit2048 play          - Play interactively
//	fruit2048 scores        - Show the best score and finished games
//	fruit2048 legend        - Show which fruit stands for which value
//	fruit2048 sim <moves>   - Replay a move list headlessly
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.fruit2048/scores.db)
//	--config <path>      - Use a custom config file
//	--preset <name>      - Spawn preset: easy, normal, hard
//	--log-level <level>  - debug, info, warn or error
//
// FRUIT2048_DB, FRUIT2048_CONFIG and FRUIT2048_LOG_LEVEL supply defaults for
// the matching flags and may be set in a .env file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit2048/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

// Environment variables that back flags left unset on the command line.
var envFlags = map[string]string{
	"db":        "FRUIT2048_DB",
	"config":    "FRUIT2048_CONFIG",
	"log-level": "FRUIT2048_LOG_LEVEL",
}

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruit2048",
	Short: "fruit2048 - the 2048 puzzle with fruit, in your terminal",
	Long: `fruit2048 is the 2048 sliding-tile puzzle for the terminal.
Equal fruits merge into the next fruit; reach the mango (2048) to win bragging rights.

Available commands:
  play     - Play interactively
  scores   - View the best score and finished games
  legend   - Show the fruit for each tile value
  sim      - Replay a move list without the UI

Examples:
  fruit2048 play
  fruit2048 play --preset hard --numbers
  fruit2048 scores
  fruit2048 sim --seed 42 l,u,r,d`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Spawn preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(legendCmd)
	rootCmd.AddCommand(simCmd)
}

// applyEnv fills flags that were not given on the command line from the
// environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	for name, env := range envFlags {
		val, ok := os.LookupEnv(env)
		if !ok || val == "" {
			continue
		}
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(val); err != nil {
			return fmt.Errorf("%s=%q: %w", env, val, err)
		}
	}
	return nil
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	config.ApplyPreset(&cfg, flagPreset)
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruit2048",
		Level:           level,
	}), nil
}
