// simon is a terminal Simon memory game.
//
// Usage:
//
//	simon                    - Play (same as 'simon play')
//	simon play               - Play in the terminal
//	simon scores             - Show game history
//	simon serve              - Start SSH server for remote play
//	simon autoplay           - Let a bot play with real timing
//	simon config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible sequences
//	--db <path>           - Set database path (default: ~/.simon/games.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/simon"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - the color memory game in your terminal",
	Long: `Simon plays a growing sequence of colored pads. Repeat it.
Every correct round adds one more signal and playback gets faster.
One wrong pad ends the game.

Available commands:
  play      - Play in the terminal (default)
  scores    - View game history
  serve     - Start SSH server for remote play
  autoplay  - Watch a bot play
  config    - Print the effective configuration

Examples:
  simon
  simon play --difficulty hard
  simon scores --interactive
  simon serve --ssh :2222
  simon autoplay --rounds 5`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.simon/games.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies --difficulty when it was given.
func loadConfig() (config.SimonConfig, error) {
	return config.LoadSimonWithPreset(flagConfig, flagDifficulty)
}

// engineOptions returns the engine options implied by global flags.
func engineOptions(logger *log.Logger) []simon.Option {
	opts := []simon.Option{simon.WithLogger(logger)}
	if flagSeed != 0 {
		opts = append(opts, simon.WithSource(simon.NewSeededSource(flagSeed)))
	}
	return opts
}

// openRecorder opens the history store. On failure it warns and returns
// nils so the game still runs without persistence.
func openRecorder(logger *log.Logger) (*storage.Store, simon.ResultRecorder) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open games database", "error", err)
		return nil, nil
	}
	return store, store
}
