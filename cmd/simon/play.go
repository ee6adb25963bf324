package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Simon in the terminal",
	Long: `Start a game of Simon.

Controls:
  1-4 / R G B Y   - Tap the red, green, blue or yellow pad
  Enter/Space     - Start a new game
  S/Esc           - Stop the running game
  ?               - Show all keys
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower flashes, speeds up every 4 rounds
  normal - 250ms flashes, 20ms faster every 3 rounds
  hard   - Fast flashes, speeds up every 2 rounds, no hint
  fixed  - No speed-up at all

Examples:
  simon play
  simon play --difficulty hard
  simon play --seed 42
  simon play --config ./my-simon.yaml --log-file simon.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs the terminal game. It returns instead of exiting so deferred
// cleanup always runs.
func play() error {
	logger, closeLog, err := newLogger("simon", true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size for pad layout
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store, recorder := openRecorder(logger)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open games database, history will not be saved")
	} else {
		defer store.Close()
	}

	engine := simon.New(cfg, engineOptions(logger)...)
	if err := tui.Run(engine, recorder, cfg, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
