package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

var (
	flagRounds int
	flagMissAt int
	flagThink  time.Duration
	flagFast   bool
	flagNoSave bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a bot play Simon with real timing",
	Long: `Run a headless game where a bot repeats every sequence.
Playback, hint and pauses use the real clock, so a run takes as long as a
human game would. Events are printed as they happen.

The bot stops the game (aborted) after --rounds completed rounds, or taps a
wrong pad in round --miss-at to end it with a mismatch.

Examples:
  simon autoplay --rounds 5
  simon autoplay --rounds 0 --miss-at 8 --fast
  simon autoplay --seed 7 --log-level debug --no-save`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Stop after this many completed rounds (0 = never)")
	autoplayCmd.Flags().IntVar(&flagMissAt, "miss-at", 0, "Tap a wrong pad in this round (0 = never)")
	autoplayCmd.Flags().DurationVar(&flagThink, "think", 150*time.Millisecond, "Delay before each tap")
	autoplayCmd.Flags().BoolVar(&flagFast, "fast", false, "Play at a fifth of the configured timings")
	autoplayCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the game in history")
}

// botOptions controls the autoplay bot.
type botOptions struct {
	Rounds int
	MissAt int
	Think  time.Duration
	Clock  clockwork.Clock
}

func runAutoplay(_ *cobra.Command, _ []string) {
	if err := runBotGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runBotGame plays one bot game from the command line flags.
func runBotGame() error {
	if flagRounds == 0 && flagMissAt == 0 {
		return errors.New("need --rounds or --miss-at, the bot never fails on its own")
	}

	logger, closeLog, err := newLogger("simon-bot", false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFast {
		cfg = fastConfig(cfg)
	}

	engine := simon.New(cfg, engineOptions(logger)...)
	obs := simon.NewChannelObserver(256)
	engine.Observe(obs.Observe)
	defer obs.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := autoplay(ctx, engine, obs, botOptions{
		Rounds: flagRounds,
		MissAt: flagMissAt,
		Think:  flagThink,
	}, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Final round: %d   Cleared: %d   Record: %d   Speed: %dms   Ended: %s   Time: %s\n",
		result.FinalRound, result.Completed, result.Record, result.Speed.Milliseconds(), result.Reason, result.Duration.Round(time.Millisecond))

	if flagNoSave {
		return nil
	}
	store, recorder := openRecorder(logger)
	if store == nil {
		return nil
	}
	defer store.Close()
	if err := recorder.RecordResult(result); err != nil {
		logger.Warn("could not save game", "game", result.GameID, "error", err)
		return nil
	}
	if saved, err := store.GameByID(result.GameID); err == nil && saved != nil {
		fmt.Printf("Saved as game %s\n", saved.GameID)
	}
	return nil
}

// autoplay starts a game and plays it until it ends, printing events to w.
func autoplay(ctx context.Context, engine *simon.Engine, obs *simon.ChannelObserver, opts botOptions, w io.Writer) (simon.Result, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if !engine.Start() {
		return simon.Result{}, errors.New("engine is already running a game")
	}

	done := ctx.Done()
	for {
		select {
		case <-done:
			done = nil
			engine.Stop()

		case <-obs.Done():
			return simon.Result{}, errors.New("observer closed before the game ended")

		case evt := <-obs.Events():
			switch evt := evt.(type) {
			case simon.RoundAdvancedEvent:
				fmt.Fprintf(w, "round %d: watch\n", evt.Round)

			case simon.SignalActivatedEvent:
				fmt.Fprintf(w, "  flash %-6s #%d\n", evt.Signal, evt.Index+1)

			case simon.HintEvent:
				if evt.Signal.Valid() {
					fmt.Fprintf(w, "  hint  %s\n", evt.Signal)
				}

			case simon.StateChangedEvent:
				// Decide from the live state; snapshots in the buffer may be stale.
				move := botMove(engine.State(), opts.MissAt)
				if move == simon.None {
					continue
				}
				if opts.Think > 0 {
					select {
					case <-opts.Clock.After(opts.Think):
					case <-done:
						continue
					}
				}
				if engine.Submit(move) {
					fmt.Fprintf(w, "  tap   %s\n", move)
				}

			case simon.RoundCompletedEvent:
				fmt.Fprintf(w, "round %d: correct (record %d, next flash %dms)\n", evt.Round, evt.Record, evt.Speed)
				if opts.Rounds > 0 && evt.Round >= opts.Rounds {
					engine.Stop()
				}

			case simon.GameOverEvent:
				fmt.Fprintf(w, "game over: %s\n", evt.Reason)
				return simon.ResultFromEvent(evt), nil
			}
		}
	}
}

// botMove returns the pad the bot taps next, or None when no tap is due.
// In round missAt the last tap of the round is deliberately wrong.
func botMove(st simon.State, missAt int) simon.Signal {
	if st.Status != simon.StatusAwaitingInput || st.Remaining() <= 0 {
		return simon.None
	}
	want := st.Sequence[len(st.Progress)]
	if missAt > 0 && st.Round == missAt && st.Remaining() == 1 {
		return wrongSignal(want)
	}
	return want
}

// wrongSignal returns the pad after s in board order.
func wrongSignal(s simon.Signal) simon.Signal {
	signals := simon.Signals()
	for i, c := range signals {
		if c == s {
			return signals[(i+1)%len(signals)]
		}
	}
	return signals[0]
}

// fastConfig scales every timing down to a fifth, keeping values positive.
func fastConfig(cfg config.SimonConfig) config.SimonConfig {
	fifth := func(v int) int {
		if v <= 0 {
			return v
		}
		return max(1, v/5)
	}
	cfg.Timing.FlashMs = fifth(cfg.Timing.FlashMs)
	cfg.Timing.FeedbackPauseMs = fifth(cfg.Timing.FeedbackPauseMs)
	cfg.Timing.PressFlashMs = fifth(cfg.Timing.PressFlashMs)
	cfg.Hint.DurationMs = fifth(cfg.Hint.DurationMs)
	cfg.Difficulty.SpeedStepMs = fifth(cfg.Difficulty.SpeedStepMs)
	cfg.Difficulty.MinSpeedMs = fifth(cfg.Difficulty.MinSpeedMs)
	return cfg
}
