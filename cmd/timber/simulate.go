package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timber/internal/core"
	"github.com/vovakirdan/tui-timber/internal/games/timber"
	"github.com/vovakirdan/tui-timber/internal/platform/tui"
)

var (
	flagFrames int
	flagBot    string
	flagRender bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless bot game",
	Long: `Play one run without a terminal, driven by a bot at the configured tick
rate, and print the outcome. With the same --seed the run is identical every
time.

Bots:
  safe    - always chops away from the branch; only the timer can end the run
  random  - mashes a random side every frame

Examples:
  timber simulate
  timber simulate --bot random --seed 7
  timber simulate --frames 3600 --render`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 60*60, "Maximum frames to simulate")
	simulateCmd.Flags().StringVar(&flagBot, "bot", "safe", "Bot: safe, random")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame as text")
}

func newBot(name string, seed int64) (timber.Bot, error) {
	switch name {
	case "safe":
		return timber.SafeBot{}, nil
	case "random":
		return timber.NewRandomBot(rand.New(rand.NewSource(seed + 1))), nil
	default:
		return nil, fmt.Errorf("unknown bot %q (want safe or random)", name)
	}
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	rc := cfg.RuntimeFor(80, 23)
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	bot, err := newBot(flagBot, rc.Seed)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close of the log file

	session := timber.NewSession(rand.New(rand.NewSource(rc.Seed)))
	res := tui.RunHeadless(session, tui.HeadlessOptions{
		Runtime: rc,
		Model: tui.Options{
			ChopDuration:  cfg.Animation.ChopDuration,
			DeathDuration: cfg.Animation.DeathDuration,
			Logger:        logger,
		},
		MaxFrames: flagFrames,
		Bot:       bot,
	})

	if flagRender {
		screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
		tui.Draw(screen, res.Final, res.DrawOptions())
		fmt.Println(screen.String())
		fmt.Println()
	}

	outcome := "alive"
	if res.GameOver {
		outcome = "game over"
	}
	fmt.Printf("bot:       %s\n", flagBot)
	fmt.Printf("seed:      %d\n", rc.Seed)
	fmt.Printf("frames:    %d (%.2fs at %d fps)\n", res.Frames, res.Elapsed, rc.TickRate)
	fmt.Printf("outcome:   %s\n", outcome)
	fmt.Printf("score:     %d\n", res.Score)
	fmt.Printf("life left: %.2fs\n", res.Final.Remaining)
	fmt.Printf("chops:     %d\n", res.Events[core.EventChopped])
	return nil
}
