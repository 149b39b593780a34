package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-timber/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H   - Chop on the left
  Right/D/L  - Chop on the right
  Space      - Replay (after game over)
  I          - Toggle debug overlay
  Esc/Q      - Quit

Any other key, or a click on the PLAY button, starts the run.

Logs are discarded unless --log-file is set, since the terminal belongs to
the game.

Examples:
  timber play
  timber play --seed 42
  timber play --log-file ~/.timber/timber.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size; the first WindowSizeMsg corrects it anyway.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closer, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close of the log file

	rc := cfg.RuntimeFor(width, height)
	logger.Info("starting", "size", fmt.Sprintf("%dx%d", width, height), "tick_rate", rc.TickRate, "seed", rc.Seed)

	err = tui.Run(rc, tui.Options{
		ChopDuration:  cfg.Animation.ChopDuration,
		DeathDuration: cfg.Animation.DeathDuration,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
