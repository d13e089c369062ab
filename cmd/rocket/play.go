package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Flappy Space Bird in the terminal.

Controls:
  Enter/S          - Start (title screen)
  Space/Up/Click   - Thrust
  Enter/R          - Play again (after game over)
  M/Esc            - Back to the title screen (after game over)
  Q/Ctrl+C         - Quit

Examples:
  rocket play
  rocket play --seed 42
  rocket play --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s, err := newSession(width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.close()

	s.logger.Info("starting terminal game", "seed", s.runtime.Seed)
	if err := tui.Run(s.game, s.runtime, s.logger); err != nil {
		s.logger.Error("terminal game failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		s.close()
		os.Exit(1)
	}
	s.logger.Info("terminal game closed", "high", s.game.State().HighScore)
}
