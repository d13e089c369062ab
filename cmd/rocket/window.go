package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Flappy Space Bird in a desktop window.

Controls:
  START button, Enter/S       - Start (title screen)
  Space/Up/Click              - Thrust
  PLAY AGAIN button, Enter/R  - Play again (after game over)
  MENU button, M/Esc          - Back to the title screen (after game over)
  Q or close the window       - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	s, err := newSession(0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.close()

	w := s.game.World()
	s.runtime.ScreenW, s.runtime.ScreenH = int(w.Width), int(w.Height)

	s.logger.Info("starting desktop game", "seed", s.runtime.Seed)
	if err := desktop.Run(s.game, s.runtime, s.logger); err != nil {
		s.logger.Error("desktop game failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		s.close()
		os.Exit(1)
	}
	s.logger.Info("desktop game closed", "high", s.game.State().HighScore)
}
