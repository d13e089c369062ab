// rocket is Flappy Space Bird: steer a rocket through a stream of gap
// obstacles, in the terminal or in a desktop window.
//
// Usage:
//
//	rocket play              - Play in the terminal
//	rocket window            - Play in a desktop window
//	rocket config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load tuning from a YAML file
//	--log <path>     - Write a log file
//	--debug          - Log at debug level
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Flappy Space Bird - fly a rocket through the gaps",
	Long: `Flappy Space Bird is a one-button arcade game. Gravity pulls the
rocket down; every thrust kicks it upward. Fly through the gaps between
the obstacles to score. Touching an obstacle, the ceiling or the ground
ends the round.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  rocket play
  rocket play --seed 42
  rocket window --fps 30
  rocket config > my-rocket.yaml
  rocket play --config ./my-rocket.yaml --log rocket.log --debug`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write log output to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// session is everything a frontend needs to run one game.
type session struct {
	game    *rocket.Game
	runtime core.RuntimeConfig
	logger  *log.Logger
	close   func()
}

// newSession loads configuration, opens the log and creates the game.
// Width and height are the frontend's screen size.
func newSession(width, height int) (*session, error) {
	logger, closeLog := newLogger(flagLogPath, flagDebug)

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	rt := runtimeConfig(cfg, width, height, flagFPS, flagSeed, time.Now)
	logger.Debug("runtime", "width", rt.ScreenW, "height", rt.ScreenH, "tps", rt.TickRate, "seed", rt.Seed)

	return &session{
		game:    rocket.New(rocket.NewWorld(cfg), rt.Seed, cfg.Display.Stars),
		runtime: rt,
		logger:  logger,
		close:   closeLog,
	}, nil
}

// runtimeConfig merges flags over the loaded configuration. A zero fps
// keeps the configured tick rate; a zero seed picks one from the clock.
func runtimeConfig(cfg config.RocketConfig, width, height, fps int, seed int64, now func() time.Time) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = cfg.Display.TickRate
	if fps > 0 {
		rt.TickRate = fps
	}
	rt.Seed = seed
	if rt.Seed == 0 {
		rt.Seed = now().UnixNano()
	}
	return rt
}
