package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mpetrenko/breakout/internal/breakout"
	"github.com/mpetrenko/breakout/internal/config"
	"github.com/mpetrenko/breakout/internal/core"
	"github.com/mpetrenko/breakout/internal/platform/tui"
	"github.com/mpetrenko/breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start a game directly, skipping the menu.

Controls:
  A/D, Left/Right  - Move paddle
  Mouse            - Move paddle (absolute)
  Space/W/Up       - Serve the ball
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - 5 lives, wider paddle, slower serves
  normal - 3 lives, standard paddle and speed
  hard   - 2 lives, narrower paddle, faster serves
  fixed  - no per-level progression

Examples:
  breakout play
  breakout play --endless
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: levels repeat, faster each cycle")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level, 1-based (0 = first level)")
}

// loadGameConfig resolves the gameplay config from flags: YAML file
// first, then the difficulty preset on top.
func loadGameConfig() (config.BreakoutConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	if flagDifficulty != "" {
		config.ParsePreset(flagDifficulty).Apply(&cfg)
	}
	return cfg, nil
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var game *breakout.Game
	if flagEndless {
		game = breakout.NewEndless(gameCfg)
	} else {
		game = breakout.New(gameCfg)
	}
	if flagLevel > 0 {
		game.SetStartLevel(flagLevel - 1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
