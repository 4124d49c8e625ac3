package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/telemetry"
)

var (
	flagConfig       string
	flagSeed         int64
	flagCellCount    int
	flagScreenLength int
	flagTick         time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: snake).

Controls:
  W/A/S/D    - Steer up/left/down/right
  Q/Ctrl+C   - Quit

Configuration is read from --config, ~/.snake/config.yaml,
./configs/snake.yaml or the built-in defaults, in that order.
SNAKE_* variables from the environment or a .env file override it,
and flags override both.

Examples:
  snake play
  snake play snake_classic
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --cell-count 24 --screen-length 240 --tick 150ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagCellCount, "cell-count", 0, "Cells per grid side (0 = from config)")
	playCmd.Flags().IntVar(&flagScreenLength, "screen-length", 0, "Playfield side in pixels (0 = from config)")
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Time between updates (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'snake list' to see available games", gameID)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("config loaded", "source", cfg.Source)

	runtime := cfg.Runtime(flagSeed)
	warnTerminalSize(runtime.Grid)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, runtime, tui.Options{
		Logger: logger,
		Tracer: telemetry.Tracer("tui"),
	})
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.SnakeConfig) {
	flags := cmd.Flags()
	if flags.Changed("cell-count") {
		cfg.Grid.CellCount = flagCellCount
	}
	if flags.Changed("screen-length") {
		cfg.Grid.ScreenLength = flagScreenLength
	}
	if flags.Changed("tick") {
		cfg.Timing.TickInterval = flagTick
	}
}

// warnTerminalSize prints a warning when the grid cannot be shown in full.
// The game still runs; the view is cropped.
func warnTerminalSize(g core.Grid) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}

	needW, needH := g.CellCount*2, g.CellCount+1
	if width < needW || height < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the %dx%d grid needs %dx%d; the view will be cropped\n",
			width, height, g.CellCount, g.CellCount, needW, needH)
		logger.Warn("terminal too small", "width", width, "height", height, "need_width", needW, "need_height", needH)
	}
}
