// snake is a grid snake game played in the terminal.
//
// Usage:
//
//	snake list              - List available games
//	snake play [game]       - Play a game (default: snake)
//
// Global flags:
//
//	--log-file <path>  - Write logs to a file (the game owns the terminal)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagLogFile string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grid snake in your terminal",
	Long: `A segmented snake roams a square grid, eats food and grows.

Available commands:
  list     - Show all available games
  play     - Play a game

Examples:
  snake play
  snake play snake_classic
  snake play --cell-count 24 --tick 150ms
  snake --log-file snake.log --debug play`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}

// setupLogger opens the log file, if any. Without one, logs are discarded
// so they never interleave with the game screen.
func setupLogger(_ *cobra.Command, _ []string) error {
	if flagLogFile == "" {
		return nil
	}

	path, err := filepath.Abs(flagLogFile)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}
