package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game variant with its id and title.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printGames(cmd.OutOrStdout(), registry.List())
	},
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// printGames writes an aligned id/title table.
func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games registered.")
		return
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s  %s", idWidth, "ID", "TITLE")))
	for _, g := range games {
		fmt.Fprintf(w, "%-*s  %s\n", idWidth, g.ID, g.Title)
	}
	fmt.Fprintf(w, "\nRun 'snake play <id>' to start one.\n")
}
