package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deckforge",
	Short: "Generate consulting-style PowerPoint decks from a short brief",
	Long: `DeckForge builds consulting-style PowerPoint decks from three answers:
how many slides, what the deck is about, and which visual style to use.

Styles cover the classic consulting palettes (McKinsey, BCG, Bain) plus
RichVisual, UltraClean and Professional. Decks land in the output directory
as .pptx, optionally with a PDF handout.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
