package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"deckforge/deck"
)

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available visual styles",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available styles:")
		fmt.Fprintln(out)
		for _, s := range deck.AllStyles {
			th, err := deck.ResolveTheme(s)
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "  %-14s primary RGB(%d,%d,%d), %s, %s density\n",
				s.DisplayName(), th.Primary.R, th.Primary.G, th.Primary.B,
				th.FontFamily, th.Density)
		}
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
