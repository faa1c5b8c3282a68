package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"deckforge/config"
	"deckforge/database"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgService := config.NewService(nil)
		storageDir, err := cfgService.GetStorageDir()
		if err != nil {
			return err
		}

		db, err := database.InitDB(storageDir)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := database.NewHistoryService(db).ListRecent(historyLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No decks generated yet.")
			return nil
		}
		for _, rec := range records {
			when := time.UnixMilli(rec.CreatedAt).Format("2006-01-02 15:04")
			fmt.Fprintf(out, "%s  %-12s %2d slides  %s\n", when, rec.Style, rec.SlideCount, rec.OutputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum records to show")
}
