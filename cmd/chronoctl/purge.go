package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chronopro-api/internal/storage"
)

var purgeDays int

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete responses older than --days",
	RunE: func(cmd *cobra.Command, args []string) error {
		if purgeDays <= 0 {
			return fmt.Errorf("--days must be > 0")
		}
		cutoff := time.Now().AddDate(0, 0, -purgeDays)
		return withStore(cmd.Context(), func(store storage.Store) error {
			n, err := store.DeleteBefore(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d responses created before %s\n", n, cutoff.Format("2006-01-02"))
			return nil
		})
	},
}

func init() {
	purgeCmd.Flags().IntVar(&purgeDays, "days", 0, "retention in days")
}
