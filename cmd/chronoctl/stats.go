package main

import (
	"time"

	"github.com/spf13/cobra"

	"chronopro-api/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show response counts by chronotype and diet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(store storage.Store) error {
			stats, err := store.Stats(cmd.Context(), time.Now().Add(-24*time.Hour))
			if err != nil {
				return err
			}
			return write(cmd, stats)
		})
	},
}
