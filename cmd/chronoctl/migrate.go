package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronopro-api/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the response tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(storage.Store) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
			return nil
		})
	},
}
