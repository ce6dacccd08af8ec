package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronopro-api/internal/render"
)

var (
	dbPath       string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "chronoctl",
	Short: "Generate chronotype supplementation plans and inspect saved responses",
	Long: `chronoctl drives the ChronoPro plan engine from the terminal.

It generates the same plans the API serves and gives operators access to the
stored questionnaire responses without going through the admin endpoints.

EXAMPLES:
  # Plan for an evening chronotype training at night
  chronoctl plan --chronotype evening --training-time night --frequency high \
    --diet omnivore --experience advanced --goal strength

  # Same plan as YAML
  chronoctl plan ... --format yaml

  # Dashboard counters
  chronoctl stats

  # Drop responses older than 90 days
  chronoctl purge --days 90`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides DB_DRIVER and DB_PATH)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "o", string(render.FormatText), fmt.Sprintf("output format %v", render.Formats))

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(responsesCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(purgeCmd)
}
