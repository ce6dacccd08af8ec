package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

var (
	responsesPage       int
	responsesLimit      int
	responsesChronotype string
	responsesDiet       string
)

var responsesCmd = &cobra.Command{
	Use:   "responses",
	Short: "List stored questionnaire responses, newest first",
	Long: `List stored questionnaire responses, newest first.

EXAMPLES:
  # Second page of vegan respondents
  chronoctl responses --diet vegan --page 2

  # Everything about evening types as JSON
  chronoctl responses --chronotype evening --limit 100 -o json`,
	RunE: runResponses,
}

func init() {
	f := responsesCmd.Flags()
	f.IntVar(&responsesPage, "page", 1, "page number")
	f.IntVarP(&responsesLimit, "limit", "n", storage.DefaultLimit, fmt.Sprintf("responses per page (max %d)", storage.MaxLimit))
	f.StringVar(&responsesChronotype, "chronotype", "", "only this chronotype")
	f.StringVar(&responsesDiet, "diet", "", "only this diet")
}

func runResponses(cmd *cobra.Command, args []string) error {
	opts := storage.ListOptions{Page: responsesPage, Limit: responsesLimit}.Normalize()
	if responsesChronotype != "" {
		c, err := chrono.ParseChronotype(responsesChronotype)
		if err != nil {
			return err
		}
		opts.Chronotype = c
	}
	if responsesDiet != "" {
		d, err := chrono.ParseDiet(responsesDiet)
		if err != nil {
			return err
		}
		opts.Diet = d
	}

	return withStore(cmd.Context(), func(store storage.Store) error {
		data, total, err := store.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if err := write(cmd, data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "page %d, %d of %d responses\n", opts.Page, len(data), total)
		return nil
	})
}
