package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

var (
	planChronotype   string
	planTrainingTime string
	planFrequency    string
	planDiet         string
	planExperience   string
	planGoal         string
	planSupplements  []string
	planSave         bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a supplementation plan from questionnaire answers",
	Long: `Generate a supplementation-timing plan for one questionnaire profile.

All six answers are required. Valid values:
  --chronotype     morning | intermediate | evening
  --training-time  morning | midday | afternoon | night
  --frequency      low | moderate | high
  --diet           omnivore | vegetarian | vegan | intermittent | keto | other
  --experience     beginner | intermediate | advanced
  --goal           hypertrophy | strength | both

Pass --save to store the answers and the plan like the save-response endpoint.`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planChronotype, "chronotype", "", "chronotype")
	f.StringVar(&planTrainingTime, "training-time", "", "usual training time")
	f.StringVar(&planFrequency, "frequency", "", "weekly training frequency")
	f.StringVar(&planDiet, "diet", "", "diet")
	f.StringVar(&planExperience, "experience", "", "training experience")
	f.StringVar(&planGoal, "goal", "", "training goal")
	f.StringSliceVar(&planSupplements, "supplements", nil, "supplements currently taken (comma separated)")
	f.BoolVar(&planSave, "save", false, "store the response and plan in the database")
}

func profileFromFlags() (chrono.Profile, error) {
	var errs []error
	parse := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var p chrono.Profile
	var err error
	p.Chronotype, err = chrono.ParseChronotype(planChronotype)
	parse(err)
	p.TrainingTime, err = chrono.ParseTrainingTime(planTrainingTime)
	parse(err)
	p.Frequency, err = chrono.ParseFrequency(planFrequency)
	parse(err)
	p.Diet, err = chrono.ParseDiet(planDiet)
	parse(err)
	p.Experience, err = chrono.ParseExperience(planExperience)
	parse(err)
	p.Goal, err = chrono.ParseGoal(planGoal)
	parse(err)
	p.Supplements = append([]string{}, planSupplements...)

	if len(errs) > 0 {
		return chrono.Profile{}, errors.Join(errs...)
	}
	return p, p.Validate()
}

func runPlan(cmd *cobra.Command, args []string) error {
	p, err := profileFromFlags()
	if err != nil {
		return err
	}

	plan, err := chrono.NewEngine(chrono.DefaultTables()).GeneratePlan(p)
	if err != nil {
		return err
	}

	if planSave {
		raw, err := json.Marshal(plan)
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		resp := storage.NewResponse(p)
		resp.Plan = raw
		err = withStore(cmd.Context(), func(store storage.Store) error {
			return store.Save(cmd.Context(), resp)
		})
		if err != nil {
			return fmt.Errorf("save response: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved response %s\n", resp.ID)
	}

	return write(cmd, plan)
}
