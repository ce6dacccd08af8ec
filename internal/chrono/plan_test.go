package chrono

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func veganBeginner() Profile {
	return Profile{
		Chronotype:   ChronoMorning,
		TrainingTime: TrainingMorning,
		Frequency:    FrequencyLow,
		Diet:         DietVegan,
		Experience:   ExperienceBeginner,
		Supplements:  []string{},
		Goal:         GoalHypertrophy,
	}
}

// allProfiles enumerates every enum combination.
func allProfiles() []Profile {
	var out []Profile
	for _, c := range Chronotypes {
		for _, tt := range TrainingTimes {
			for _, f := range Frequencies {
				for _, d := range Diets {
					for _, e := range Experiences {
						for _, g := range Goals {
							out = append(out, Profile{
								Chronotype:   c,
								TrainingTime: tt,
								Frequency:    f,
								Diet:         d,
								Experience:   e,
								Supplements:  []string{"creatina"},
								Goal:         g,
							})
						}
					}
				}
			}
		}
	}
	return out
}

func TestGeneratePlanVeganBeginner(t *testing.T) {
	engine := NewEngine(DefaultTables())

	plan, err := engine.GeneratePlan(veganBeginner())
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Hydration != 3 {
		t.Errorf("hydration = %v, want 3", plan.Hydration)
	}
	if plan.Supplements.TierB == nil || len(plan.Supplements.TierB) != 0 {
		t.Errorf("tierB = %#v, want empty non-nil slice", plan.Supplements.TierB)
	}
	if got := plan.Timing.TrainingDays.Range; got != "06:00 - 10:00" {
		t.Errorf("training range = %q", got)
	}
	if !strings.Contains(plan.Adjustments.Phase1, "20g/día") {
		t.Errorf("phase1 missing loading text: %q", plan.Adjustments.Phase1)
	}
	if !strings.Contains(plan.Adjustments.Phase1, "3L/día") {
		t.Errorf("phase1 missing hydration: %q", plan.Adjustments.Phase1)
	}
	if plan.Timeline[0].Time != "06:00" {
		t.Errorf("first event at %q, want 06:00", plan.Timeline[0].Time)
	}
	if plan.Metrics.ExpectedWeight != "2-3kg" {
		t.Errorf("expectedWeight = %q", plan.Metrics.ExpectedWeight)
	}
	if plan.Profile.DietLabel != "Vegano" || plan.Profile.DietIcon != "🌱" {
		t.Errorf("diet summary = %q %q", plan.Profile.DietLabel, plan.Profile.DietIcon)
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"tierB":[]`) {
		t.Errorf("tierB should encode as an empty array: %s", raw)
	}
}

func TestGeneratePlanOmnivoreAdvanced(t *testing.T) {
	engine := NewEngine(DefaultTables())
	p := veganBeginner()
	p.Diet = DietOmnivore
	p.Experience = ExperienceAdvanced

	plan, err := engine.GeneratePlan(p)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Metrics.ExpectedWeight != "1.5-2.5kg" {
		t.Errorf("expectedWeight = %q", plan.Metrics.ExpectedWeight)
	}
	if len(plan.Supplements.TierB) == 0 {
		t.Error("tierB should be populated for advanced lifters")
	}
	if !strings.Contains(plan.Adjustments.Phase1, "Comienza con 5g/día") {
		t.Errorf("phase1 = %q", plan.Adjustments.Phase1)
	}
}

func TestGeneratePlanDeterministic(t *testing.T) {
	engine := NewEngine(DefaultTables())
	for _, p := range allProfiles() {
		a, err := engine.GeneratePlan(p)
		if err != nil {
			t.Fatalf("GeneratePlan(%+v): %v", p, err)
		}
		b, err := engine.GeneratePlan(p)
		if err != nil {
			t.Fatalf("GeneratePlan(%+v): %v", p, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("plans differ for %+v", p)
		}
	}
}

func TestGeneratePlanTotal(t *testing.T) {
	engine := NewEngine(DefaultTables())
	profiles := allProfiles()
	if len(profiles) != 1944 {
		t.Fatalf("enumerated %d profiles, want 1944", len(profiles))
	}

	for _, p := range profiles {
		plan, err := engine.GeneratePlan(p)
		if err != nil {
			t.Fatalf("GeneratePlan(%+v): %v", p, err)
		}
		s := plan.Profile
		for name, v := range map[string]string{
			"chronotypeLabel": s.ChronotypeLabel,
			"trainingLabel":   s.TrainingLabel,
			"frequencyLabel":  s.FrequencyLabel,
			"dietLabel":       s.DietLabel,
			"experienceLabel": s.ExperienceLabel,
			"goalLabel":       s.GoalLabel,
			"dietIcon":        s.DietIcon,
			"range":           plan.Timing.TrainingDays.Range,
			"restDays":        plan.Timing.RestDays,
			"anabolicWindow":  plan.Science.AnabolicWindow,
			"weeks1_2":        plan.Metrics.Weeks1To2,
			"expectedWeight":  plan.Metrics.ExpectedWeight,
			"phase1":          plan.Adjustments.Phase1,
			"phase4":          plan.Adjustments.Phase4,
		} {
			if v == "" {
				t.Fatalf("%s empty for %+v", name, p)
			}
		}
		if plan.Hydration <= 0 {
			t.Fatalf("hydration %v for %+v", plan.Hydration, p)
		}
		if len(plan.Science.CircadianFacts) != 4 || len(plan.Absorption) != 4 {
			t.Fatalf("science/absorption incomplete for %+v", p)
		}
		if len(plan.Supplements.TierA) != 3 || len(plan.Supplements.TierC) != 2 || len(plan.Supplements.NotRecommended) != 4 {
			t.Fatalf("supplement tiers incomplete for %+v", p)
		}
		if n := len(plan.Timeline); n < 4 || n > 8 {
			t.Fatalf("timeline has %d events for %+v", n, p)
		}
	}
}

func TestTierBGating(t *testing.T) {
	engine := NewEngine(DefaultTables())
	want, err := engine.Tables().Tier("B")
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range allProfiles() {
		plan, err := engine.GeneratePlan(p)
		if err != nil {
			t.Fatal(err)
		}
		if p.Experience == ExperienceBeginner {
			if len(plan.Supplements.TierB) != 0 {
				t.Fatalf("beginner got tier B: %+v", p)
			}
			continue
		}
		if !reflect.DeepEqual(plan.Supplements.TierB, want.Supplements) {
			t.Fatalf("tier B mismatch for %+v", p)
		}
	}
}

func TestExpectedWeightFollowsLoadingPhase(t *testing.T) {
	engine := NewEngine(DefaultTables())
	for _, d := range Diets {
		t.Run(string(d), func(t *testing.T) {
			p := veganBeginner()
			p.Diet = d
			plan, err := engine.GeneratePlan(p)
			if err != nil {
				t.Fatal(err)
			}
			loading := d == DietVegetarian || d == DietVegan
			want := "1.5-2.5kg"
			if loading {
				want = "2-3kg"
			}
			if plan.Metrics.ExpectedWeight != want {
				t.Errorf("expectedWeight = %q, want %q", plan.Metrics.ExpectedWeight, want)
			}
			if !strings.Contains(plan.Metrics.Weeks1To2, "+"+want) {
				t.Errorf("weeks1_2 = %q", plan.Metrics.Weeks1To2)
			}
			if got := strings.Contains(plan.Adjustments.Phase1, "fase carga"); got != loading {
				t.Errorf("phase1 loading text = %v, want %v", got, loading)
			}
		})
	}
}

func TestProteinNoteNamesDietSource(t *testing.T) {
	engine := NewEngine(DefaultTables())
	p := veganBeginner()
	p.Diet = DietKeto

	plan, err := engine.GeneratePlan(p)
	if err != nil {
		t.Fatal(err)
	}
	diet, _ := engine.Tables().Diet(DietKeto)
	var found bool
	for _, s := range plan.Supplements.TierA {
		if s.Name != proteinSupplement {
			if strings.Contains(s.Note, "Fuente:") {
				t.Errorf("%s note should be untouched: %q", s.Name, s.Note)
			}
			continue
		}
		found = true
		want := "Base fundamental para hipertrofia | Fuente: " + diet.ProteinSource
		if s.Note != want {
			t.Errorf("protein note = %q, want %q", s.Note, want)
		}
	}
	if !found {
		t.Fatal("tier A has no protein entry")
	}
}

func TestGeneratePlanDoesNotLeakTables(t *testing.T) {
	tables := DefaultTables()
	engine := NewEngine(tables)

	plan, err := engine.GeneratePlan(veganBeginner())
	if err != nil {
		t.Fatal(err)
	}
	plan.Supplements.TierA[0].Note = "mutated"
	plan.Supplements.TierC[0].Name = "mutated"
	plan.Absorption[0].Name = "mutated"
	plan.Supplements.NotRecommended[0] = "mutated"

	again, err := engine.GeneratePlan(veganBeginner())
	if err != nil {
		t.Fatal(err)
	}
	if again.Supplements.TierA[0].Note == "mutated" ||
		again.Supplements.TierC[0].Name == "mutated" ||
		again.Absorption[0].Name == "mutated" ||
		again.Supplements.NotRecommended[0] == "mutated" {
		t.Fatal("plan shares backing arrays with the tables")
	}
}

func TestGeneratePlanRejectsOutOfDomain(t *testing.T) {
	engine := NewEngine(DefaultTables())
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"chronotype", func(p *Profile) { p.Chronotype = "night-owl" }},
		{"training time", func(p *Profile) { p.TrainingTime = "dawn" }},
		{"frequency", func(p *Profile) { p.Frequency = "daily" }},
		{"diet", func(p *Profile) { p.Diet = "carnivore" }},
		{"experience", func(p *Profile) { p.Experience = "elite" }},
		{"goal", func(p *Profile) { p.Goal = "endurance" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := veganBeginner()
			tt.mutate(&p)
			plan, err := engine.GeneratePlan(p)
			if plan != nil {
				t.Error("expected no plan")
			}
			if !errors.Is(err, ErrMissingTableEntry) {
				t.Errorf("err = %v, want ErrMissingTableEntry", err)
			}
			if !errors.Is(err, ErrInvalidEnumValue) {
				t.Errorf("err = %v, want ErrInvalidEnumValue", err)
			}
		})
	}
}
