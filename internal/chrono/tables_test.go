package chrono

import (
	"errors"
	"testing"
)

func TestDistributionSumsToHundred(t *testing.T) {
	tables := DefaultTables()
	for _, c := range Chronotypes {
		d, err := tables.Distribution(c)
		if err != nil {
			t.Fatal(err)
		}
		if sum := d.Breakfast + d.Lunch + d.Dinner; sum != 100 {
			t.Errorf("%s distribution sums to %d", c, sum)
		}
	}
}

func TestTablesAreTotal(t *testing.T) {
	tables := DefaultTables()
	for _, tt := range TrainingTimes {
		if _, err := tables.Timing(tt); err != nil {
			t.Errorf("timing %s: %v", tt, err)
		}
		if _, err := tables.TrainingLabel(tt); err != nil {
			t.Errorf("label %s: %v", tt, err)
		}
	}
	for _, d := range Diets {
		adj, err := tables.Diet(d)
		if err != nil {
			t.Errorf("diet %s: %v", d, err)
		}
		if adj.Label == "" || adj.ProteinSource == "" {
			t.Errorf("diet %s incomplete: %+v", d, adj)
		}
	}
	for _, c := range Chronotypes {
		if _, err := tables.WakeUp(c); err != nil {
			t.Errorf("wake-up %s: %v", c, err)
		}
		if _, err := tables.ChronotypeLabel(c); err != nil {
			t.Errorf("label %s: %v", c, err)
		}
	}
	for _, f := range Frequencies {
		if _, err := tables.Hydration(f); err != nil {
			t.Errorf("hydration %s: %v", f, err)
		}
		if _, err := tables.FrequencyLabel(f); err != nil {
			t.Errorf("label %s: %v", f, err)
		}
	}
	for _, e := range Experiences {
		if _, err := tables.ExperienceLabel(e); err != nil {
			t.Errorf("label %s: %v", e, err)
		}
	}
	for _, g := range Goals {
		if _, err := tables.GoalLabel(g); err != nil {
			t.Errorf("label %s: %v", g, err)
		}
	}
}

func TestHydrationTargets(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		freq Frequency
		want float64
	}{
		{FrequencyLow, 3},
		{FrequencyModerate, 3.5},
		{FrequencyHigh, 4},
	}
	for _, tt := range tests {
		got, err := tables.Hydration(tt.freq)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Hydration(%s) = %v, want %v", tt.freq, got, tt.want)
		}
	}
}

func TestLoadingPhaseOnlyForPlantDiets(t *testing.T) {
	tables := DefaultTables()
	for _, d := range Diets {
		adj, _ := tables.Diet(d)
		want := d == DietVegetarian || d == DietVegan
		if adj.LoadingPhase != want {
			t.Errorf("%s loadingPhase = %v, want %v", d, adj.LoadingPhase, want)
		}
	}
}

func TestTierLookup(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		level string
		count int
	}{
		{"A", 3},
		{"B", 3},
		{"C", 2},
	}
	for _, tt := range tests {
		tier, err := tables.Tier(tt.level)
		if err != nil {
			t.Fatal(err)
		}
		if len(tier.Supplements) != tt.count {
			t.Errorf("tier %s has %d supplements, want %d", tt.level, len(tier.Supplements), tt.count)
		}
	}
	if _, err := tables.Tier("D"); !errors.Is(err, ErrMissingTableEntry) {
		t.Errorf("tier D err = %v", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	tables := DefaultTables()

	cfg := tables.Config()
	cfg.Hydration[FrequencyLow] = 99
	if got, _ := tables.Hydration(FrequencyLow); got != 3 {
		t.Errorf("hydration mutated through Config(): %v", got)
	}

	tier, _ := tables.Tier("B")
	tier.Supplements[0].Name = "changed"
	again, _ := tables.Tier("B")
	if again.Supplements[0].Name == "changed" {
		t.Error("tier mutated through Tier()")
	}
}

func TestLookupMissingKey(t *testing.T) {
	tables := DefaultTables()
	if _, err := tables.Diet("paleo"); !errors.Is(err, ErrMissingTableEntry) {
		t.Errorf("Diet err = %v", err)
	}
	if _, err := tables.Hydration("weekly"); !errors.Is(err, ErrInvalidEnumValue) {
		t.Errorf("Hydration err = %v", err)
	}
}
