package chrono

import "fmt"

// Config holds the scalar constants the plan text is built from.
type Config struct {
	CreatineDose          string
	ProteinPerKgMin       float64
	ProteinPerKgMax       float64
	Hydration             map[Frequency]float64
	LeucineThreshold      AgeRange
	AnabolicWindow        string
	OptimalProteinPerMeal AgeRange
}

// CircadianFacts are the chronobiology statements quoted in every plan.
type CircadianFacts struct {
	MTORC1             string
	NightDegradation   string
	GrowthHormone      string
	Cortisol           string
	InsulinSensitivity string
}

type labels struct {
	chronotype   map[Chronotype]string
	trainingTime map[TrainingTime]string
	frequency    map[Frequency]string
	experience   map[Experience]string
	goal         map[Goal]string
}

// Tables is the read-only knowledge base behind the engine. Build it once
// with DefaultTables and share it; no method mutates it.
type Tables struct {
	timing         map[TrainingTime]TimingRecommendation
	diets          map[Diet]DietAdjustment
	distribution   map[Chronotype]ProteinDistribution
	wakeUp         map[Chronotype]string
	absorption     []ProteinAbsorption
	tierA          SupplementTier
	tierB          SupplementTier
	tierC          SupplementTier
	notRecommended []string
	facts          CircadianFacts
	config         Config
	labels         labels
}

func missing(table string, key any) error {
	return fmt.Errorf("%w: %s has no row for %q: %w", ErrMissingTableEntry, table, key, ErrInvalidEnumValue)
}

func (t *Tables) Timing(tt TrainingTime) (TimingRecommendation, error) {
	v, ok := t.timing[tt]
	if !ok {
		return TimingRecommendation{}, missing("timing matrix", tt)
	}
	return v, nil
}

func (t *Tables) Diet(d Diet) (DietAdjustment, error) {
	v, ok := t.diets[d]
	if !ok {
		return DietAdjustment{}, missing("diet adjustments", d)
	}
	return v, nil
}

func (t *Tables) Distribution(c Chronotype) (ProteinDistribution, error) {
	v, ok := t.distribution[c]
	if !ok {
		return ProteinDistribution{}, missing("protein distribution", c)
	}
	return v, nil
}

// WakeUp returns the clock time a chronotype is assumed to get up.
func (t *Tables) WakeUp(c Chronotype) (string, error) {
	v, ok := t.wakeUp[c]
	if !ok {
		return "", missing("wake-up times", c)
	}
	return v, nil
}

// Hydration returns the daily water target in litres for a training frequency.
func (t *Tables) Hydration(f Frequency) (float64, error) {
	v, ok := t.config.Hydration[f]
	if !ok {
		return 0, missing("hydration targets", f)
	}
	return v, nil
}

func (t *Tables) Absorption() []ProteinAbsorption {
	return append([]ProteinAbsorption(nil), t.absorption...)
}

// Tier returns a copy of the supplement tier for evidence level "A", "B" or "C".
func (t *Tables) Tier(level string) (SupplementTier, error) {
	var tier SupplementTier
	switch level {
	case "A":
		tier = t.tierA
	case "B":
		tier = t.tierB
	case "C":
		tier = t.tierC
	default:
		return SupplementTier{}, missing("supplement tiers", level)
	}
	tier.Supplements = append([]SupplementInfo{}, tier.Supplements...)
	return tier, nil
}

func (t *Tables) NotRecommended() []string {
	return append([]string(nil), t.notRecommended...)
}

func (t *Tables) Facts() CircadianFacts {
	return t.facts
}

// Config returns the scalar configuration. The hydration map is copied.
func (t *Tables) Config() Config {
	c := t.config
	c.Hydration = make(map[Frequency]float64, len(t.config.Hydration))
	for k, v := range t.config.Hydration {
		c.Hydration[k] = v
	}
	return c
}

func (t *Tables) ChronotypeLabel(c Chronotype) (string, error) {
	v, ok := t.labels.chronotype[c]
	if !ok {
		return "", missing("chronotype labels", c)
	}
	return v, nil
}

func (t *Tables) TrainingLabel(tt TrainingTime) (string, error) {
	v, ok := t.labels.trainingTime[tt]
	if !ok {
		return "", missing("training labels", tt)
	}
	return v, nil
}

func (t *Tables) FrequencyLabel(f Frequency) (string, error) {
	v, ok := t.labels.frequency[f]
	if !ok {
		return "", missing("frequency labels", f)
	}
	return v, nil
}

func (t *Tables) ExperienceLabel(e Experience) (string, error) {
	v, ok := t.labels.experience[e]
	if !ok {
		return "", missing("experience labels", e)
	}
	return v, nil
}

func (t *Tables) GoalLabel(g Goal) (string, error) {
	v, ok := t.labels.goal[g]
	if !ok {
		return "", missing("goal labels", g)
	}
	return v, nil
}
