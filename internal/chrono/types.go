package chrono

import (
	"fmt"
	"strings"
)

// Profile is the questionnaire answer set the engine consumes.
type Profile struct {
	Chronotype   Chronotype   `json:"chronotype" yaml:"chronotype"`
	TrainingTime TrainingTime `json:"trainingTime" yaml:"trainingTime"`
	Frequency    Frequency    `json:"frequency" yaml:"frequency"`
	Diet         Diet         `json:"diet" yaml:"diet"`
	Experience   Experience   `json:"experience" yaml:"experience"`
	Supplements  []string     `json:"supplements" yaml:"supplements"`
	Goal         Goal         `json:"goal" yaml:"goal"`
}

// Validate checks every enum field against its domain and that supplements
// is present. Supplement tags themselves are free-form.
func (p Profile) Validate() error {
	var bad []string
	if !p.Chronotype.Valid() {
		bad = append(bad, fmt.Sprintf("chronotype=%q", p.Chronotype))
	}
	if !p.TrainingTime.Valid() {
		bad = append(bad, fmt.Sprintf("trainingTime=%q", p.TrainingTime))
	}
	if !p.Frequency.Valid() {
		bad = append(bad, fmt.Sprintf("frequency=%q", p.Frequency))
	}
	if !p.Diet.Valid() {
		bad = append(bad, fmt.Sprintf("diet=%q", p.Diet))
	}
	if !p.Experience.Valid() {
		bad = append(bad, fmt.Sprintf("experience=%q", p.Experience))
	}
	if !p.Goal.Valid() {
		bad = append(bad, fmt.Sprintf("goal=%q", p.Goal))
	}
	if p.Supplements == nil {
		bad = append(bad, "supplements missing")
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(bad, ", "))
	}
	return nil
}

type TimingRecommendation struct {
	Range     string `json:"range" yaml:"range"`
	Creatine  string `json:"creatine" yaml:"creatine"`
	Protein   string `json:"protein" yaml:"protein"`
	Rationale string `json:"rationale" yaml:"rationale"`
}

type DietAdjustment struct {
	Label         string `json:"label" yaml:"label"`
	Icon          string `json:"icon" yaml:"icon"`
	CreatineNote  string `json:"creatineNote" yaml:"creatineNote"`
	ProteinSource string `json:"proteinSource" yaml:"proteinSource"`
	LoadingPhase  bool   `json:"loadingPhase" yaml:"loadingPhase"`
	ExtraNote     string `json:"extraNote,omitempty" yaml:"extraNote,omitempty"`
	ImportantNote string `json:"importantNote,omitempty" yaml:"importantNote,omitempty"`
}

// ProteinDistribution splits daily protein across the three main meals.
// Breakfast, Lunch and Dinner are percentages summing to 100.
type ProteinDistribution struct {
	Breakfast            int    `json:"breakfast" yaml:"breakfast"`
	Lunch                int    `json:"lunch" yaml:"lunch"`
	Dinner               int    `json:"dinner" yaml:"dinner"`
	Note                 string `json:"note" yaml:"note"`
	ExerciseWindow       string `json:"exerciseWindow" yaml:"exerciseWindow"`
	DinnerRecommendation string `json:"cenaRecommendation" yaml:"cenaRecommendation"`
}

type ProteinAbsorption struct {
	Name       string `json:"name" yaml:"name"`
	Rate       string `json:"rate" yaml:"rate"`
	Peak       string `json:"peak" yaml:"peak"`
	OptimalUse string `json:"optimalUse" yaml:"optimalUse"`
	Icon       string `json:"icon" yaml:"icon"`
}

type SupplementInfo struct {
	Name string `json:"name" yaml:"name"`
	Dose string `json:"dose" yaml:"dose"`
	Icon string `json:"icon" yaml:"icon"`
	Note string `json:"note" yaml:"note"`
}

// SupplementTier groups supplements sharing an evidence level.
type SupplementTier struct {
	Label       string           `json:"label" yaml:"label"`
	Icon        string           `json:"icon" yaml:"icon"`
	Supplements []SupplementInfo `json:"supplements" yaml:"supplements"`
}

type TimelineItem struct {
	Time      string `json:"time" yaml:"time"`
	Action    string `json:"action" yaml:"action"`
	Detail    string `json:"detail" yaml:"detail"`
	Highlight bool   `json:"highlight,omitempty" yaml:"highlight,omitempty"`
}

type ProfileSummary struct {
	ChronotypeLabel string `json:"chronotypeLabel" yaml:"chronotypeLabel"`
	TrainingLabel   string `json:"trainingLabel" yaml:"trainingLabel"`
	FrequencyLabel  string `json:"frequencyLabel" yaml:"frequencyLabel"`
	DietLabel       string `json:"dietLabel" yaml:"dietLabel"`
	ExperienceLabel string `json:"experienceLabel" yaml:"experienceLabel"`
	GoalLabel       string `json:"goalLabel" yaml:"goalLabel"`
	DietIcon        string `json:"dietIcon" yaml:"dietIcon"`
}

type TimingPlan struct {
	TrainingDays        TimingRecommendation `json:"trainingDays" yaml:"trainingDays"`
	RestDays            string               `json:"restDays" yaml:"restDays"`
	ProteinDistribution ProteinDistribution  `json:"proteinDistribution" yaml:"proteinDistribution"`
}

type AgeRange struct {
	Young string `json:"young" yaml:"young"`
	Older string `json:"older" yaml:"older"`
}

type Science struct {
	CircadianFacts   []string `json:"circadianFacts" yaml:"circadianFacts"`
	AnabolicWindow   string   `json:"anabolicWindow" yaml:"anabolicWindow"`
	LeucineThreshold AgeRange `json:"leucineThreshold" yaml:"leucineThreshold"`
}

type SupplementPlan struct {
	TierA          []SupplementInfo `json:"tierA" yaml:"tierA"`
	TierB          []SupplementInfo `json:"tierB" yaml:"tierB"`
	TierC          []SupplementInfo `json:"tierC" yaml:"tierC"`
	NotRecommended []string         `json:"notRecommended" yaml:"notRecommended"`
}

type Metrics struct {
	Weeks1To2      string `json:"weeks1_2" yaml:"weeks1_2"`
	Weeks3To4      string `json:"weeks3_4" yaml:"weeks3_4"`
	Weeks8To12     string `json:"weeks8_12" yaml:"weeks8_12"`
	ExpectedWeight string `json:"expectedWeight" yaml:"expectedWeight"`
}

type Adjustments struct {
	Phase1 string `json:"phase1" yaml:"phase1"`
	Phase2 string `json:"phase2" yaml:"phase2"`
	Phase3 string `json:"phase3" yaml:"phase3"`
	Phase4 string `json:"phase4" yaml:"phase4"`
}

// Plan is the generated supplementation-timing plan. It shares nothing with
// the engine's tables and belongs to the caller once returned.
type Plan struct {
	Profile     ProfileSummary      `json:"profile" yaml:"profile"`
	Timing      TimingPlan          `json:"timing" yaml:"timing"`
	Science     Science             `json:"science" yaml:"science"`
	Absorption  []ProteinAbsorption `json:"absorption" yaml:"absorption"`
	Supplements SupplementPlan      `json:"supplements" yaml:"supplements"`
	Timeline    []TimelineItem      `json:"timeline" yaml:"timeline"`
	Hydration   float64             `json:"hydration" yaml:"hydration"`
	Metrics     Metrics             `json:"metrics" yaml:"metrics"`
	Adjustments Adjustments         `json:"adjustments" yaml:"adjustments"`
}
