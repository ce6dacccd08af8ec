package chrono

import "fmt"

type Chronotype string

const (
	ChronoMorning      Chronotype = "morning"
	ChronoIntermediate Chronotype = "intermediate"
	ChronoEvening      Chronotype = "evening"
)

// Chronotypes lists every chronotype in questionnaire order.
var Chronotypes = []Chronotype{ChronoMorning, ChronoIntermediate, ChronoEvening}

func (c Chronotype) Valid() bool {
	switch c {
	case ChronoMorning, ChronoIntermediate, ChronoEvening:
		return true
	}
	return false
}

type TrainingTime string

const (
	TrainingMorning   TrainingTime = "morning"
	TrainingMidday    TrainingTime = "midday"
	TrainingAfternoon TrainingTime = "afternoon"
	TrainingNight     TrainingTime = "night"
)

var TrainingTimes = []TrainingTime{TrainingMorning, TrainingMidday, TrainingAfternoon, TrainingNight}

func (t TrainingTime) Valid() bool {
	switch t {
	case TrainingMorning, TrainingMidday, TrainingAfternoon, TrainingNight:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyLow      Frequency = "low"
	FrequencyModerate Frequency = "moderate"
	FrequencyHigh     Frequency = "high"
)

var Frequencies = []Frequency{FrequencyLow, FrequencyModerate, FrequencyHigh}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyLow, FrequencyModerate, FrequencyHigh:
		return true
	}
	return false
}

type Diet string

const (
	DietOmnivore     Diet = "omnivore"
	DietVegetarian   Diet = "vegetarian"
	DietVegan        Diet = "vegan"
	DietIntermittent Diet = "intermittent"
	DietKeto         Diet = "keto"
	DietOther        Diet = "other"
)

var Diets = []Diet{DietOmnivore, DietVegetarian, DietVegan, DietIntermittent, DietKeto, DietOther}

func (d Diet) Valid() bool {
	switch d {
	case DietOmnivore, DietVegetarian, DietVegan, DietIntermittent, DietKeto, DietOther:
		return true
	}
	return false
}

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

var Experiences = []Experience{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

type Goal string

const (
	GoalHypertrophy Goal = "hypertrophy"
	GoalStrength    Goal = "strength"
	GoalBoth        Goal = "both"
)

var Goals = []Goal{GoalHypertrophy, GoalStrength, GoalBoth}

func (g Goal) Valid() bool {
	switch g {
	case GoalHypertrophy, GoalStrength, GoalBoth:
		return true
	}
	return false
}

// ParseChronotype converts raw input (query strings, CLI flags) into a Chronotype.
func ParseChronotype(s string) (Chronotype, error) {
	c := Chronotype(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: chronotype %q", ErrInvalidEnumValue, s)
	}
	return c, nil
}

func ParseTrainingTime(s string) (TrainingTime, error) {
	t := TrainingTime(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: trainingTime %q", ErrInvalidEnumValue, s)
	}
	return t, nil
}

func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: frequency %q", ErrInvalidEnumValue, s)
	}
	return f, nil
}

func ParseDiet(s string) (Diet, error) {
	d := Diet(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: diet %q", ErrInvalidEnumValue, s)
	}
	return d, nil
}

func ParseExperience(s string) (Experience, error) {
	e := Experience(s)
	if !e.Valid() {
		return "", fmt.Errorf("%w: experience %q", ErrInvalidEnumValue, s)
	}
	return e, nil
}

func ParseGoal(s string) (Goal, error) {
	g := Goal(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: goal %q", ErrInvalidEnumValue, s)
	}
	return g, nil
}
