package chrono

import (
	"fmt"
	"strconv"
)

// proteinSupplement is the tier A entry whose note names the diet's protein source.
const proteinSupplement = "Proteína"

const (
	weightWithLoading    = "2-3kg"
	weightWithoutLoading = "1.5-2.5kg"
)

// Engine turns profiles into plans. It is safe for concurrent use: it only
// reads its tables.
type Engine struct {
	tables *Tables
}

func NewEngine(tables *Tables) *Engine {
	return &Engine{tables: tables}
}

func (e *Engine) Tables() *Tables {
	return e.tables
}

// GeneratePlan assembles the full plan for p. It performs no I/O and the same
// profile always yields an equal plan. Callers are expected to have run
// p.Validate; an out-of-domain value fails with ErrMissingTableEntry and no
// plan is returned.
func (e *Engine) GeneratePlan(p Profile) (*Plan, error) {
	t := e.tables

	summary, err := e.summarize(p)
	if err != nil {
		return nil, err
	}
	timing, err := t.Timing(p.TrainingTime)
	if err != nil {
		return nil, err
	}
	diet, err := t.Diet(p.Diet)
	if err != nil {
		return nil, err
	}
	dist, err := t.Distribution(p.Chronotype)
	if err != nil {
		return nil, err
	}
	hydration, err := t.Hydration(p.Frequency)
	if err != nil {
		return nil, err
	}
	supplements, err := e.supplements(p.Experience, diet)
	if err != nil {
		return nil, err
	}
	timeline, err := e.GenerateTimeline(p)
	if err != nil {
		return nil, err
	}

	cfg := t.Config()
	facts := t.Facts()
	expectedWeight := weightWithoutLoading
	if diet.LoadingPhase {
		expectedWeight = weightWithLoading
	}

	return &Plan{
		Profile: summary,
		Timing: TimingPlan{
			TrainingDays:        timing,
			RestDays:            fmt.Sprintf("Creatina: Con la comida más grande del día. Mantener dosis de %s diarios", cfg.CreatineDose),
			ProteinDistribution: dist,
		},
		Science: Science{
			CircadianFacts: []string{
				facts.MTORC1,
				facts.NightDegradation,
				facts.GrowthHormone,
				facts.Cortisol,
			},
			AnabolicWindow:   cfg.AnabolicWindow,
			LeucineThreshold: cfg.LeucineThreshold,
		},
		Absorption:  t.Absorption(),
		Supplements: supplements,
		Timeline:    timeline,
		Hydration:   hydration,
		Metrics: Metrics{
			Weeks1To2:      fmt.Sprintf("Peso esperado: +%s (retención intramuscular). Monitorea tolerancia digestiva.", expectedWeight),
			Weeks3To4:      "Stores musculares saturados. Notarás mejor rendimiento en series pesadas.",
			Weeks8To12:     "Evalúa progresión de fuerza y medidas. Ajusta si es necesario.",
			ExpectedWeight: expectedWeight,
		},
		Adjustments: adjustments(diet.LoadingPhase, hydration),
	}, nil
}

func (e *Engine) summarize(p Profile) (ProfileSummary, error) {
	t := e.tables
	var (
		s   ProfileSummary
		err error
	)
	if s.ChronotypeLabel, err = t.ChronotypeLabel(p.Chronotype); err != nil {
		return s, err
	}
	if s.TrainingLabel, err = t.TrainingLabel(p.TrainingTime); err != nil {
		return s, err
	}
	if s.FrequencyLabel, err = t.FrequencyLabel(p.Frequency); err != nil {
		return s, err
	}
	if s.ExperienceLabel, err = t.ExperienceLabel(p.Experience); err != nil {
		return s, err
	}
	if s.GoalLabel, err = t.GoalLabel(p.Goal); err != nil {
		return s, err
	}
	diet, err := t.Diet(p.Diet)
	if err != nil {
		return s, err
	}
	s.DietLabel = diet.Label
	s.DietIcon = diet.Icon
	return s, nil
}

// supplements picks the tiers for an experience level. Tier B is withheld
// from beginners.
func (e *Engine) supplements(exp Experience, diet DietAdjustment) (SupplementPlan, error) {
	if !exp.Valid() {
		return SupplementPlan{}, missing("supplement tiers", exp)
	}
	a, err := e.tables.Tier("A")
	if err != nil {
		return SupplementPlan{}, err
	}
	c, err := e.tables.Tier("C")
	if err != nil {
		return SupplementPlan{}, err
	}
	for i := range a.Supplements {
		if a.Supplements[i].Name == proteinSupplement {
			a.Supplements[i].Note = fmt.Sprintf("%s | Fuente: %s", a.Supplements[i].Note, diet.ProteinSource)
		}
	}

	tierB := []SupplementInfo{}
	if exp != ExperienceBeginner {
		b, err := e.tables.Tier("B")
		if err != nil {
			return SupplementPlan{}, err
		}
		tierB = b.Supplements
	}

	return SupplementPlan{
		TierA:          a.Supplements,
		TierB:          tierB,
		TierC:          c.Supplements,
		NotRecommended: e.tables.NotRecommended(),
	}, nil
}

func adjustments(loading bool, hydration float64) Adjustments {
	litres := strconv.FormatFloat(hydration, 'f', -1, 64)
	phase1 := fmt.Sprintf("Comienza con 5g/día de creatina monohidrato. Aumenta hidratación a %sL/día.", litres)
	if loading {
		phase1 = fmt.Sprintf("Opción de fase carga: 20g/día (4 tomas de 5g) durante 5-7 días, luego mantenimiento con 5g/día. Aumenta hidratación a %sL/día.", litres)
	}
	return Adjustments{
		Phase1: phase1,
		Phase2: "Ajusta timing según respuesta personal. Añade 1-2 series adicionales si toleras bien.",
		Phase3: "Mantén protocolo estable. Registra progresión de fuerza semanalmente.",
		Phase4: "Compara métricas con inicio. Considera análisis de función renal. Ajusta stack según resultados.",
	}
}
