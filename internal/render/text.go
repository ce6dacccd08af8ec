package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chronopro-api/internal/chrono"
	"chronopro-api/internal/storage"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginTop(1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5A623"))
	boxStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

func section(title string, lines ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, headingStyle.Render(title), strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return fmt.Sprintf("%-15s %s", label+":", value)
}

// Plan renders p for a terminal.
func Plan(p *chrono.Plan) string {
	s := p.Profile
	profile := boxStyle.Render(strings.Join([]string{
		titleStyle.Render("Plan ChronoPro"),
		field("Cronotipo", s.ChronotypeLabel),
		field("Entrenamiento", s.TrainingLabel),
		field("Frecuencia", s.FrequencyLabel),
		field("Dieta", s.DietIcon+" "+s.DietLabel),
		field("Experiencia", s.ExperienceLabel),
		field("Objetivo", s.GoalLabel),
	}, "\n"))

	t := p.Timing
	d := t.ProteinDistribution
	timing := section("Timing",
		fmt.Sprintf("Días de entrenamiento (%s)", t.TrainingDays.Range),
		"  Creatina: "+t.TrainingDays.Creatine,
		"  Proteína: "+t.TrainingDays.Protein,
		mutedStyle.Render("  "+t.TrainingDays.Rationale),
		"Días de descanso: "+t.RestDays,
		fmt.Sprintf("Distribución de proteína: desayuno %d%% / comida %d%% / cena %d%%", d.Breakfast, d.Lunch, d.Dinner),
		mutedStyle.Render("  "+d.Note),
	)

	var timeline []string
	for _, item := range p.Timeline {
		line := fmt.Sprintf("%s  %s  %s", item.Time, item.Action, item.Detail)
		if item.Highlight {
			line = highlightStyle.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		timeline = append(timeline, line)
	}

	sp := p.Supplements
	var supplements []string
	for _, tier := range []struct {
		name  string
		items []chrono.SupplementInfo
	}{
		{"Tier A", sp.TierA},
		{"Tier B", sp.TierB},
		{"Tier C", sp.TierC},
	} {
		if len(tier.items) == 0 {
			continue
		}
		supplements = append(supplements, tier.name)
		for _, info := range tier.items {
			supplements = append(supplements, fmt.Sprintf("  %s %s: %s", info.Icon, info.Name, info.Dose))
			supplements = append(supplements, mutedStyle.Render("    "+info.Note))
		}
	}
	if len(sp.NotRecommended) > 0 {
		supplements = append(supplements, "No recomendados")
		for _, n := range sp.NotRecommended {
			supplements = append(supplements, "  ✗ "+n)
		}
	}

	m := p.Metrics
	metrics := section("Métricas",
		"Semanas 1-2:  "+m.Weeks1To2,
		"Semanas 3-4:  "+m.Weeks3To4,
		"Semanas 8-12: "+m.Weeks8To12,
		"Peso esperado: "+m.ExpectedWeight,
	)

	a := p.Adjustments
	adjustments := section("Ajustes",
		"1. "+a.Phase1,
		"2. "+a.Phase2,
		"3. "+a.Phase3,
		"4. "+a.Phase4,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		profile,
		timing,
		section("Cronograma diario", timeline...),
		section("Suplementos", supplements...),
		section("Hidratación", strconv.FormatFloat(p.Hydration, 'f', -1, 64)+" L/día"),
		section("Ciencia", p.Science.CircadianFacts...),
		metrics,
		adjustments,
	)
}

// Stats renders the admin dashboard counters.
func Stats(s *storage.Stats) string {
	lines := []string{
		titleStyle.Render("Respuestas"),
		fmt.Sprintf("Total:        %d", s.Total),
		fmt.Sprintf("Últimas 24h:  %d", s.Last24h),
	}
	lines = append(lines, headingStyle.Render("Por cronotipo"))
	lines = append(lines, counts(s.ByChronotype)...)
	lines = append(lines, headingStyle.Render("Por dieta"))
	lines = append(lines, counts(s.ByDiet)...)
	return strings.Join(lines, "\n")
}

func counts(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-14s %d", k, m[k]))
	}
	return lines
}

// Responses renders one line per stored response.
func Responses(rs []storage.Response) string {
	if len(rs) == 0 {
		return mutedStyle.Render("No responses.")
	}
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		lines = append(lines, fmt.Sprintf("%s  %s  %-12s %-9s %-9s %-12s %-12s %s",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Chronotype, r.TrainingTime, r.Frequency, r.Diet, r.Experience, r.Goal,
		))
	}
	return strings.Join(lines, "\n")
}
