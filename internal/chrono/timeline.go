package chrono

import "fmt"

// TrainingAction marks the training session event in every timeline.
const TrainingAction = "🏋️ ENTRENAMIENTO"

const (
	wakeUpDetail = "Hidratación: 500ml agua"
	preWorkout   = "Pre-entreno opcional"
	postWorkout  = "Post-entreno inmediato"
	caseinNight  = "Caseína 30g si entreno intenso"
)

func share(pct int) string {
	return fmt.Sprintf("%d%% de proteína diaria", pct)
}

// GenerateTimeline builds the daily schedule for a profile. The set and order
// of events depend only on the training time; chronotype sets the wake-up time
// and, with diet, the text of the meal events.
func (e *Engine) GenerateTimeline(p Profile) ([]TimelineItem, error) {
	diet, err := e.tables.Diet(p.Diet)
	if err != nil {
		return nil, err
	}
	dist, err := e.tables.Distribution(p.Chronotype)
	if err != nil {
		return nil, err
	}
	wakeUp, err := e.tables.WakeUp(p.Chronotype)
	if err != nil {
		return nil, err
	}

	wake := TimelineItem{Time: wakeUp, Action: "Despertar", Detail: wakeUpDetail}
	training := func(at string) TimelineItem {
		return TimelineItem{Time: at, Action: TrainingAction, Highlight: true}
	}
	recovery := func(at, dose string) TimelineItem {
		return TimelineItem{
			Time:      at,
			Action:    postWorkout,
			Detail:    fmt.Sprintf("%s %s", diet.ProteinSource, dose),
			Highlight: true,
		}
	}

	switch p.TrainingTime {
	case TrainingMorning:
		return []TimelineItem{
			wake,
			{Time: "06:30", Action: preWorkout, Detail: "Cafeína 3-6mg/kg si usas"},
			training("07:00"),
			recovery("07:45", "25-40g + Creatina 5g + Carbohidratos 30-50g"),
			{Time: "09:00", Action: "Desayuno completo", Detail: share(dist.Breakfast)},
			{Time: "13:00", Action: "Almuerzo", Detail: share(dist.Lunch)},
			{Time: "20:00", Action: "Cena", Detail: share(dist.Dinner)},
			{Time: "22:30", Action: "Pre-sueño opcional", Detail: caseinNight},
		}, nil
	case TrainingMidday:
		return []TimelineItem{
			wake,
			{Time: "08:00", Action: "Desayuno", Detail: share(dist.Breakfast)},
			{Time: "11:30", Action: preWorkout, Detail: "Cafeína 3-6mg/kg si usas"},
			training("12:00"),
			recovery("13:00", "25-30g + Creatina 5g"),
			{Time: "13:30", Action: "Almuerzo completo", Detail: share(dist.Lunch)},
			{Time: "20:00", Action: "Cena", Detail: share(dist.Dinner)},
			{Time: "22:30", Action: "Pre-sueño opcional", Detail: caseinNight},
		}, nil
	case TrainingAfternoon:
		return []TimelineItem{
			wake,
			{Time: "08:00", Action: "Desayuno", Detail: share(dist.Breakfast)},
			{Time: "13:00", Action: "Almuerzo", Detail: share(dist.Lunch)},
			{Time: "17:00", Action: preWorkout, Detail: "Cafeína 3-6mg/kg + snack ligero"},
			training("17:30"),
			recovery("18:30", "25-40g + Creatina 5g + Plátano"),
			{Time: "20:30", Action: "Cena", Detail: share(dist.Dinner)},
			{Time: "23:00", Action: "Pre-sueño opcional", Detail: caseinNight},
		}, nil
	case TrainingNight:
		return []TimelineItem{
			wake,
			{Time: "08:00", Action: "Desayuno", Detail: share(dist.Breakfast)},
			{Time: "13:00", Action: "Almuerzo", Detail: share(dist.Lunch)},
			{Time: "18:00", Action: "Cena ligera pre-entreno", Detail: "Proteína + carbohidratos complejos"},
			{Time: "19:30", Action: preWorkout, Detail: "Cafeína reducida o evitar (afecta sueño)"},
			training("20:00"),
			recovery("21:00", "25-30g + Creatina 5g"),
			{Time: "22:30", Action: "Proteína adicional", Detail: fmt.Sprintf("%d%% restante + Caseína 30-40g opcional", dist.Dinner)},
		}, nil
	}
	return nil, missing("timeline schedules", p.TrainingTime)
}
