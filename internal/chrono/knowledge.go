package chrono

// DefaultTables builds the knowledge base the service ships with.
func DefaultTables() *Tables {
	return &Tables{
		timing: map[TrainingTime]TimingRecommendation{
			TrainingMorning: {
				Range:     "06:00 - 10:00",
				Creatine:  "Post-entreno inmediato (dentro de 30 min)",
				Protein:   "Whey 25-40g + carbohidratos 30-50g",
				Rationale: "Aprovecha la máxima sensibilidad insulínica matinal",
			},
			TrainingMidday: {
				Range:     "12:00 - 14:00",
				Creatine:  "Post-entreno inmediato",
				Protein:   "Whey 25-30g",
				Rationale: "Combina con almuerzo completo 30-60 min después",
			},
			TrainingAfternoon: {
				Range:     "16:00 - 19:00",
				Creatine:  "Post-entreno inmediato",
				Protein:   "Whey 25-40g + plátano o fruta",
				Rationale: "Ventana de recuperación óptima; cena 2-3h después",
			},
			TrainingNight: {
				Range:     "19:00 - 22:00",
				Creatine:  "Post-entreno inmediato",
				Protein:   "Whey 25-30g post + caseína 30-40g opcional pre-sueño",
				Rationale: "Prioriza recuperación nocturna; evita estimulantes",
			},
		},

		diets: map[Diet]DietAdjustment{
			DietOmnivore: {
				Label:         "Omnívoro",
				Icon:          "🥩",
				CreatineNote:  "Stores de creatina típicamente normales",
				ProteinSource: "Whey, caseína, o cualquier fuente completa",
			},
			DietVegetarian: {
				Label:         "Vegetariano",
				Icon:          "🥛",
				CreatineNote:  "Stores moderadamente bajos - mayor beneficio potencial",
				ProteinSource: "Whey o proteína vegetal de alta calidad",
				LoadingPhase:  true,
			},
			DietVegan: {
				Label:         "Vegano",
				Icon:          "🌱",
				CreatineNote:  "Stores significativamente bajos - máximo beneficio esperado",
				ProteinSource: "Proteína arroz + guisante (combinación completa)",
				LoadingPhase:  true,
				ExtraNote:     "Considera fase de carga: 20g/día × 5-7 días",
			},
			DietIntermittent: {
				Label:         "Ayuno Intermitente",
				Icon:          "⏰",
				CreatineNote:  "Tomar creatina en primera comida del día",
				ProteinSource: "Cualquier fuente en ventana de alimentación",
				ImportantNote: "NO consumir creatina durante el ayuno",
			},
			DietKeto: {
				Label:         "Keto / Low Carb",
				Icon:          "🥑",
				CreatineNote:  "Puede añadir 10-15g carbohidratos post-entreno sin salir de cetosis",
				ProteinSource: "Whey isolate o proteína con bajo carbohidrato",
				ExtraNote:     "Los carbohidratos post-entreno mejoran la absorción",
			},
			DietOther: {
				Label:         "Otro patrón",
				Icon:          "🍽️",
				CreatineNote:  "Aplicar matriz de timing estándar",
				ProteinSource: "Según preferencias personales",
			},
		},

		distribution: map[Chronotype]ProteinDistribution{
			ChronoMorning: {
				Breakfast:            40,
				Lunch:                35,
				Dinner:               25,
				Note:                 "Concentrar 70% de proteína antes de 15:00h",
				ExerciseWindow:       "07:00-11:00h óptimo",
				DinnerRecommendation: "Cena temprana (≥3h antes de dormir)",
			},
			ChronoIntermediate: {
				Breakfast:            33,
				Lunch:                34,
				Dinner:               33,
				Note:                 "Distribución uniforme; evitar concentrar en últimas horas",
				ExerciseWindow:       "Flexible",
				DinnerRecommendation: "Mantener consistencia horaria",
			},
			ChronoEvening: {
				Breakfast:            25,
				Lunch:                35,
				Dinner:               40,
				Note:                 "Permitir 35-40% de proteína después de 16:00h",
				ExerciseWindow:       "15:00-19:00h óptimo",
				DinnerRecommendation: "Priorizar proteína sobre carbohidratos en cena",
			},
		},

		wakeUp: map[Chronotype]string{
			ChronoMorning:      "06:00",
			ChronoIntermediate: "07:30",
			ChronoEvening:      "09:00",
		},

		absorption: []ProteinAbsorption{
			{Name: "Whey (suero)", Rate: "~10 g/hora", Peak: "60-90 min", OptimalUse: "Post-ejercicio", Icon: "🥛"},
			{Name: "Caseína", Rate: "~3-6 g/hora", Peak: "120-180 min", OptimalUse: "Antes de dormir (40g, 30 min antes)", Icon: "🌙"},
			{Name: "Clara de huevo", Rate: "Moderada", Peak: "90-120 min", OptimalUse: "Cualquier comida; ideal ERC (bajo fósforo)", Icon: "🥚"},
			{Name: "Proteína vegetal", Rate: "Variable", Peak: "90-150 min", OptimalUse: "Comidas principales; arroz+guisante para perfil completo", Icon: "🌱"},
		},

		tierA: SupplementTier{
			Label: "Evidencia Sólida",
			Icon:  "✅",
			Supplements: []SupplementInfo{
				{Name: proteinSupplement, Dose: "1.6-2.2 g/kg/día", Icon: "🥛", Note: "Base fundamental para hipertrofia"},
				{Name: "Creatina Monohidrato", Dose: "3-5g/día", Icon: "⚡", Note: "+8.4% masa muscular vs placebo"},
				{Name: "Cafeína", Dose: "3-6 mg/kg pre-entreno", Icon: "☕", Note: "Mejora rendimiento y foco"},
			},
		},
		tierB: SupplementTier{
			Label: "Evidencia Moderada",
			Icon:  "🔬",
			Supplements: []SupplementInfo{
				{Name: "Beta-alanina", Dose: "3-6g/día", Icon: "💊", Note: "Mejora series de 60-240 segundos"},
				{Name: "Citrulina Malato", Dose: "6-8g pre-entreno", Icon: "🍉", Note: "Vasodilatación y bombeo"},
				{Name: "HMB", Dose: "3g/día", Icon: "💪", Note: "Más efectivo en principiantes"},
			},
		},
		tierC: SupplementTier{
			Label: "Evidencia Emergente",
			Icon:  "🔍",
			Supplements: []SupplementInfo{
				{Name: "Omega-3", Dose: "2-4g/día", Icon: "🐟", Note: "Sinergia con entrenamiento"},
				{Name: "Vitamina D", Dose: "1000-4000 UI/día", Icon: "☀️", Note: "Si hay deficiencia"},
			},
		},
		notRecommended: []string{
			"BCAA aislados (innecesarios con proteína adecuada)",
			"Glutamina (inefectiva en sanos)",
			"Tribulus terrestris",
			"Turkesterona (marketing > ciencia)",
		},

		facts: CircadianFacts{
			MTORC1:             "Pico de actividad mTORC1 (regulador anabolismo): 08:00-12:00h en cronotipos diurnos",
			NightDegradation:   "Degradación proteica mediante ubiquitina-proteasoma aumenta durante la noche",
			GrowthHormone:      "Hormona del crecimiento (GH): secreción pulsátil máxima durante sueño profundo",
			Cortisol:           "Cortisol pico: 05:30-08:00h (ambiente inicialmente catabólico que declina)",
			InsulinSensitivity: "Sensibilidad insulínica: máxima en la mañana para cronotipos matutinos",
		},

		config: Config{
			CreatineDose:    "3-5g",
			ProteinPerKgMin: 1.6,
			ProteinPerKgMax: 2.2,
			Hydration: map[Frequency]float64{
				FrequencyLow:      3,
				FrequencyModerate: 3.5,
				FrequencyHigh:     4,
			},
			LeucineThreshold:      AgeRange{Young: "2.0-2.5g", Older: "3.0-4.0g"},
			AnabolicWindow:        "4-6 horas alrededor del entrenamiento",
			OptimalProteinPerMeal: AgeRange{Young: "20-25g", Older: "35-40g"},
		},

		labels: labels{
			chronotype: map[Chronotype]string{
				ChronoMorning:      "Matutino 🌅",
				ChronoIntermediate: "Intermedio ☀️",
				ChronoEvening:      "Vespertino 🌙",
			},
			trainingTime: map[TrainingTime]string{
				TrainingMorning:   "Mañana (06:00-10:00)",
				TrainingMidday:    "Mediodía (12:00-14:00)",
				TrainingAfternoon: "Tarde (16:00-19:00)",
				TrainingNight:     "Noche (19:00-22:00)",
			},
			frequency: map[Frequency]string{
				FrequencyLow:      "2-3 días/semana",
				FrequencyModerate: "3-4 días/semana",
				FrequencyHigh:     "5-6 días/semana",
			},
			experience: map[Experience]string{
				ExperienceBeginner:     "Principiante (<1 año)",
				ExperienceIntermediate: "Intermedio (1-3 años)",
				ExperienceAdvanced:     "Avanzado (>3 años)",
			},
			goal: map[Goal]string{
				GoalHypertrophy: "Hipertrofia 💪",
				GoalStrength:    "Fuerza 🏆",
				GoalBoth:        "Hipertrofia + Fuerza ⚡",
			},
		},
	}
}
