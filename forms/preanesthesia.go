package forms

import "fmt"

const sectionAntecedentes = "Antecedentes Anestésicos"

// PreAnesthesiaQuestions is the static questionnaire patients fill in before
// their procedure. The content mirrors the paper form used by the
// anesthesiology department, so the texts are in Spanish.
var PreAnesthesiaQuestions = buildPreAnesthesiaQuestions()

func buildPreAnesthesiaQuestions() []Question {
	return []Question{
		{
			ID:           "has_previous_anesthesia",
			Section:      sectionAntecedentes,
			Text:         "¿Ha recibido Ud. anestesia anteriormente?",
			Type:         TypeYesNo,
			Required:     true,
			SubQuestions: previousAnesthesiaSubQuestions(),
		},
		{
			ID:          "anesthesia_complications",
			Section:     sectionAntecedentes,
			Text:        "¿Han habido complicaciones o situaciones desagradables durante o después de los actos anestésicos?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa las complicaciones",
		},
		{
			ID:          "family_anesthesia_problems",
			Section:     sectionAntecedentes,
			Text:        "¿Tiene conocimiento de algún miembro de su familia que haya tenido problemas graves con la anestesia?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique el familiar y el problema",
		},
		{
			ID:          "takes_medications",
			Section:     "Medicamentos y Alergias",
			Text:        "¿Toma Ud. en forma rutinaria alguna(s) medicina(s), adaptógenos, vitaminas o anticonceptivos, etc.?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Liste los medicamentos, dosis y frecuencia",
		},
		{
			ID:          "has_allergies",
			Section:     "Medicamentos y Alergias",
			Text:        "¿Es Ud. alérgico(a) a algún medicamento u otra sustancia?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Liste las alergias",
		},
		{
			ID:       "smoking_history",
			Section:  "Estilo de Vida",
			Text:     "¿Fumaba o fuma Ud. actualmente?",
			Type:     TypeYesNo,
			Required: true,
			SubQuestions: []Question{
				{
					ID:      "smoking_current_status",
					Section: "Estilo de Vida",
					Text:    "Estado actual",
					Type:    TypeSelect,
					Options: []Option{
						{Value: "current", Label: "Fumador actual"},
						{Value: "quit", Label: "Dejó de fumar"},
					},
				},
				{
					ID:            "smoking_duration",
					Section:       "Estilo de Vida",
					Text:          "¿Desde hace cuánto tiempo fuma?",
					Type:          TypeText,
					Placeholder:   "Ej: 4 años, 6 meses",
					ConditionalOn: &Condition{QuestionID: "smoking_current_status", Values: []string{"current"}},
				},
				{
					ID:            "smoking_start_date",
					Section:       "Estilo de Vida",
					Text:          "¿Fecha desde que empezó a fumar?",
					Type:          TypeText,
					Placeholder:   "Ej: Enero 2020",
					ConditionalOn: &Condition{QuestionID: "smoking_current_status", Values: []string{"current"}},
				},
				{
					ID:            "smoking_daily_quantity",
					Section:       "Estilo de Vida",
					Text:          "¿Cantidad diaria?",
					Type:          TypeNumber,
					Placeholder:   "Número de cigarrillos al día",
					Validation:    &Validation{Min: intPtr(1)},
					ConditionalOn: &Condition{QuestionID: "smoking_current_status", Values: []string{"current"}},
				},
				{
					ID:            "smoking_total_duration",
					Section:       "Estilo de Vida",
					Text:          "¿Cuánto tiempo fue fumador?",
					Type:          TypeText,
					Placeholder:   "Ej: 10 años",
					ConditionalOn: &Condition{QuestionID: "smoking_current_status", Values: []string{"quit"}},
				},
				{
					ID:            "smoking_quit_timing",
					Section:       "Estilo de Vida",
					Text:          "¿Cuándo dejó de fumar?",
					Type:          TypeText,
					Placeholder:   "Ej: Julio 2025",
					ConditionalOn: &Condition{QuestionID: "smoking_current_status", Values: []string{"quit"}},
				},
			},
		},
		{
			ID:       "alcohol_consumption",
			Section:  "Estilo de Vida",
			Text:     "¿Consume bebidas alcohólicas?",
			Type:     TypeYesNo,
			Required: true,
			SubQuestions: []Question{
				{
					ID:          "alcohol_type",
					Section:     "Estilo de Vida",
					Text:        "¿Qué tipo?",
					Type:        TypeText,
					Placeholder: "Cerveza, vino, licor, etc.",
				},
				{
					ID:      "alcohol_frequency",
					Section: "Estilo de Vida",
					Text:    "¿Con qué frecuencia?",
					Type:    TypeSelect,
					Options: []Option{
						{Value: "daily", Label: "Diariamente"},
						{Value: "weekly", Label: "Semanalmente"},
						{Value: "monthly", Label: "Mensualmente"},
						{Value: "occasional", Label: "Ocasionalmente"},
					},
				},
				{
					ID:          "alcohol_quantity",
					Section:     "Estilo de Vida",
					Text:        "¿Qué cantidad?",
					Type:        TypeText,
					Placeholder: "Cantidad por ocasión",
				},
			},
		},
		{
			ID:          "radiotherapy_or_chemotherapy",
			Section:     "Tratamientos Especiales",
			Text:        "¿Ha sido sometido a tratamiento con radioterapia o quimioterapia?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique el tratamiento y cuándo",
		},
		{
			ID:          "has_prosthetics",
			Section:     "Información Física",
			Text:        "¿Usa prótesis dentales, auditivas, oculares u otras?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique qué tipo de prótesis",
		},
		{
			ID:          "limited_neck_mobility",
			Section:     "Información Física",
			Text:        "¿Tiene limitación para mover el cuello?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa la limitación",
		},
		{
			ID:          "limited_mouth_opening",
			Section:     "Información Física",
			Text:        "¿Tiene dificultad para abrir la boca?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa la dificultad",
		},
		{
			ID:          "recent_weight_changes",
			Section:     "Información Física",
			Text:        "¿Ha tenido cambios de peso importantes recientemente?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique cuánto peso ganó o perdió",
		},
		{
			ID:          "has_seizures",
			Section:     "Condiciones Neurológicas",
			Text:        "¿Sufre o ha sufrido de convulsiones?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique frecuencia y tratamiento",
		},
		{
			ID:          "mental_health_treatment",
			Section:     "Condiciones Neurológicas",
			Text:        "¿Está bajo tratamiento psiquiátrico o psicológico?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique el tratamiento",
		},
		{
			ID:          "dietary_regimen",
			Section:     "Información Adicional",
			Text:        "¿Sigue algún régimen alimenticio especial?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique el tipo de dieta",
		},
		{
			ID:          "sleep_difficulty",
			Section:     "Salud General",
			Text:        "¿Tiene dificultad con su sueño?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa",
		},
		{
			ID:          "endocrine_conditions",
			Section:     "Salud General",
			Text:        "¿Sufre Ud. o ha sufrido de tiroides, diabetes u otra afección de sus glándulas endocrinas?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "recent_respiratory_symptoms",
			Section:     "Salud Respiratoria",
			Text:        "¿Ha tenido recientemente tos, gripe o dolor de garganta?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "¿Fecha última de crisis?",
		},
		{
			ID:          "respiratory_conditions",
			Section:     "Salud Respiratoria",
			Text:        "¿Ha sufrido Ud. de alguna afección respiratoria, Asma, Bronquitis?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "liver_disease",
			Section:     "Salud General",
			Text:        "¿Ha sufrido Ud. de hepatitis o de alguna otra enfermedad del hígado?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa",
		},
		{
			ID:          "heart_disease",
			Section:     "Salud Cardiovascular",
			Text:        "¿Sufre Ud. del corazón?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa",
		},
		{
			ID:          "hypertension",
			Section:     "Salud Cardiovascular",
			Text:        "¿Es Ud. hipertenso?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique tratamiento",
		},
		{
			ID:          "kidney_disease",
			Section:     "Salud General",
			Text:        "¿Sufre Ud. o ha sufrido de alguna enfermedad de los riñones?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa",
		},
		{
			ID:          "musculoskeletal_conditions",
			Section:     "Salud General",
			Text:        "¿Sufre Ud. o ha sufrido de alguna enfermedad de sus huesos, músculos o columna?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "gastrointestinal_conditions",
			Section:     "Salud General",
			Text:        "¿Sufre Ud. o ha sufrido alguna enfermedad gastrointestinal, gastritis, úlceras (hernia hiatal)?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "sports_exercise",
			Section:     "Estilo de Vida",
			Text:        "¿Realiza algún deporte o ejercicio?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "hiv_testing",
			Section:     "Salud General",
			Text:        "¿Se ha hecho pruebas de despistaje de SIDA?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Describa",
		},
		{
			ID:          "blood_disorders",
			Section:     "Salud General",
			Text:        "¿Sufre Ud. o ha sufrido de alguna enfermedad de la sangre o la coagulación?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "blood_transfusions",
			Section:     "Salud General",
			Text:        "¿Le han hecho alguna transfusión sanguínea?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:          "other_diseases",
			Section:     "Salud General",
			Text:        "¿Sufre Ud. o ha sufrido de alguna enfermedad que no se le haya interrogado?",
			Type:        TypeYesNoDetails,
			Required:    true,
			Placeholder: "Especifique",
		},
		{
			ID:      "fasting_status",
			Section: "Preparación para la Intervención",
			Text:    "¿En caso de que este cuestionario sea contestado el mismo día de la intervención: ¿Está Ud. en ayunas?",
			Type:    TypeYesNo,
		},
		{
			ID:          "possible_pregnancy",
			Section:     "Información Femenina",
			Text:        "¿Cree Ud. que podría estar embarazada?",
			Type:        TypeYesNoDetails,
			Placeholder: "Fecha última menstruación",
		},
		{
			ID:          "pediatric_development_issues",
			Section:     "Información Pediátrica",
			Text:        "¿Su niño tiene trastornos de desarrollo, aprendizaje o conducta?",
			Type:        TypeYesNoDetails,
			Placeholder: "Especifique",
		},
	}
}

const maxPreviousAnesthesiaOccasions = 10

var occasionOrdinals = []string{"1ra", "2da", "3ra", "4ta", "5ta", "6ta", "7ma", "8va", "9na", "10ma"}

// previousAnesthesiaSubQuestions expands one block of intervention, year and
// anesthesia type questions per prior occasion. Each occasion only shows when
// the declared count reaches it.
func previousAnesthesiaSubQuestions() []Question {
	subs := []Question{
		{
			ID:          "previous_anesthesia_count",
			Section:     sectionAntecedentes,
			Text:        "¿Cuántas veces?",
			Type:        TypeNumber,
			Placeholder: "Número de veces",
			Validation:  &Validation{Min: intPtr(1), Max: intPtr(maxPreviousAnesthesiaOccasions)},
		},
	}
	for n := 1; n <= maxPreviousAnesthesiaOccasions; n++ {
		var counts []string
		for c := n; c <= maxPreviousAnesthesiaOccasions; c++ {
			counts = append(counts, fmt.Sprintf("%d", c))
		}
		ordinal := occasionOrdinals[n-1]
		subs = append(subs,
			Question{
				ID:            fmt.Sprintf("previous_anesthesia_%d_intervention", n),
				Section:       sectionAntecedentes,
				Text:          fmt.Sprintf("%s ocasión - Intervención", ordinal),
				Type:          TypeText,
				Placeholder:   "Nombre de la intervención",
				ConditionalOn: &Condition{QuestionID: "previous_anesthesia_count", Values: counts},
			},
			Question{
				ID:            fmt.Sprintf("previous_anesthesia_%d_year", n),
				Section:       sectionAntecedentes,
				Text:          fmt.Sprintf("%s ocasión - Año", ordinal),
				Type:          TypeText,
				Placeholder:   "Año",
				ConditionalOn: &Condition{QuestionID: "previous_anesthesia_count", Values: counts},
			},
			Question{
				ID:            fmt.Sprintf("previous_anesthesia_%d_type", n),
				Section:       sectionAntecedentes,
				Text:          fmt.Sprintf("%s ocasión - Tipo de Anestesia", ordinal),
				Type:          TypeText,
				Placeholder:   "Tipo de anestesia",
				ConditionalOn: &Condition{QuestionID: "previous_anesthesia_count", Values: counts},
			},
		)
	}
	return subs
}
