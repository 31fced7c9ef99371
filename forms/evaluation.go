package forms

// DoctorEvaluationQuestions is the structured pre-anesthesia evaluation the
// anesthesiologist fills in after reviewing the patient questionnaire.
var DoctorEvaluationQuestions = []Question{
	{
		ID:       "nombre_paciente",
		Section:  "Datos del Paciente",
		Text:     "Nombre del paciente",
		Type:     TypeText,
		Required: true,
	},
	{
		ID:       "sexo",
		Section:  "Datos del Paciente",
		Text:     "Sexo",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "masculino", Label: "Masculino"},
			{Value: "femenino", Label: "Femenino"},
		},
	},
	{
		ID:       "edad",
		Section:  "Datos del Paciente",
		Text:     "Edad",
		Type:     TypeNumber,
		Required: true,
	},
	{
		ID:       "peso_kg",
		Section:  "Datos del Paciente",
		Text:     "Peso (kg)",
		Type:     TypeNumber,
		Required: true,
	},
	{
		ID:          "talla_m",
		Section:     "Datos del Paciente",
		Text:        "Talla (m)",
		Type:        TypeNumber,
		Required:    true,
		Placeholder: "Ej: 1.70",
	},
	{
		ID:          "imc",
		Section:     "Datos del Paciente",
		Text:        "Índice de Masa Corporal (IMC)",
		Type:        TypeNumber,
		Placeholder: "Se calcula automáticamente con peso / talla²",
	},
	{
		ID:       "diagnostico",
		Section:  "Datos del Paciente",
		Text:     "Diagnóstico",
		Type:     TypeText,
		Required: true,
	},
	{
		ID:       "intervencion_propuesta",
		Section:  "Datos del Paciente",
		Text:     "Intervención propuesta",
		Type:     TypeText,
		Required: true,
	},
	{
		ID:       "medico_tratante",
		Section:  "Datos del Paciente",
		Text:     "Médico tratante",
		Type:     TypeSelect,
		Required: true,
		SubQuestions: []Question{
			{
				ID:            "medico_tratante_otro",
				Section:       "Datos del Paciente",
				Text:          "Especifique el nombre del médico",
				Type:          TypeText,
				Placeholder:   "Nombre completo del médico",
				ConditionalOn: &Condition{QuestionID: "medico_tratante", Values: []string{"OTRO"}},
			},
		},
	},
	{
		ID:       "anestesias_previas",
		Section:  "Antecedentes y Encuesta",
		Text:     "¿Ha recibido anestesias previas?",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "complicaciones_anestesicas",
		Section:  "Antecedentes y Encuesta",
		Text:     "¿Presentó complicaciones con anestesias previas?",
		Type:     TypeYesNoDetails,
		Required: true,
	},
	{
		ID:       "alergia_a_medicamentos",
		Section:  "Antecedentes y Encuesta",
		Text:     "¿Alergia a medicamentos?",
		Type:     TypeYesNoDetails,
		Required: true,
	},
	{
		ID:       "hipertension_arterial_sistemica",
		Section:  "Antecedentes y Encuesta",
		Text:     "¿Hipertensión arterial sistémica?",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:            "tratamiento_hipertension",
		Section:       "Antecedentes y Encuesta",
		Text:          "Tratamiento para hipertensión",
		Type:          TypeText,
		ConditionalOn: &Condition{QuestionID: "hipertension_arterial_sistemica", Values: []string{"yes"}},
	},
	{
		ID:       "diabetes",
		Section:  "Antecedentes y Encuesta",
		Text:     "Diabetes",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "no", Label: "No"},
			{Value: "tipo_1", Label: "Tipo 1"},
			{Value: "tipo_2", Label: "Tipo 2"},
		},
	},
	{
		ID:            "tratamiento_diabetes",
		Section:       "Antecedentes y Encuesta",
		Text:          "Tratamiento para diabetes",
		Type:          TypeText,
		ConditionalOn: &Condition{QuestionID: "diabetes", Values: []string{"tipo_1", "tipo_2"}},
	},
	{
		ID:          "antiagregante_suspendido_hace",
		Section:     "Antecedentes y Encuesta",
		Text:        "Antiagregante suspendido hace",
		Type:        TypeText,
		Placeholder: "Indicar tiempo de suspensión",
	},
	{
		ID:          "tension_arterial_mmHg",
		Section:     "Examen Físico - Signos Vitales",
		Text:        "Tensión arterial (mmHg)",
		Type:        TypeText,
		Required:    true,
		Placeholder: "Ej: 120/80",
	},
	{
		ID:       "frecuencia_respiratoria",
		Section:  "Examen Físico - Signos Vitales",
		Text:     "Frecuencia respiratoria",
		Type:     TypeNumber,
		Required: true,
	},
	{
		ID:       "frecuencia_cardiaca",
		Section:  "Examen Físico - Signos Vitales",
		Text:     "Frecuencia cardíaca",
		Type:     TypeNumber,
		Required: true,
	},
	{
		ID:       "temperatura_c",
		Section:  "Examen Físico - Signos Vitales",
		Text:     "Temperatura (°C)",
		Type:     TypeNumber,
		Required: true,
	},
	{
		ID:       "aspecto_piel_sin_lesiones",
		Section:  "Examen Físico",
		Text:     "Aspecto de la piel: sin lesiones evidentes",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "estado_conciencia_tiempo",
		Section:  "Examen Físico",
		Text:     "Estado de conciencia: Orientado en Tiempo",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "estado_conciencia_persona",
		Section:  "Examen Físico",
		Text:     "Estado de conciencia: Orientado en Persona",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "estado_conciencia_espacio",
		Section:  "Examen Físico",
		Text:     "Estado de conciencia: Orientado en Espacio",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "cabeza_cuello_normocefalo",
		Section:  "Examen Físico",
		Text:     "Cabeza y cuello: normocéfalo",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "cabeza_cuello_sin_lesiones",
		Section:  "Examen Físico",
		Text:     "Cabeza y cuello: sin lesiones evidentes",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "columna_apofisis_visibles",
		Section:  "Examen Físico",
		Text:     "Columna vertebral: apófisis espinosas visibles",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "columna_apofisis_palpables",
		Section:  "Examen Físico",
		Text:     "Columna vertebral: apófisis espinosas palpables",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "evaluacion_pulmonar_eupneico",
		Section:  "Examen Físico",
		Text:     "Evaluación pulmonar: eupneico en reposo",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:      "espirometria",
		Section: "Examen Físico",
		Text:    "Espirometría",
		Type:    TypeText,
	},
	{
		ID:       "abdomen_sin_lesiones",
		Section:  "Examen Físico",
		Text:     "Abdomen: sin lesiones evidentes",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:       "osteo_muscular_sin_lesiones",
		Section:  "Examen Físico",
		Text:     "Osteo-muscular: sin lesiones evidentes",
		Type:     TypeYesNo,
		Required: true,
	},
	{
		ID:      "rx_torax",
		Section: "Evaluación Cardiovascular",
		Text:    "Radiografía de tórax",
		Type:    TypeText,
	},
	{
		ID:      "ekg",
		Section: "Evaluación Cardiovascular",
		Text:    "Electrocardiograma (EKG)",
		Type:    TypeText,
	},
	{
		ID:      "tolerancia_ejercicio_mets",
		Section: "Evaluación Cardiovascular",
		Text:    "Tolerancia al ejercicio (METS)",
		Type:    TypeSelect,
		Options: []Option{
			{Value: "menos_4", Label: "< 4 METS"},
			{Value: "mas_4", Label: "> 4 METS"},
		},
	},
	{
		ID:       "mallampati",
		Section:  "Vía Aérea",
		Text:     "Clasificación de Mallampati",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "1", Label: "I"},
			{Value: "2", Label: "II"},
			{Value: "3", Label: "III"},
			{Value: "4", Label: "IV"},
		},
	},
	{
		ID:       "apertura_oral",
		Section:  "Vía Aérea",
		Text:     "Apertura oral",
		Type:     TypeText,
		Required: true,
	},
	{
		ID:       "distancia_tiromentoniana_cm",
		Section:  "Vía Aérea",
		Text:     "Distancia tiromentoniana (cm)",
		Type:     TypeNumber,
		Required: true,
	},
	{
		ID:       "movilidad_cervical",
		Section:  "Vía Aérea",
		Text:     "Movilidad cervical",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "clase_1", Label: "Clase I"},
			{Value: "clase_2", Label: "Clase II"},
			{Value: "clase_3", Label: "Clase III"},
			{Value: "clase_4", Label: "Clase IV"},
		},
	},
	{
		ID:       "asa",
		Section:  "Indicadores de Riesgo",
		Text:     "Clasificación ASA",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "1", Label: "I"},
			{Value: "2", Label: "II"},
			{Value: "3", Label: "III"},
			{Value: "4", Label: "IV"},
			{Value: "5", Label: "V"},
			{Value: "e", Label: "E"},
		},
	},
	{
		ID:       "johns_hopkins",
		Section:  "Indicadores de Riesgo",
		Text:     "Escala Johns Hopkins",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "1", Label: "I"},
			{Value: "2", Label: "II"},
			{Value: "3", Label: "III"},
			{Value: "4", Label: "IV"},
			{Value: "5", Label: "V"},
		},
	},
	{
		ID:       "via_aerea_riesgo",
		Section:  "Indicadores de Riesgo",
		Text:     "Clasificación de riesgo de vía aérea",
		Type:     TypeSelect,
		Required: true,
		Options: []Option{
			{Value: "1", Label: "I"},
			{Value: "2", Label: "II"},
			{Value: "3", Label: "III"},
			{Value: "4", Label: "IV"},
			{Value: "5", Label: "V"},
		},
	},
	{
		ID:       "tecnica_anestesica_sugerida",
		Section:  "Plan Anestésico",
		Text:     "Técnica anestésica sugerida",
		Type:     TypeTextarea,
		Required: true,
	},
	{
		ID:      "nebulizacion",
		Section: "Plan Anestésico",
		Text:    "Nebulización",
		Type:    TypeYesNo,
	},
	{
		ID:      "esteroides_vev",
		Section: "Plan Anestésico",
		Text:    "Esteroides VEV",
		Type:    TypeYesNo,
	},
	{
		ID:      "glicemias_perioperatorias",
		Section: "Plan Anestésico",
		Text:    "Glicemias perioperatorias",
		Type:    TypeYesNo,
	},
	{
		ID:      "sap",
		Section: "Plan Anestésico",
		Text:    "S.A.P.",
		Type:    TypeText,
	},
	{
		ID:      "observaciones",
		Section: "Observaciones",
		Text:    "Observaciones",
		Type:    TypeTextarea,
	},
	{
		ID:       "medico_anestesiologo",
		Section:  "Observaciones",
		Text:     "Médico anestesiólogo",
		Type:     TypeText,
		Required: true,
	},
}
