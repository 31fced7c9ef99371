package forms

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreAnesthesiaQuestionIDsAreUnique(t *testing.T) {
	ids := QuestionIDs(PreAnesthesiaQuestions)
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.Falsef(t, seen[id], "duplicate question id %s", id)
		seen[id] = true
	}
}

func TestDoctorEvaluationQuestionIDsAreUnique(t *testing.T) {
	ids := QuestionIDs(DoctorEvaluationQuestions)
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.Falsef(t, seen[id], "duplicate question id %s", id)
		seen[id] = true
	}
}

func TestConditionalsReferenceExistingQuestions(t *testing.T) {
	for _, set := range [][]Question{PreAnesthesiaQuestions, DoctorEvaluationQuestions} {
		known := make(map[string]bool)
		for _, id := range QuestionIDs(set) {
			known[id] = true
		}
		var walk func([]Question)
		walk = func(qs []Question) {
			for _, q := range qs {
				if q.ConditionalOn != nil {
					assert.Truef(t, known[q.ConditionalOn.QuestionID],
						"question %s depends on unknown question %s", q.ID, q.ConditionalOn.QuestionID)
					assert.NotEmpty(t, q.ConditionalOn.Values)
				}
				walk(q.SubQuestions)
			}
		}
		walk(set)
	}
}

func TestPreviousAnesthesiaOccasionExpansion(t *testing.T) {
	var root *Question
	for i := range PreAnesthesiaQuestions {
		if PreAnesthesiaQuestions[i].ID == "has_previous_anesthesia" {
			root = &PreAnesthesiaQuestions[i]
			break
		}
	}
	require.NotNil(t, root)

	// one count question plus intervention, year and type per occasion
	require.Len(t, root.SubQuestions, 1+maxPreviousAnesthesiaOccasions*3)

	count := root.SubQuestions[0]
	assert.Equal(t, "previous_anesthesia_count", count.ID)
	require.NotNil(t, count.Validation)
	assert.Equal(t, 1, *count.Validation.Min)
	assert.Equal(t, maxPreviousAnesthesiaOccasions, *count.Validation.Max)

	byID := make(map[string]Question)
	for _, sub := range root.SubQuestions {
		byID[sub.ID] = sub
	}
	for n := 1; n <= maxPreviousAnesthesiaOccasions; n++ {
		for _, suffix := range []string{"intervention", "year", "type"} {
			q, ok := byID[fmt.Sprintf("previous_anesthesia_%d_%s", n, suffix)]
			require.Truef(t, ok, "missing occasion %d %s", n, suffix)
			require.NotNil(t, q.ConditionalOn)
			assert.Equal(t, "previous_anesthesia_count", q.ConditionalOn.QuestionID)
			// occasion n is shown for any declared count of n or more
			assert.Len(t, q.ConditionalOn.Values, maxPreviousAnesthesiaOccasions-n+1)
			assert.Equal(t, fmt.Sprintf("%d", n), q.ConditionalOn.Values[0])
		}
	}
}

func TestSectionsPreserveDeclarationOrder(t *testing.T) {
	sections := Sections(PreAnesthesiaQuestions)
	require.NotEmpty(t, sections)
	assert.Equal(t, "Antecedentes Anestésicos", sections[0])
	assert.Contains(t, sections, "Salud Cardiovascular")
	assert.Contains(t, sections, "Información Pediátrica")

	evalSections := Sections(DoctorEvaluationQuestions)
	assert.Equal(t, "Datos del Paciente", evalSections[0])
	assert.Contains(t, evalSections, "Indicadores de Riesgo")
}

func TestUnknownAnswerKeys(t *testing.T) {
	answers := map[string]interface{}{
		"hypertension":           "yes",
		"smoking_daily_quantity": 10,
		"not_a_real_question":    true,
	}
	unknown := UnknownAnswerKeys(PreAnesthesiaQuestions, answers)
	assert.Equal(t, []string{"not_a_real_question"}, unknown)

	assert.Empty(t, UnknownAnswerKeys(PreAnesthesiaQuestions, map[string]interface{}{}))
}
