package forms

// QuestionType enumerates the input kinds a questionnaire renders.
type QuestionType string

const (
	TypeYesNo        QuestionType = "yes-no"
	TypeYesNoDetails QuestionType = "yes-no-details"
	TypeText         QuestionType = "text"
	TypeTextarea     QuestionType = "textarea"
	TypeNumber       QuestionType = "number"
	TypeDate         QuestionType = "date"
	TypeSelect       QuestionType = "select"
	TypeMultiple     QuestionType = "multiple"
	TypeRadio        QuestionType = "radio"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Validation struct {
	Min     *int   `json:"min,omitempty"`
	Max     *int   `json:"max,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// Condition shows a question only when another answer matches one of Values.
type Condition struct {
	QuestionID string   `json:"questionId"`
	Values     []string `json:"value"`
}

type Question struct {
	ID            string       `json:"id"`
	Section       string       `json:"section"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Required      bool         `json:"required"`
	Options       []Option     `json:"options,omitempty"`
	Placeholder   string       `json:"placeholder,omitempty"`
	Validation    *Validation  `json:"validation,omitempty"`
	ConditionalOn *Condition   `json:"conditionalOn,omitempty"`
	SubQuestions  []Question   `json:"subQuestions,omitempty"`
}

func intPtr(n int) *int { return &n }

// Sections returns the distinct section names in first-seen order.
func Sections(questions []Question) []string {
	seen := make(map[string]bool)
	var sections []string
	for _, q := range questions {
		if !seen[q.Section] {
			seen[q.Section] = true
			sections = append(sections, q.Section)
		}
	}
	return sections
}

// QuestionIDs collects every question id, including nested sub-questions.
func QuestionIDs(questions []Question) []string {
	var ids []string
	var walk func([]Question)
	walk = func(qs []Question) {
		for _, q := range qs {
			ids = append(ids, q.ID)
			walk(q.SubQuestions)
		}
	}
	walk(questions)
	return ids
}

// UnknownAnswerKeys reports answer keys that do not match any question id.
// Callers treat the result as advisory, submissions are never rejected for it.
func UnknownAnswerKeys(questions []Question, answers map[string]interface{}) []string {
	known := make(map[string]bool)
	for _, id := range QuestionIDs(questions) {
		known[id] = true
	}
	var unknown []string
	for key := range answers {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	return unknown
}
