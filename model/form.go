package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatientRecordForm holds the patient questionnaire answers for one record.
// Answers are stored as a whole JSON map keyed by question id; every save
// replaces the previous map.
type PatientRecordForm struct {
	gorm.Model
	RecordID    uint           `json:"record_id" gorm:"uniqueIndex;not null"`
	Answers     datatypes.JSON `json:"answers" gorm:"type:json"`
	IsDraft     bool           `json:"is_draft"`
	CompletedAt *time.Time     `json:"completed_at"`
	IPAddress   string         `json:"ip_address" gorm:"size:45"`
	UserAgent   string         `json:"user_agent" gorm:"size:512"`
}

// DoctorEvaluation holds the doctor's medical evaluation for one record.
type DoctorEvaluation struct {
	gorm.Model
	RecordID       uint           `json:"record_id" gorm:"uniqueIndex;not null"`
	DoctorID       uint           `json:"doctor_id" gorm:"index;not null"`
	EvaluationData datatypes.JSON `json:"evaluation_data" gorm:"type:json"`
	IsDraft        bool           `json:"is_draft"`
	CompletedAt    *time.Time     `json:"completed_at"`
}

// SubmitFormRequest is the shared payload for questionnaire and
// evaluation submissions. An omitted isDraft saves a draft.
// @Description Form submission with answers keyed by question id
type SubmitFormRequest struct {
	Answers map[string]interface{} `json:"answers"`
	IsDraft *bool                  `json:"isDraft,omitempty"`
}
