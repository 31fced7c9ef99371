package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record types and statuses. The status enum is intentionally small:
// a record is pending until the clinical workflow finishes it.
const (
	RecordTypeSedation = "sedation"
	RecordTypeSurgical = "surgical"

	RecordStatusPending   = "pending"
	RecordStatusCompleted = "completed"
)

// Record represents one consultation/procedure episode for a patient
// @Description Consultation record with lifecycle status and patient form access token
type Record struct {
	gorm.Model
	RecordNumber     string `json:"record_number" gorm:"uniqueIndex;size:32;not null" example:"REC-2026-0001"`
	PatientID        uint   `json:"patient_id" gorm:"index;not null" example:"1"`
	Type             string `json:"type" gorm:"size:16;not null" example:"sedation"`
	Status           string `json:"status" gorm:"size:16;not null;default:pending" example:"pending"`
	AssignedDoctorID *uint  `json:"assigned_doctor_id" gorm:"index" example:"2"`
	CreatedBy        uint   `json:"created_by" example:"1"`
	ScheduledDate    string `json:"scheduled_date" example:"2026-09-15"`
	Notes            string `json:"notes" example:"Fasting since midnight"`
	FormLinkToken    string `json:"form_link_token" gorm:"uniqueIndex;size:64;not null"`
	ConsentAccepted  bool   `json:"consent_accepted" gorm:"default:false"`
}

// RecordCounter allocates sequential record numbers per calendar year.
// Incremented inside the record creation transaction so concurrent
// creates cannot hand out the same number.
type RecordCounter struct {
	gorm.Model
	Year   int `json:"year" gorm:"uniqueIndex"`
	Number int `json:"number"`
}

// NextRecordNumber reserves the next display number for a record,
// formatted as REC-YYYY-NNNN. Must be called inside a transaction.
func NextRecordNumber(tx *gorm.DB) (string, error) {
	year := time.Now().Year()

	// The row lock holds the counter until the surrounding transaction
	// commits. SQLite ignores it and serializes on the database lock.
	var counter RecordCounter
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("year = ?", year).First(&counter).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		counter = RecordCounter{Year: year, Number: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	default:
		counter.Number++
		if err := tx.Model(&counter).Update("number", counter.Number).Error; err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("REC-%d-%04d", year, counter.Number), nil
}

// ValidRecordType reports whether t is a known record type.
func ValidRecordType(t string) bool {
	return t == RecordTypeSedation || t == RecordTypeSurgical
}

// ValidRecordStatus reports whether s is a known record status.
func ValidRecordStatus(s string) bool {
	return s == RecordStatusPending || s == RecordStatusCompleted
}

// CreateRecordRequest represents a record creation payload
// @Description Record creation information
type CreateRecordRequest struct {
	PatientID        uint   `json:"patient_id" example:"1"`
	Type             string `json:"type" example:"sedation"`
	AssignedDoctorID *uint  `json:"assigned_doctor_id,omitempty" example:"2"`
	ScheduledDate    string `json:"scheduled_date,omitempty" example:"2026-09-15"`
	Notes            string `json:"notes,omitempty" example:"Fasting since midnight"`
}

// UpdateRecordRequest represents a partial record update
// @Description Record update information, only provided fields change
type UpdateRecordRequest struct {
	Status           *string `json:"status,omitempty" example:"completed"`
	AssignedDoctorID *uint   `json:"assigned_doctor_id,omitempty" example:"2"`
	ScheduledDate    *string `json:"scheduled_date,omitempty" example:"2026-09-15"`
	Notes            *string `json:"notes,omitempty" example:"Rescheduled"`
}

// ListRecordResponse represents a record list row joined with patient
// and assigned doctor identity
// @Description Record list row with patient and doctor display fields
type ListRecordResponse struct {
	Record
	PatientFirstName      string `json:"patient_first_name" gorm:"column:patient_first_name" example:"Maria"`
	PatientLastName       string `json:"patient_last_name" gorm:"column:patient_last_name" example:"Gonzalez"`
	PatientIdentification string `json:"patient_identification" gorm:"column:patient_identification" example:"V-12345678"`
	PatientDateOfBirth    string `json:"patient_date_of_birth" gorm:"column:patient_date_of_birth" example:"1985-04-23"`
	AssignedDoctorName    string `json:"assigned_doctor_name" gorm:"column:assigned_doctor_name" example:"Dr. Rivas"`
}
