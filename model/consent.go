package model

import (
	"time"

	"gorm.io/gorm"
)

// Consent captures the single informed-consent event for a record.
// Acceptance is one-way: once accepted it is never cleared, and the
// flag is mirrored onto Record.ConsentAccepted.
type Consent struct {
	gorm.Model
	RecordID        uint       `json:"record_id" gorm:"uniqueIndex;not null"`
	IsAccepted      bool       `json:"is_accepted" gorm:"not null"`
	ConsentText     string     `json:"consent_text" gorm:"type:text"`
	PatientName     string     `json:"patient_name"`
	PatientIDNumber string     `json:"patient_id_number" gorm:"size:64"`
	SignatureData   string     `json:"signature_data" gorm:"type:text"`
	SignedAt        *time.Time `json:"signed_at"`
	IPAddress       string     `json:"ip_address" gorm:"size:45"`
	UserAgent       string     `json:"user_agent" gorm:"size:512"`
}

// AcceptConsentRequest represents a consent acceptance payload
// @Description Consent acceptance with optional signature snapshot
type AcceptConsentRequest struct {
	ConsentText     string `json:"consent_text,omitempty"`
	PatientName     string `json:"patient_name,omitempty"`
	PatientIDNumber string `json:"patient_id_number,omitempty"`
	SignatureData   string `json:"signature_data,omitempty"`
}
