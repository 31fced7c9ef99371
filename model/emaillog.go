package model

import (
	"time"

	"gorm.io/gorm"
)

// Email types tracked in the email log.
const (
	EmailTypeFormLink   = "form_link"
	EmailTypeReminder   = "reminder"
	EmailTypeCompletion = "completion"
	EmailTypeOther      = "other"
)

// EmailLog tracks every email sent (or attempted) for a record. Delivery
// is best-effort: failed sends land here with ErrorMessage set and never
// fail the request that triggered them.
type EmailLog struct {
	gorm.Model
	RecordID       uint       `json:"record_id" gorm:"index;not null"`
	Type           string     `json:"type" gorm:"size:16;not null"`
	RecipientEmail string     `json:"recipient_email" gorm:"not null"`
	Subject        string     `json:"subject" gorm:"not null"`
	SentBy         *uint      `json:"sent_by"`
	MessageID      string     `json:"message_id" gorm:"size:64"`
	SentAt         *time.Time `json:"sent_at"`
	ErrorMessage   string     `json:"error_message"`
}
