package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity actions recorded on the audit trail.
const (
	ActivityRecordCreated       = "record_created"
	ActivityRecordUpdated       = "record_updated"
	ActivityRecordDeleted       = "record_deleted"
	ActivityFormSubmitted       = "form_submitted"
	ActivityEvaluationSubmitted = "evaluation_submitted"
	ActivityConsentAccepted     = "consent_accepted"
	ActivityFileUploaded        = "file_uploaded"
	ActivityFileDeleted         = "file_deleted"
)

// ActivityLog is the per-record audit trail. Writes are best-effort and
// never fail the request that produced them.
type ActivityLog struct {
	gorm.Model
	RecordID  *uint          `json:"record_id" gorm:"index"`
	UserID    *uint          `json:"user_id" gorm:"index"`
	Action    string         `json:"action" gorm:"size:64;not null"`
	OldValue  datatypes.JSON `json:"old_value" gorm:"type:json"`
	NewValue  datatypes.JSON `json:"new_value" gorm:"type:json"`
	IPAddress string         `json:"ip_address" gorm:"size:45"`
	UserAgent string         `json:"user_agent" gorm:"size:512"`
}
