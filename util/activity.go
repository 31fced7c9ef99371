package util

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityEvent represents one audit-trail entry to be recorded.
type ActivityEvent struct {
	RecordID  *uint
	UserID    *uint
	Action    string
	OldValue  interface{}
	NewValue  interface{}
	IP        string
	UserAgent string
}

var activityLogger *log.Logger
var activityDB *gorm.DB

// SetActivityLoggerDB sets the gorm DB instance used by the activity
// logger. Call this during application startup after DB initialization.
func SetActivityLoggerDB(db *gorm.DB) {
	activityDB = db
}

func init() {
	activityLogger = log.New(os.Stdout, "[ACTIVITY] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}

// LogActivity records an audit-trail event. Best-effort: failures are
// logged and never propagated to the request that produced the event.
func LogActivity(event ActivityEvent) {
	activityLogger.Printf("Action=%s IP=%s", sanitizeLogValue(event.Action), sanitizeLogValue(event.IP))

	if activityDB == nil {
		return
	}

	entry := model.ActivityLog{
		RecordID:  event.RecordID,
		UserID:    event.UserID,
		Action:    event.Action,
		OldValue:  toJSON(event.OldValue),
		NewValue:  toJSON(event.NewValue),
		IPAddress: sanitizeLogValue(event.IP),
		UserAgent: sanitizeLogValue(event.UserAgent),
	}
	if err := activityDB.Create(&entry).Error; err != nil {
		activityLogger.Printf("Failed to persist activity event: %v", err)
	}
}
