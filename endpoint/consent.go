package endpoint

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// GetConsent returns the consent state for a record. The acceptance flag
// is always present; the consent row appears once the patient has signed.
func GetConsent(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	record, ok := fetchRecordOrRespond(c, db, recordID)
	if !ok {
		return
	}

	body := gin.H{
		"record_id":        record.ID,
		"consent_accepted": record.ConsentAccepted,
		"consent":          nil,
	}
	var consent model.Consent
	if err := db.Where("record_id = ?", record.ID).First(&consent).Error; err == nil {
		body["consent"] = consent
	}

	util.CallSuccessOK(c, body)
}

// AcceptConsent records the single informed-consent event for a record.
// Consent is one-way: a second acceptance is rejected with 409 rather
// than silently absorbed, so each record carries exactly one consent.
func AcceptConsent(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.AcceptConsentRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	record, ok := fetchRecordOrRespond(c, db, recordID)
	if !ok {
		return
	}

	if record.ConsentAccepted {
		util.CallConflictError(c, util.APIErrorParams{
			Msg: "Consent already accepted",
			Err: fmt.Errorf("record %d consent already accepted", record.ID),
		})
		return
	}
	var existing model.Consent
	if err := db.Where("record_id = ? AND is_accepted = ?", record.ID, true).First(&existing).Error; err == nil {
		util.CallConflictError(c, util.APIErrorParams{
			Msg: "Consent already accepted",
			Err: fmt.Errorf("record %d has consent row %d", record.ID, existing.ID),
		})
		return
	}

	origin := originOf(c)
	now := time.Now()
	consent := model.Consent{
		RecordID:        record.ID,
		IsAccepted:      true,
		ConsentText:     req.ConsentText,
		PatientName:     req.PatientName,
		PatientIDNumber: req.PatientIDNumber,
		SignatureData:   req.SignatureData,
		SignedAt:        &now,
		IPAddress:       origin.IP,
		UserAgent:       origin.Agent,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&consent).Error; err != nil {
			return err
		}
		return tx.Model(&record).Update("consent_accepted", true).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record consent", Err: err})
		return
	}

	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityConsentAccepted,
		NewValue:  gin.H{"signed_at": now},
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	util.CallSuccessCreated(c, consent)
}
