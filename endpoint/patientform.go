package endpoint

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/forms"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// GetPatientFormQuestions serves the static pre-anesthesia questionnaire
// schema. Required and conditional rules are advisory rendering hints;
// the server never rejects a submission over them.
func GetPatientFormQuestions(c *gin.Context) {
	util.CallSuccessOK(c, gin.H{"questions": forms.PreAnesthesiaQuestions})
}

// GetPatientForm returns the stored questionnaire answers for a record.
func GetPatientForm(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	if _, ok := fetchRecordOrRespond(c, db, recordID); !ok {
		return
	}

	var form model.PatientRecordForm
	err := db.Where("record_id = ?", recordID).First(&form).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient form not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, form)
}

// SubmitPatientForm upserts the questionnaire answers for a record.
// POST creates the form on first submission and overwrites it afterwards.
func SubmitPatientForm(c *gin.Context) {
	savePatientForm(c, false)
}

// UpdatePatientForm updates an existing questionnaire; 404 when the
// record has no form yet.
func UpdatePatientForm(c *gin.Context) {
	savePatientForm(c, true)
}

func savePatientForm(c *gin.Context, mustExist bool) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.SubmitFormRequest
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

	answers, err := json.Marshal(req.Answers)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid answers payload", Err: err})
		return
	}

	// An omitted flag saves a draft.
	isDraft := true
	if req.IsDraft != nil {
		isDraft = *req.IsDraft
	}

	origin := originOf(c)

	var form model.PatientRecordForm
	err = db.Where("record_id = ?", record.ID).First(&form).Error
	created := err == gorm.ErrRecordNotFound
	if err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if created && mustExist {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient form not found", Err: err})
		return
	}

	// Whole-map overwrite: omitted question ids are dropped, the client
	// resends the full answer map on every save.
	form.RecordID = record.ID
	form.Answers = answers
	form.IsDraft = isDraft
	form.IPAddress = origin.IP
	form.UserAgent = origin.Agent
	if !isDraft && form.CompletedAt == nil {
		now := time.Now()
		form.CompletedAt = &now
	}

	if err := db.Save(&form).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save patient form", Err: err})
		return
	}

	if !isDraft {
		finalizePatientSubmission(db, &record)
	}

	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityFormSubmitted,
		NewValue:  gin.H{"is_draft": isDraft},
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	if created {
		util.CallSuccessCreated(c, form)
		return
	}
	util.CallSuccessOK(c, form)
}

// finalizePatientSubmission runs the completion side effects: the
// best-effort patient notification and, for sedation records only, the
// automatic status flip. Surgical records stay pending until a doctor
// closes them.
func finalizePatientSubmission(db *gorm.DB, record *model.Record) {
	var patient model.Patient
	if err := db.First(&patient, record.PatientID).Error; err == nil {
		util.SendQuestionnaireCompletedEmail(db, util.CompletionEmailParams{Record: *record, Patient: patient})
	}

	if record.Type == model.RecordTypeSedation && record.Status != model.RecordStatusCompleted {
		record.Status = model.RecordStatusCompleted
		if err := db.Model(record).Update("status", model.RecordStatusCompleted).Error; err != nil {
			record.Status = model.RecordStatusPending
		}
	}
}
