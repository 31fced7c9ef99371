package endpoint

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/forms"
	"github.com/dandrevielma/visoria-anesthesic-backend/middleware"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// GetDoctorEvaluationQuestions serves the static evaluation schema.
func GetDoctorEvaluationQuestions(c *gin.Context) {
	util.CallSuccessOK(c, gin.H{"questions": forms.DoctorEvaluationQuestions})
}

// GetDoctorEvaluation returns the stored evaluation for a record.
func GetDoctorEvaluation(c *gin.Context) {
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

	var evaluation model.DoctorEvaluation
	err := db.Where("record_id = ?", recordID).First(&evaluation).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Doctor evaluation not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, evaluation)
}

// resolveDoctorID decides which doctor is credited for an evaluation.
// The chain runs until a candidate is found: the record's assigned
// doctor, the requesting session's user, the first user holding the
// doctor role, then any user at all.
func resolveDoctorID(c *gin.Context, db *gorm.DB, record model.Record) (uint, error) {
	if record.AssignedDoctorID != nil && *record.AssignedDoctorID != 0 {
		return *record.AssignedDoctorID, nil
	}

	if userID, ok := middleware.GetUserID(c); ok && userID != 0 {
		return userID, nil
	}

	var role model.UserRole
	err := db.Where("role = ?", model.RoleDoctor).Order("id").First(&role).Error
	if err == nil {
		return role.UserID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	var user model.User
	err = db.Order("id").First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("no users found")
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// SubmitDoctorEvaluation upserts the evaluation payload for a record.
func SubmitDoctorEvaluation(c *gin.Context) {
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

	data, err := json.Marshal(req.Answers)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid answers payload", Err: err})
		return
	}

	// An omitted flag saves a draft.
	isDraft := true
	if req.IsDraft != nil {
		isDraft = *req.IsDraft
	}

	var evaluation model.DoctorEvaluation
	err = db.Where("record_id = ?", record.ID).First(&evaluation).Error
	created := err == gorm.ErrRecordNotFound
	if err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	// The credited doctor is decided once, when the evaluation is
	// created. Later saves keep it.
	if created {
		doctorID, err := resolveDoctorID(c, db, record)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "no users found", Err: err})
			return
		}
		evaluation.DoctorID = doctorID
	}

	evaluation.RecordID = record.ID
	evaluation.EvaluationData = data
	evaluation.IsDraft = isDraft
	if !isDraft && evaluation.CompletedAt == nil {
		now := time.Now()
		evaluation.CompletedAt = &now
	}

	if err := db.Save(&evaluation).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save doctor evaluation", Err: err})
		return
	}

	origin := originOf(c)
	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityEvaluationSubmitted,
		NewValue:  gin.H{"is_draft": isDraft, "doctor_id": evaluation.DoctorID},
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	if created {
		util.CallSuccessCreated(c, evaluation)
		return
	}
	util.CallSuccessOK(c, evaluation)
}

type ContentRequest struct {
	Content string `json:"content" example:"Plan: general anesthesia, standard monitoring."`
}

// GetMedicalReport returns the report text for a record.
func GetMedicalReport(c *gin.Context) {
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

	var report model.MedicalReport
	err := db.Where("record_id = ?", recordID).First(&report).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Medical report not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, report)
}

// SaveMedicalReport upserts the report text. Writing a report for a
// sedation record assigns the record to the requesting doctor, taking
// it over from any previous assignee.
func SaveMedicalReport(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ContentRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	if req.Content == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "content is required",
			Err: fmt.Errorf("empty report content"),
		})
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

	var report model.MedicalReport
	err := db.Where("record_id = ?", record.ID).First(&report).Error
	created := err == gorm.ErrRecordNotFound
	if err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	report.RecordID = record.ID
	report.Content = req.Content
	if err := db.Save(&report).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save medical report", Err: err})
		return
	}

	if record.Type == model.RecordTypeSedation {
		if userID := sessionUserPtr(c); userID != nil {
			_ = db.Model(&record).Update("assigned_doctor_id", *userID).Error
		}
	}

	if created {
		util.CallSuccessCreated(c, report)
		return
	}
	util.CallSuccessOK(c, report)
}

// GetRecipe returns the prescription text for a record.
func GetRecipe(c *gin.Context) {
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

	var recipe model.Recipe
	err := db.Where("record_id = ?", recordID).First(&recipe).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Recipe not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, recipe)
}

// SaveRecipe upserts the prescription text for a record.
func SaveRecipe(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ContentRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	if req.Content == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "content is required",
			Err: fmt.Errorf("empty recipe content"),
		})
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

	var recipe model.Recipe
	err := db.Where("record_id = ?", record.ID).First(&recipe).Error
	created := err == gorm.ErrRecordNotFound
	if err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	recipe.RecordID = record.ID
	recipe.Content = req.Content
	if err := db.Save(&recipe).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save recipe", Err: err})
		return
	}

	if created {
		util.CallSuccessCreated(c, recipe)
		return
	}
	util.CallSuccessOK(c, recipe)
}
