package endpoint

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// CreateRecord godoc
// @Summary      Create a consultation record
// @Description  Open a new record for a patient, allocating a sequential record number and a shareable form link token
// @Tags         Record
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body model.CreateRecordRequest true "Record information"
// @Success      201 {object} object "Record created with form link"
// @Failure      400 {object} object "Invalid record type"
// @Failure      404 {object} object "Patient not found"
// @Router       /api/records [post]
func CreateRecord(c *gin.Context) {
	var req model.CreateRecordRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if !model.ValidRecordType(req.Type) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid record type",
			Err: fmt.Errorf("unknown record type %q", req.Type),
		})
		return
	}

	var patient model.Patient
	err := db.First(&patient, req.PatientID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	token, err := util.NewFormLinkToken()
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to generate form link token", Err: err})
		return
	}

	createdBy := uint(0)
	if userID := sessionUserPtr(c); userID != nil {
		createdBy = *userID
	}

	record := model.Record{
		PatientID:        patient.ID,
		Type:             req.Type,
		Status:           model.RecordStatusPending,
		AssignedDoctorID: req.AssignedDoctorID,
		CreatedBy:        createdBy,
		ScheduledDate:    req.ScheduledDate,
		Notes:            req.Notes,
		FormLinkToken:    token,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		number, err := model.NextRecordNumber(tx)
		if err != nil {
			return err
		}
		record.RecordNumber = number
		return tx.Create(&record).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create record", Err: err})
		return
	}

	origin := originOf(c)
	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityRecordCreated,
		NewValue:  record,
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	formLink := util.BuildFormLink(config.LoadConfig(), record.FormLinkToken)
	util.SendFormLinkEmail(db, util.FormLinkEmailParams{
		Record:   record,
		Patient:  patient,
		FormLink: formLink,
		SentBy:   sessionUserPtr(c),
	})

	util.CallSuccessCreated(c, gin.H{
		"record":    record,
		"form_link": formLink,
	})
}

// ListRecords godoc
// @Summary      List records
// @Description  Newest-first record page joined with patient identity and assigned doctor name
// @Tags         Record
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        patient_id query int false "Filter by patient"
// @Param        assigned_doctor_id query int false "Filter by assigned doctor"
// @Param        limit query int false "Limit number of results"
// @Param        offset query int false "Offset for pagination"
// @Success      200 {array} model.ListRecordResponse "Records retrieved"
// @Router       /api/records [get]
func ListRecords(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := db.Model(&model.Record{}).
		Select("records.*, "+
			"patients.first_name AS patient_first_name, "+
			"patients.last_name AS patient_last_name, "+
			"patients.identification_number AS patient_identification, "+
			"patients.date_of_birth AS patient_date_of_birth, "+
			"users.name AS assigned_doctor_name").
		Joins("JOIN patients ON patients.id = records.patient_id").
		Joins("LEFT JOIN users ON users.id = records.assigned_doctor_id").
		Order("records.created_at DESC").
		Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}

	if status := c.Query("status"); status != "" {
		if !model.ValidRecordStatus(status) {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid record status",
				Err: fmt.Errorf("unknown record status %q", status),
			})
			return
		}
		query = query.Where("records.status = ?", status)
	}
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("records.patient_id = ?", patientID)
	}
	if doctorID := c.Query("assigned_doctor_id"); doctorID != "" {
		query = query.Where("records.assigned_doctor_id = ?", doctorID)
	}

	var records []model.ListRecordResponse
	if err := query.Scan(&records).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list records", Err: err})
		return
	}

	util.CallSuccessOK(c, records)
}

// GetRecord returns the full detail payload: the record with its patient,
// questionnaire, consent, evaluation and live files.
func GetRecord(c *gin.Context) {
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

	var patient model.Patient
	if err := db.First(&patient, record.PatientID).Error; err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	detail := gin.H{
		"record":            record,
		"patient":           patient,
		"patient_form":      nil,
		"consent":           nil,
		"doctor_evaluation": nil,
		"files":             []model.PatientFile{},
	}

	var form model.PatientRecordForm
	if err := db.Where("record_id = ?", record.ID).First(&form).Error; err == nil {
		detail["patient_form"] = form
	}
	var consent model.Consent
	if err := db.Where("record_id = ?", record.ID).First(&consent).Error; err == nil {
		detail["consent"] = consent
	}
	var evaluation model.DoctorEvaluation
	if err := db.Where("record_id = ?", record.ID).First(&evaluation).Error; err == nil {
		detail["doctor_evaluation"] = evaluation
	}
	var files []model.PatientFile
	if err := db.Where("record_id = ?", record.ID).Order("created_at DESC").Find(&files).Error; err == nil {
		detail["files"] = files
	}

	util.CallSuccessOK(c, detail)
}

// UpdateRecord applies a partial update; only provided fields change.
func UpdateRecord(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateRecordRequest
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
	previous := record

	if req.Status != nil {
		if !model.ValidRecordStatus(*req.Status) {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid record status",
				Err: fmt.Errorf("unknown record status %q", *req.Status),
			})
			return
		}
		record.Status = *req.Status
	}
	if req.AssignedDoctorID != nil {
		record.AssignedDoctorID = req.AssignedDoctorID
	}
	if req.ScheduledDate != nil {
		record.ScheduledDate = *req.ScheduledDate
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if err := db.Save(&record).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update record", Err: err})
		return
	}

	origin := originOf(c)
	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityRecordUpdated,
		OldValue:  previous,
		NewValue:  record,
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	util.CallSuccessOK(c, record)
}

// DeleteRecord removes a record and its dependent rows. Refused once the
// patient questionnaire or an evaluation exists, so submitted clinical
// data cannot be destroyed through this endpoint.
func DeleteRecord(c *gin.Context) {
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

	var formCount, evaluationCount int64
	if err := db.Model(&model.PatientRecordForm{}).Where("record_id = ?", record.ID).Count(&formCount).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if err := db.Model(&model.DoctorEvaluation{}).Where("record_id = ?", record.ID).Count(&evaluationCount).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if formCount > 0 || evaluationCount > 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Cannot delete a record with submitted clinical data",
			Err: fmt.Errorf("record %d has form=%d evaluation=%d", record.ID, formCount, evaluationCount),
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", record.ID).Delete(&model.Consent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", record.ID).Delete(&model.MedicalReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", record.ID).Delete(&model.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", record.ID).Delete(&model.PatientFile{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&record).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete record", Err: err})
		return
	}

	origin := originOf(c)
	util.LogActivity(util.ActivityEvent{
		RecordID:  &record.ID,
		UserID:    sessionUserPtr(c),
		Action:    model.ActivityRecordDeleted,
		OldValue:  record,
		IP:        origin.IP,
		UserAgent: origin.Agent,
	})

	util.CallSuccessMessage(c, "Record deleted", nil)
}
