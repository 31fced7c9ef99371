package endpoint

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

type CreatePatientRequest struct {
	IdentificationNumber string `json:"identification_number" example:"V-12345678"`
	FirstName            string `json:"first_name" example:"Maria"`
	LastName             string `json:"last_name" example:"Gonzalez"`
	Email                string `json:"email,omitempty" example:"maria@example.com"`
	Phone                string `json:"phone,omitempty" example:"+584121234567"`
	DateOfBirth          string `json:"date_of_birth,omitempty" example:"1985-04-23"`
}

// CreatePatient godoc
// @Summary      Create a patient
// @Description  Register a new patient identity. Identification numbers are unique.
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body CreatePatientRequest true "Patient information"
// @Success      201 {object} model.Patient "Patient created"
// @Failure      400 {object} object "Missing fields or duplicate identification number"
// @Failure      500 {object} object "Server error"
// @Router       /api/patients [post]
func CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if req.IdentificationNumber == "" || req.FirstName == "" || req.LastName == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "identification_number, first_name and last_name are required",
			Err: fmt.Errorf("missing required patient fields"),
		})
		return
	}

	var existing model.Patient
	err := db.Where("identification_number = ?", req.IdentificationNumber).First(&existing).Error
	if err == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Identification number already exists",
			Err: fmt.Errorf("patient %d already holds %s", existing.ID, req.IdentificationNumber),
		})
		return
	}
	if err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	patient := model.Patient{
		IdentificationNumber: req.IdentificationNumber,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		DateOfBirth:          req.DateOfBirth,
	}
	if err := db.Create(&patient).Error; err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Failed to create patient", Err: err})
		return
	}

	util.CallSuccessCreated(c, patient)
}

// ListPatients godoc
// @Summary      List patients
// @Description  Get a paginated patient list with optional keyword search
// @Tags         Patient
// @Produce      json
// @Security     SessionToken
// @Param        limit query int false "Limit number of results"
// @Param        offset query int false "Offset for pagination"
// @Param        search query string false "Match against name or identification number"
// @Success      200 {array} model.Patient "Patients retrieved"
// @Router       /api/patients [get]
func ListPatients(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := db.Model(&model.Patient{}).Order("created_at DESC").Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if search := c.Query("search"); search != "" {
		kw := "%" + search + "%"
		query = query.Where("identification_number LIKE ? OR first_name LIKE ? OR last_name LIKE ?", kw, kw, kw)
	}

	var patients []model.Patient
	if err := query.Find(&patients).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list patients", Err: err})
		return
	}

	util.CallSuccessOK(c, patients)
}

// GetPatient returns a single patient by id.
func GetPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var patient model.Patient
	err := db.First(&patient, patientID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, patient)
}

// GetPatientByIdentification looks a patient up by identification number,
// the front desk's natural key.
func GetPatientByIdentification(c *gin.Context) {
	idNumber := c.Param("idNumber")
	if idNumber == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Identification number is required",
			Err: fmt.Errorf("empty identification number"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var patient model.Patient
	err := db.Where("identification_number = ?", idNumber).First(&patient).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, patient)
}

// UpdatePatient applies a partial update; only provided fields change.
func UpdatePatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdatePatientRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var patient model.Patient
	err := db.First(&patient, patientID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if req.IdentificationNumber != "" && req.IdentificationNumber != patient.IdentificationNumber {
		var existing model.Patient
		err := db.Where("identification_number = ? AND id <> ?", req.IdentificationNumber, patient.ID).First(&existing).Error
		if err == nil {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Identification number already exists",
				Err: fmt.Errorf("patient %d already holds %s", existing.ID, req.IdentificationNumber),
			})
			return
		}
		if err != gorm.ErrRecordNotFound {
			util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
			return
		}
		patient.IdentificationNumber = req.IdentificationNumber
	}
	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		patient.DateOfBirth = *req.DateOfBirth
	}

	if err := db.Save(&patient).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update patient", Err: err})
		return
	}

	util.CallSuccessOK(c, patient)
}

// DeletePatient removes a patient. Blocked while any record references
// the patient so clinical history is never orphaned.
func DeletePatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var patient model.Patient
	err := db.First(&patient, patientID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	var recordCount int64
	if err := db.Model(&model.Record{}).Where("patient_id = ?", patient.ID).Count(&recordCount).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if recordCount > 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Cannot delete a patient with existing records",
			Err: fmt.Errorf("patient %d has %d records", patient.ID, recordCount),
		})
		return
	}

	if err := db.Delete(&patient).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete patient", Err: err})
		return
	}

	util.CallSuccessMessage(c, "Patient deleted", nil)
}
