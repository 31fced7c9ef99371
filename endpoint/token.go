package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// ResolveFormToken resolves a form link token to its record and patient.
// The token is the patient's only credential: possession grants access to
// exactly the one record it was minted for.
func ResolveFormToken(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Token is required",
			Err: fmt.Errorf("empty form link token"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var record model.Record
	err := db.Where("form_link_token = ?", token).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Record not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	var patient model.Patient
	if err := db.First(&patient, record.PatientID).Error; err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, gin.H{"record": record, "patient": patient})
}
