package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// GetRecordActivity returns the audit trail for a record, newest first.
func GetRecordActivity(c *gin.Context) {
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

	var entries []model.ActivityLog
	if err := db.Where("record_id = ?", recordID).Order("created_at DESC").Limit(100).Find(&entries).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list activity", Err: err})
		return
	}

	util.CallSuccessOK(c, entries)
}
