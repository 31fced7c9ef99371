package endpoint

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/middleware"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: fmt.Errorf("db is nil")})
		return nil, false
	}
	return db, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid %s", name),
			Err: fmt.Errorf("cannot parse %s %q", name, raw),
		})
		return 0, false
	}
	return uint(id), true
}

func fetchRecordOrRespond(c *gin.Context, db *gorm.DB, recordID uint) (model.Record, bool) {
	var record model.Record
	err := db.First(&record, recordID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Record not found", Err: err})
		return model.Record{}, false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return model.Record{}, false
	}
	return record, true
}

// requestOrigin captures the caller identity fields stamped onto forms,
// consents and activity rows.
type requestOrigin struct {
	IP    string
	Agent string
}

func originOf(c *gin.Context) requestOrigin {
	return requestOrigin{IP: c.ClientIP(), Agent: c.Request.UserAgent()}
}

func sessionUserPtr(c *gin.Context) *uint {
	if userID, ok := middleware.GetUserID(c); ok && userID != 0 {
		return &userID
	}
	return nil
}
