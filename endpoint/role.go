package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// AssignRole grants a role to a user. Assignment is not idempotent: the
// exact (user, role) pair may exist only once and a duplicate is a 400.
func AssignRole(c *gin.Context) {
	var req model.AssignRoleRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if !model.ValidRole(req.Role) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid role",
			Err: fmt.Errorf("unknown role %q", req.Role),
		})
		return
	}

	var user model.User
	err := db.First(&user, req.UserID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "User not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	var existing model.UserRole
	err = db.Where("user_id = ? AND role = ?", req.UserID, req.Role).First(&existing).Error
	if err == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Role already assigned",
			Err: fmt.Errorf("user %d already has role %s", req.UserID, req.Role),
		})
		return
	}
	if err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	userRole := model.UserRole{UserID: req.UserID, Role: req.Role}
	if err := db.Create(&userRole).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to assign role", Err: err})
		return
	}

	util.CallSuccessCreated(c, userRole)
}

// GetUserRoles lists the role assignments for a user. An unknown user
// simply yields an empty list.
func GetUserRoles(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var roles []model.UserRole
	if err := db.Where("user_id = ?", userID).Order("id").Find(&roles).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list roles", Err: err})
		return
	}

	util.CallSuccessOK(c, roles)
}

// CheckUserRole answers whether a user holds a role; never errors for
// unknown users, they just don't hold it.
func CheckUserRole(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	role := c.Query("role")
	if !model.ValidRole(role) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid role",
			Err: fmt.Errorf("unknown role %q", role),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hasRole, err := model.UserHasRole(db, userID, role)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	util.CallSuccessOK(c, gin.H{"user_id": userID, "role": role, "has_role": hasRole})
}

// RemoveRole deletes a role assignment row by its id.
func RemoveRole(c *gin.Context) {
	roleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var userRole model.UserRole
	err := db.First(&userRole, roleID).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Role assignment not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if err := db.Delete(&userRole).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to remove role", Err: err})
		return
	}

	util.CallSuccessMessage(c, "Role removed", nil)
}
