package model

import "gorm.io/gorm"

// Roles a user can hold. A user may hold both.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// UserRole maps a user to a role. The (user_id, role) pair is unique;
// assigning the same pair twice is rejected, not upserted.
type UserRole struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_role"`
	Role   string `json:"role" gorm:"size:16;not null;uniqueIndex:idx_user_role"`
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleDoctor
}

// UserHasRole checks whether the user holds the given role. Unknown
// users simply yield false.
func UserHasRole(db *gorm.DB, userID uint, role string) (bool, error) {
	var count int64
	err := db.Model(&UserRole{}).Where("user_id = ? AND role = ?", userID, role).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignRoleRequest represents a role assignment payload
// @Description Role assignment information
type AssignRoleRequest struct {
	UserID uint   `json:"user_id" example:"1"`
	Role   string `json:"role" example:"doctor"`
}
