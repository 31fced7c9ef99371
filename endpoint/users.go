package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

// UserWithRoles is the admin listing row: one user and every role they hold.
type UserWithRoles struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// ListUsers returns every staff account with its mapped roles. Admin only.
func ListUsers(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var users []model.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list users", Err: err})
		return
	}

	var assignments []model.UserRole
	if err := db.Order("id").Find(&assignments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list roles", Err: err})
		return
	}
	rolesByUser := make(map[uint][]string)
	for _, a := range assignments {
		rolesByUser[a.UserID] = append(rolesByUser[a.UserID], a.Role)
	}

	result := make([]UserWithRoles, 0, len(users))
	for _, u := range users {
		roles := rolesByUser[u.ID]
		if roles == nil {
			roles = []string{}
		}
		result = append(result, UserWithRoles{ID: u.ID, Name: u.Name, Email: u.Email, Roles: roles})
	}

	util.CallSuccessOK(c, result)
}

type CreateUserRequest struct {
	Name     string `json:"name" example:"Dr. Rivas"`
	Email    string `json:"email" example:"rivas@clinic.com"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role" example:"doctor"`
}

// CreateUser creates a staff account or syncs an existing one by email:
// the name is refreshed and the requested role granted if missing. Unlike
// the role endpoint, syncing an already-granted role is not an error here.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if req.Name == "" || req.Email == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "name and email are required",
			Err: fmt.Errorf("missing required user fields"),
		})
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
	err := db.Where("email = ?", req.Email).First(&user).Error
	created := err == gorm.ErrRecordNotFound
	if err != nil && err != gorm.ErrRecordNotFound {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if created {
		if req.Password == "" {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "password is required for a new user",
				Err: fmt.Errorf("empty password for %s", req.Email),
			})
			return
		}
		user = model.User{Name: req.Name, Email: req.Email, Password: util.HashPassword(req.Password)}
		if err := db.Create(&user).Error; err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create user", Err: err})
			return
		}
	} else if user.Name != req.Name {
		user.Name = req.Name
		if err := db.Save(&user).Error; err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update user", Err: err})
			return
		}
	}

	hasRole, err := model.UserHasRole(db, user.ID, req.Role)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	if !hasRole {
		if err := db.Create(&model.UserRole{UserID: user.ID, Role: req.Role}).Error; err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to assign role", Err: err})
			return
		}
	}

	var assignments []model.UserRole
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&assignments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}
	roles := make([]string, 0, len(assignments))
	for _, a := range assignments {
		roles = append(roles, a.Role)
	}

	body := UserWithRoles{ID: user.ID, Name: user.Name, Email: user.Email, Roles: roles}
	if created {
		util.CallSuccessCreated(c, body)
		return
	}
	util.CallSuccessOK(c, body)
}
