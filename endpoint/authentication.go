package endpoint

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
	"github.com/dandrevielma/visoria-anesthesic-backend/middleware"
	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

const sessionLifetime = 24 * time.Hour

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"rivas@clinic.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Token  string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID uint     `json:"user_id" example:"1"`
	Name   string   `json:"name" example:"Dr. Rivas"`
	Roles  []string `json:"roles"`
}

// Login godoc
// @Summary      Staff login
// @Description  Authenticate a staff user with email and password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} LoginResponse "Login successful"
// @Failure      400 {object} object "Invalid request payload or credentials"
// @Failure      500 {object} object "Server error"
// @Router       /api/auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var user model.User
	err := db.Where("email = ?", req.Email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid email or password",
			Err: fmt.Errorf("user not found"),
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	hashed := util.HashPassword(req.Password)
	if subtle.ConstantTimeCompare([]byte(hashed), []byte(user.Password)) != 1 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid email or password",
			Err: fmt.Errorf("invalid password for %s", req.Email),
		})
		return
	}

	expiresAt := time.Now().Add(sessionLifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":   user.Email,
		"user_id": user.ID,
		"exp":     expiresAt.Unix(),
	})
	tokenString, err := token.SignedString(util.GetJWTSecretByte())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Could not generate token", Err: err})
		return
	}

	session := model.Session{
		UserID:       user.ID,
		SessionToken: tokenString,
		ExpiresAt:    expiresAt,
		ClientIP:     c.ClientIP(),
		Browser:      c.Request.UserAgent(),
	}
	if err := db.Create(&session).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record session", Err: err})
		return
	}

	// Mirror the session in Redis, best-effort.
	if rdb := config.GetRedisClient(); rdb != nil {
		exp := time.Until(session.ExpiresAt)
		_ = rdb.Set(context.Background(), fmt.Sprintf("session:%s", tokenString), session.UserID, exp).Err()
		_ = util.AddSessionToUserSet(session.UserID, tokenString)
	}

	var assignments []model.UserRole
	_ = db.Where("user_id = ?", user.ID).Order("id").Find(&assignments).Error
	roles := make([]string, 0, len(assignments))
	for _, a := range assignments {
		roles = append(roles, a.Role)
	}

	util.CallSuccessOK(c, LoginResponse{
		Token:  tokenString,
		UserID: user.ID,
		Name:   user.Name,
		Roles:  roles,
	})
}

// Logout godoc
// @Summary      Staff logout
// @Description  Invalidate the caller's session token
// @Tags         Authentication
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} object "Logout successful"
// @Failure      400 {object} object "Session not found"
// @Failure      401 {object} object "Session token not provided"
// @Router       /api/auth/logout [delete]
func Logout(c *gin.Context) {
	token := middleware.SessionTokenFromRequest(c)
	if token == "" {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Session token not provided",
			Err: fmt.Errorf("session token not provided"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var session model.Session
	err := db.Where("session_token = ?", token).First(&session).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{Msg: "Session not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if err := db.Delete(&session).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to invalidate session", Err: err})
		return
	}

	if rdb := config.GetRedisClient(); rdb != nil {
		_ = rdb.Del(context.Background(), fmt.Sprintf("session:%s", token)).Err()
		_ = util.RemoveSessionTokenFromUserSet(session.UserID, token)
	}

	util.CallSuccessMessage(c, "Logout successful", nil)
}
