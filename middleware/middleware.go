package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/dandrevielma/visoria-anesthesic-backend/model"
	"github.com/dandrevielma/visoria-anesthesic-backend/util"
)

const (
	contextDBKey     = "db"
	contextUserIDKey = "user_id"
)

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, OPTIONS, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization, session-token")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// DatabaseMiddleware stores the shared gorm handle in the request context.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextDBKey, db)
		c.Next()
	}
}

// GetDB retrieves the database handle placed by DatabaseMiddleware.
// Returns nil when the middleware did not run.
func GetDB(c *gin.Context) *gorm.DB {
	value, exists := c.Get(contextDBKey)
	if !exists {
		return nil
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// GetUserID returns the authenticated user id set by ValidateSessionToken.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// SessionTokenFromRequest reads the token from the session-token header,
// falling back to an Authorization bearer token.
func SessionTokenFromRequest(c *gin.Context) string {
	if token := c.GetHeader("session-token"); token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// ValidateSessionToken authenticates the request. The token must be a JWT
// signed with the configured secret and must exist as a live session row.
// On success the session's user id is stored in the request context.
func ValidateSessionToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionTokenFromRequest(c)
		if token == "" {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Session token not provided",
				Err: fmt.Errorf("session token not provided"),
			})
			c.Abort()
			return
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return util.GetJWTSecretByte(), nil
		})
		if err != nil || !parsed.Valid {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid session token",
				Err: err,
			})
			c.Abort()
			return
		}

		db := GetDB(c)
		if db == nil {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Database connection not available",
				Err: fmt.Errorf("db is nil"),
			})
			c.Abort()
			return
		}

		var session model.Session
		err = db.Where("session_token = ? AND expires_at > ?", token, time.Now()).First(&session).Error
		if err != nil {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Session not found",
				Err: err,
			})
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, session.UserID)
		c.Next()
	}
}

// OptionalSession resolves the session like ValidateSessionToken but lets
// anonymous requests through. Public token-bearing routes use it so the
// evaluation handlers can credit a logged-in doctor when one is present.
func OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionTokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return util.GetJWTSecretByte(), nil
		})
		if err != nil || !parsed.Valid {
			c.Next()
			return
		}

		db := GetDB(c)
		if db == nil {
			c.Next()
			return
		}

		var session model.Session
		if err := db.Where("session_token = ? AND expires_at > ?", token, time.Now()).First(&session).Error; err == nil {
			c.Set(contextUserIDKey, session.UserID)
		}
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated user
// holds the given role. Must run after ValidateSessionToken.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Session token not provided",
				Err: fmt.Errorf("no authenticated user in context"),
			})
			c.Abort()
			return
		}

		db := GetDB(c)
		if db == nil {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Database connection not available",
				Err: fmt.Errorf("db is nil"),
			})
			c.Abort()
			return
		}

		hasRole, err := model.UserHasRole(db, userID, role)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
			c.Abort()
			return
		}
		if !hasRole {
			util.CallForbidden(c, util.APIErrorParams{
				Msg: "Insufficient permissions",
				Err: fmt.Errorf("user %d lacks role %s", userID, role),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
