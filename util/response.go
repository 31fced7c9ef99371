package util

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIErrorParams groups the client-facing message and the underlying
// error. The message goes on the wire as {"error": msg}; the underlying
// error is only logged.
type APIErrorParams struct {
	Msg string
	Err error
}

func callError(c *gin.Context, status int, params APIErrorParams) {
	if params.Err != nil {
		log.Printf("%s %s -> %d: %s: %v", c.Request.Method, c.Request.URL.Path, status, params.Msg, params.Err)
	}
	c.JSON(status, gin.H{"error": params.Msg})
}

// CallUserError returns a 400 validation error.
func CallUserError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusBadRequest, params)
}

// CallErrorNotFound returns a 404 for an absent entity.
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusNotFound, params)
}

// CallConflictError returns a 409, used for one-way state that was
// already set (consent re-acceptance).
func CallConflictError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusConflict, params)
}

// CallUserNotAuthorized returns a 401 for missing or invalid sessions.
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusUnauthorized, params)
}

// CallForbidden returns a 403 for an authenticated user lacking the
// required role.
func CallForbidden(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusForbidden, params)
}

// CallTooManyRequests returns a 429 when a client exceeds a rate limit.
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusTooManyRequests, params)
}

// CallServerError returns a 500 for unexpected faults.
func CallServerError(c *gin.Context, params APIErrorParams) {
	callError(c, http.StatusInternalServerError, params)
}

// CallSuccessOK returns 200 echoing the affected row(s) or payload.
func CallSuccessOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CallSuccessCreated returns 201 echoing the created row.
func CallSuccessCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// CallSuccessMessage returns 200 with a {"message": ...} confirmation.
func CallSuccessMessage(c *gin.Context, msg string, extra gin.H) {
	body := gin.H{"message": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
