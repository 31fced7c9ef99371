package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each HTTP request with its status and duration.
// Domain-level events (record changes, form submissions) are written to
// the activity log by the handlers themselves; this is transport-level only.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		userID, _ := GetUserID(c)
		if userID != 0 {
			log.Printf("%s %s -> %d (%dms) user=%d ip=%s",
				c.Request.Method, c.Request.URL.Path, status, duration.Milliseconds(), userID, c.ClientIP())
			return
		}
		log.Printf("%s %s -> %d (%dms) ip=%s",
			c.Request.Method, c.Request.URL.Path, status, duration.Milliseconds(), c.ClientIP())
	}
}
