package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/dandrevielma/visoria-anesthesic-backend/config"
)

func newRateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(cfg))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return r
}

func TestRateLimiter_WithoutRedis(t *testing.T) {
	config.SetRedisClientForTest(nil)
	defer config.ResetRedisClientForTest()

	r := newRateLimitedRouter(RateLimitConfig{Limit: 5, Window: 15 * time.Minute})

	// Without Redis, all requests should be allowed
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "192.168.1.1:1234"
		r.ServeHTTP(w, req)

		assert.Equalf(t, http.StatusOK, w.Code, "request %d", i+1)
	}
}

func TestRateLimiter_DefaultConfig(t *testing.T) {
	config.SetRedisClientForTest(nil)
	defer config.ResetRedisClientForTest()

	r := newRateLimitedRouter(RateLimitConfig{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_UnderLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	defer config.ResetRedisClientForTest()

	key := fmt.Sprintf("ratelimit:%s:%s", "/test", "192.168.1.1")
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_LimitExceeded(t *testing.T) {
	client, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(client)
	defer config.ResetRedisClientForTest()

	key := fmt.Sprintf("ratelimit:%s:%s", "/test", "192.168.1.1")
	mock.ExpectIncr(key).SetVal(3)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestResetRateLimit_NoRedis(t *testing.T) {
	config.SetRedisClientForTest(nil)
	defer config.ResetRedisClientForTest()

	err := ResetRateLimit("192.168.1.1", "/test")
	assert.Error(t, err)
}
