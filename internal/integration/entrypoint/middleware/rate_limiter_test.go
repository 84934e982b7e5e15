package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, "ratelimit:test", maxAttempts, window), mini
}

func limitedRouter(limiter *RateLimiter, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/limited", func(c *gin.Context) {
		c.Set(string(UserIDKey), userID)
		c.Next()
	}, limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return engine
}

func TestRateLimiterEnforcesLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	engine := limitedRouter(limiter, uuid.New())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
		assert.Equal(t, http.StatusCreated, rec.Code, "request %d should be allowed", i+1)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	limiter, mini := newTestLimiter(t, 1, time.Minute)
	engine := limitedRouter(limiter, uuid.New())

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Advance past the window so the counter key expires.
	mini.FastForward(2 * time.Minute)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRateLimiterTracksUsersSeparately(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)

	firstUser := limitedRouter(limiter, uuid.New())
	secondUser := limitedRouter(limiter, uuid.New())

	rec := httptest.NewRecorder()
	firstUser.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	firstUser.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	secondUser.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	assert.Equal(t, http.StatusCreated, rec.Code, "a different user has its own window")
}

func TestRateLimiterFailsOpenWhenRedisIsDown(t *testing.T) {
	limiter, mini := newTestLimiter(t, 1, time.Minute)
	engine := limitedRouter(limiter, uuid.New())

	mini.Close()

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
		assert.Equal(t, http.StatusCreated, rec.Code, "requests pass through when Redis is unavailable")
	}
}

func TestRateLimiterReset(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	engine := limitedRouter(limiter, uuid.New())

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	require.NoError(t, limiter.Reset(context.Background()))

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/limited", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
