package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func setupRateLimitTest(requests int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	limiter := NewInMemoryRateLimiter(rate.Limit(float64(requests)/60.0), requests)
	config := &RateLimitConfig{
		Requests: requests,
		Window:   time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return "test:" + c.ClientIP()
		},
	}

	router := gin.New()
	router.Use(RateLimitWithConfig(limiter, config))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	router := setupRateLimitTest(5)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Request %d: expected status 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitTest(3)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 over the limit, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header on a limited response")
	}
}

func TestInMemoryRateLimiter_SeparateKeys(t *testing.T) {
	limiter := NewInMemoryRateLimiter(rate.Limit(1.0/60.0), 1)

	allowed, err := limiter.Allow(context.Background(), "key-a")
	if err != nil || !allowed {
		t.Fatalf("Expected first request allowed for key-a, got %v, %v", allowed, err)
	}

	allowed, _ = limiter.Allow(context.Background(), "key-a")
	if allowed {
		t.Error("Expected key-a to be exhausted")
	}

	allowed, _ = limiter.Allow(context.Background(), "key-b")
	if !allowed {
		t.Error("Expected key-b to have its own budget")
	}
}
