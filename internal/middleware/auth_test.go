package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *utils.JWTManager) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	jwtManager := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour, "test")

	router := gin.New()
	router.Use(Auth(jwtManager))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": GetAdminUser(c)})
	})

	return router, jwtManager
}

func TestAuth_ValidToken(t *testing.T) {
	router, jwtManager := setupAuthTest(t)

	pair, err := jwtManager.GenerateTokenPair("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	router, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestAuth_BadFormat(t *testing.T) {
	router, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	router, jwtManager := setupAuthTest(t)

	pair, err := jwtManager.GenerateTokenPair("admin")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for refresh token, got %d", w.Code)
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	router, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
}
