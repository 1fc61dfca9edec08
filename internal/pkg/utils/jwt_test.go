package utils

import (
	"testing"
	"time"
)

func createTestManager() *JWTManager {
	return NewJWTManager(
		"test-secret-key-for-testing",
		15*time.Minute,
		7*24*time.Hour,
		"test-issuer",
	)
}

func TestJWTManager_GenerateTokenPair(t *testing.T) {
	manager := createTestManager()

	tokenPair, err := manager.GenerateTokenPair("admin")
	if err != nil {
		t.Fatalf("Failed to generate token pair: %v", err)
	}

	if tokenPair.AccessToken == "" {
		t.Error("Expected access token to be set")
	}

	if tokenPair.RefreshToken == "" {
		t.Error("Expected refresh token to be set")
	}

	if tokenPair.ExpiresAt.Before(time.Now()) {
		t.Error("Expected expiry to be in the future")
	}
}

func TestJWTManager_ValidateAccessToken(t *testing.T) {
	manager := createTestManager()

	tokenPair, _ := manager.GenerateTokenPair("admin")

	claims, err := manager.ValidateAccessToken(tokenPair.AccessToken)
	if err != nil {
		t.Fatalf("Failed to validate access token: %v", err)
	}

	if claims.Username != "admin" {
		t.Errorf("Expected username 'admin', got '%s'", claims.Username)
	}

	if claims.Type != AccessToken {
		t.Errorf("Expected token type 'access', got '%s'", claims.Type)
	}
}

func TestJWTManager_ValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	manager := createTestManager()

	tokenPair, _ := manager.GenerateTokenPair("admin")

	if _, err := manager.ValidateAccessToken(tokenPair.RefreshToken); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for refresh token, got %v", err)
	}
}

func TestJWTManager_ValidateToken_WrongSecret(t *testing.T) {
	manager := createTestManager()
	other := NewJWTManager("a-different-secret", 15*time.Minute, time.Hour, "test-issuer")

	tokenPair, _ := manager.GenerateTokenPair("admin")

	if _, err := other.ValidateToken(tokenPair.AccessToken); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTManager_ValidateToken_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, time.Hour, "test-issuer")

	tokenPair, _ := manager.GenerateTokenPair("admin")

	if _, err := manager.ValidateToken(tokenPair.AccessToken); err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if !CheckPassword("correct-horse-battery", hash) {
		t.Error("Expected password to match its hash")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("Expected wrong password to be rejected")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("short"); err != ErrPasswordTooShort {
		t.Errorf("Expected ErrPasswordTooShort, got %v", err)
	}
}
