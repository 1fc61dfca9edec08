package response

import (
	"time"

	"github.com/go-meet/roomadmin/internal/pkg/utils"
)

// TokenResponse represents token response
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// NewTokenResponse creates a token response from a token pair
func NewTokenResponse(pair *utils.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
		TokenType:    "Bearer",
	}
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Username string         `json:"username"`
	Token    *TokenResponse `json:"token"`
}
