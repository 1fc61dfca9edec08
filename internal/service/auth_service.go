package service

import (
	"context"
	"crypto/subtle"

	"github.com/go-meet/roomadmin/internal/config"
	apperrors "github.com/go-meet/roomadmin/internal/pkg/errors"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
	"go.uber.org/zap"
)

// AuthService authenticates the single configured admin account
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
	jwtManager        *utils.JWTManager
	logger            *zap.Logger
}

func NewAuthService(cfg *config.AdminConfig, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminUsername:     cfg.Username,
		adminPasswordHash: cfg.PasswordHash,
		jwtManager:        jwtManager,
		logger:            logger,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string
	Password string
}

// Login authenticates the admin and issues a token pair. Username and
// password failures are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*utils.TokenPair, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.adminUsername)) == 1

	if !utils.CheckPassword(input.Password, s.adminPasswordHash) || !usernameOK {
		s.logger.Warn("Failed admin login attempt", zap.String("username", input.Username))
		return nil, apperrors.ErrInvalidPassword
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(s.adminUsername)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("Admin logged in", zap.String("username", s.adminUsername))

	return tokenPair, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*utils.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		if err == utils.ErrExpiredToken {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Username != s.adminUsername {
		return nil, apperrors.ErrInvalidToken
	}

	tokenPair, err := s.jwtManager.GenerateTokenPair(s.adminUsername)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	return tokenPair, nil
}
