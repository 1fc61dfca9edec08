package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-meet/roomadmin/internal/dto/response"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	AdminUserKey        = "admin_user"
	ClaimsKey           = "claims"
)

// Auth creates the admin session middleware. Every administrative
// operation behind it can assume a verified operator identity.
func Auth(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Unauthorized(c, "missing authentication token")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Unauthorized(c, "invalid authentication format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		if token == "" {
			response.Unauthorized(c, "token must not be empty")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			if err == utils.ErrExpiredToken {
				response.Unauthorized(c, "token has expired")
			} else {
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(AdminUserKey, claims.Username)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// GetAdminUser retrieves the acting administrator's username from context
func GetAdminUser(c *gin.Context) string {
	username, exists := c.Get(AdminUserKey)
	if !exists {
		return ""
	}
	return username.(string)
}

// GetClaims retrieves the session claims from context
func GetClaims(c *gin.Context) *utils.Claims {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*utils.Claims)
}
