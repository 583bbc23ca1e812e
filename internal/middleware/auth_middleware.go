package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// AuthMiddleware for authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// Swagger UI sometimes sends the token as a query parameter
		if authHeader == "" {
			authHeader = c.Query("token")
		}

		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}

// CurrentUserEmail returns the email claim JWTAuth stored on the context
func CurrentUserEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ContextEmail)
	return email, email != ""
}
