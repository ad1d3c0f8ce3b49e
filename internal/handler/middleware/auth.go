package middleware

import (
	"net/http"
	"strings"

	"salon-booking-api/internal/handler/httperr"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminUserKey = "admin_user"

var errMissingToken = errs.New("authorization header has no bearer token")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Missing token")
			return
		}

		username, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxAdminUserKey, username)
		c.Next()
	}
}

// GetAdminUser returns the authenticated admin username from context.
func GetAdminUser(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxAdminUserKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	return username, ok
}
