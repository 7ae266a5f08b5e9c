package middleware

import (
	"context"
	"strings"

	"roamsafe/models"
	"roamsafe/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserLoader is the slice of the user store the middleware needs.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type AuthMiddleware struct {
	jwtService *utils.JWTService
	users      UserLoader
}

func NewAuthMiddleware(jwtService *utils.JWTService, users UserLoader) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// RequireAuth validates the bearer token and loads the account. Handlers
// downstream read the user id from the "userID" context key.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := am.extractToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "Authentication token required")
			c.Abort()
			return
		}

		claims, err := am.jwtService.ValidateToken(token)
		if err != nil {
			logrus.Warnf("Invalid token: %v", err)
			utils.UnauthorizedResponse(c, "Invalid authentication token")
			c.Abort()
			return
		}

		// The account must still exist and be active; tokens outlive
		// deactivation otherwise.
		user, err := am.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			utils.UnauthorizedResponse(c, "Account not found or deactivated")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("user", user)
		c.Next()
	}
}

func (am *AuthMiddleware) extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
