package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-scheduler/internal/pkg/jwt"
	"salon-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxClientIDKey = "client_id"
	ctxVerifiedKey = "client_verified"
	ctxRoleKey     = "client_role"
)

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
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
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxClientIDKey, claims.ClientID)
		c.Set(ctxVerifiedKey, claims.Verified)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"client_id": claims.ClientID.String(),
			"role":      claims.Role,
		})
		c.Next()
	}
}

// GetPrincipal returns the authenticated client of the request. Must be
// used behind RequireAuth.
func GetPrincipal(c *gin.Context) (commands.Principal, bool) {
	rawID, exists := c.Get(ctxClientIDKey)
	if !exists {
		return commands.Principal{}, false
	}
	id, ok := rawID.(uuid.UUID)
	if !ok {
		return commands.Principal{}, false
	}

	verified := false
	if rawVerified, exists := c.Get(ctxVerifiedKey); exists {
		verified, _ = rawVerified.(bool)
	}

	return commands.Principal{ClientID: id, Verified: verified}, true
}

func GetClientID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	return p.ClientID, ok
}
