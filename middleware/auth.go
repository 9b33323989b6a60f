// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tgechev/gonotes/auth"
	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/token"
	"github.com/tgechev/gonotes/util"
)

// unauthorized aborts the request with the one generic body every
// authentication or authorization failure produces. Callers must not leak
// the failure reason to the client.
func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	c.Abort()
}

// Authentication verifies the Bearer token on every request, rejects revoked
// tokens and attaches the decoded identity to the request context. Missing
// header, malformed or expired token and revoked token are indistinguishable
// to the caller.
func Authentication(tokens *token.Service, revoked *auth.RevocationList) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			logger.Warn("No Authorization header provided", zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			logger.Warn("Malformed Authorization header", zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		identity, err := tokens.Verify(parts[1])
		if err != nil {
			logger.Warn("Token verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		isRevoked, err := revoked.IsRevoked(c, identity.UserID, identity.ExpiresAt)
		if err != nil {
			logger.Error("Revocation check failed",
				zap.Error(err),
				zap.String("userID", identity.UserID))
			unauthorized(c)
			return
		}
		if isRevoked {
			logger.Warn("Rejected revoked token", zap.String("userID", identity.UserID))
			unauthorized(c)
			return
		}

		util.SetIdentity(c, identity)
		c.Next()
	}
}

// Authorize returns a middleware that admits only identities whose role is
// in allowedRoles. It must run after Authentication and fails closed when no
// identity was attached.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		identity, ok := util.CurrentIdentity(c)
		if !ok {
			logger.Warn("Authorization invoked without authenticated identity",
				zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		if _, ok := allowed[identity.Role]; !ok {
			logger.Warn("Insufficient role",
				zap.String("userID", identity.UserID),
				zap.String("role", identity.Role),
				zap.String("path", c.Request.URL.Path))
			unauthorized(c)
			return
		}

		c.Next()
	}
}
