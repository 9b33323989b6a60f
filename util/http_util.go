// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/token"
)

// identityKey is the gin context key the authentication middleware stores
// the decoded identity under.
const identityKey = "currentUser"

// RespondWithData writes the success envelope.
func RespondWithData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

// RespondWithMessage writes a message-only envelope.
func RespondWithMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RespondWithError logs the full error server-side and writes only the
// generic message to the client.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"message": message})
}

// SetIdentity attaches the authenticated identity to the request context.
func SetIdentity(c *gin.Context, identity *token.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the identity attached by the authentication
// middleware, or false when the request never passed through it.
func CurrentIdentity(c *gin.Context) (*token.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*token.Identity)
	return identity, ok
}
