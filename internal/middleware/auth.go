package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fuzumoe/shoplist-api/internal/logger"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// Context keys set for downstream handlers on an authenticated request.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
	ContextTokenKey  = "token"
)

// RequireAuth returns middleware that resolves the Authorization header and
// enforces the outcome: 403 for anonymous requests, 401 with the outcome's
// stable message for invalid/expired/revoked tokens, and the resolved user
// stored in the context otherwise.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := auth.Resolve(c.GetHeader("Authorization"))
		if err != nil {
			logger.Log.WithFields(logrus.Fields{
				"path":  c.FullPath(),
				"error": err.Error(),
			}).Error("token resolution failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "could not verify token"})
			return
		}

		switch res.State {
		case service.StateAuthenticated:
			c.Set(ContextUserKey, res.User)
			c.Set(ContextUserIDKey, res.User.ID)
			c.Set(ContextTokenKey, res.Token)
			c.Next()
		case service.StateAnonymous:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": res.Message})
		default:
			// StateInvalid and StateLoggedOut carry their own messages.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": res.Message})
		}
	}
}
