package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/platform/logger"
	"github.com/funopi/funopi-backend/internal/services"
)

// ContextAdminUsername is where RequireAdmin stores the verified identity.
const ContextAdminUsername = "admin_username"

type AuthMiddleware struct {
	log            *logger.Logger
	sessionService services.SessionService
}

func NewAuthMiddleware(log *logger.Logger, sessionService services.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		log:            log.With("middleware", "AuthMiddleware"),
		sessionService: sessionService,
	}
}

// RequireAdmin gates every admin mutation and read behind the session
// cookie. Missing, garbled, expired, and wrong-identity tokens all look the
// same to the caller: 401.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(services.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, ok := am.sessionService.Verify(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(ContextAdminUsername, claims.Username)
		c.Next()
	}
}
