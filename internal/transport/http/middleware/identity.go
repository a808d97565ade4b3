package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/domain"
)

const (
	// UserHeader carries the caller's user identifier.
	UserHeader = "X-User"
	// RoleHeader carries the caller's role identifier.
	RoleHeader = "X-Role"

	identityKey = "identity"
)

// RequireIdentity extracts the trusted identity headers. Requests missing
// either header are rejected with 401 before any downstream logic runs.
func RequireIdentity(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		user := strings.TrimSpace(c.GetHeader(UserHeader))
		role := strings.TrimSpace(c.GetHeader(RoleHeader))

		if user == "" || role == "" {
			log.Error("missing user details in headers",
				zap.String("path", c.Request.URL.Path),
				zap.String("trace_id", GetTraceID(c)),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				newErrorResponse(c, "missing user details in headers"))
			return
		}

		log.Info("user authenticated",
			zap.String("user", user),
			zap.String("role", role),
		)

		c.Set(identityKey, domain.Identity{UserID: user, Role: role})

		if reqCtx := GetRequestContext(c); reqCtx != nil {
			reqCtx.UserID = user
		}

		c.Next()
	}
}

// GetIdentity retrieves the caller identity stored by RequireIdentity.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}

	identity, ok := val.(domain.Identity)
	return identity, ok
}
