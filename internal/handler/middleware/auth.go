package middleware

import (
	"net/http"

	"rental-admin-api/internal/handler/httperr"
	"rental-admin-api/internal/pkg/cookie"
	"rental-admin-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxUIDKey   = "session_uid"
	ctxEmailKey = "session_email"
)

type AuthMiddleware struct {
	auth usecase.AuthUseCase
}

func NewAuthMiddleware(auth usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireSession authorizes the request from the session cookie. A missing
// cookie and an invalid token both answer 401; the distinction stays in the
// server log only.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		id, err := m.auth.VerifySession(c.Request.Context(), token)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized")
			return
		}

		c.Set(ctxUIDKey, id.UID)
		c.Set(ctxEmailKey, id.Email)
		c.Next()
	}
}

// GetSessionIdentity returns the verified identity set by RequireSession.
func GetSessionIdentity(c *gin.Context) (usecase.Identity, bool) {
	uid, exists := c.Get(ctxUIDKey)
	if !exists {
		return usecase.Identity{}, false
	}
	uidStr, ok := uid.(string)
	if !ok {
		return usecase.Identity{}, false
	}
	email, _ := c.Get(ctxEmailKey)
	emailStr, _ := email.(string)
	return usecase.Identity{UID: uidStr, Email: emailStr}, true
}
