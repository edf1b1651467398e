package cookie

import (
	"net/http"
	"time"

	"rental-admin-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the verified ID token between requests. The value
// is opaque to this service; only the external identity provider can mint it.
const SessionCookieName = "fw_session"

const DefaultSessionAge = 5 * 24 * time.Hour

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)

	age := cfg.SessionAge
	if age <= 0 {
		age = DefaultSessionAge
	}

	c.SetCookie(
		SessionCookieName,
		token,
		int(age.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)

	c.SetCookie(
		SessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

// GetSessionToken extracts the session token from the request cookie. A
// missing cookie is not an error; it simply means "no session".
func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}
