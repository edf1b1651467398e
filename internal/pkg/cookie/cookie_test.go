//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-admin-api/internal/pkg/config"
	"rental-admin-api/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performWithHandler(t *testing.T, handler gin.HandlerFunc, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSetSessionCookie(t *testing.T) {
	cfg := config.CookieConfig{SessionAge: 2 * time.Hour}

	w := performWithHandler(t, func(c *gin.Context) {
		cookie.SetSessionCookie(c, cfg, "the-token")
		c.Status(http.StatusOK)
	})

	got := findCookie(w, cookie.SessionCookieName)
	require.NotNil(t, got)
	assert.Equal(t, "the-token", got.Value)
	assert.Equal(t, "/", got.Path)
	assert.True(t, got.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, got.SameSite)
	assert.Equal(t, int((2 * time.Hour).Seconds()), got.MaxAge)
}

func TestSetSessionCookieDefaultAge(t *testing.T) {
	w := performWithHandler(t, func(c *gin.Context) {
		cookie.SetSessionCookie(c, config.CookieConfig{}, "the-token")
		c.Status(http.StatusOK)
	})

	got := findCookie(w, cookie.SessionCookieName)
	require.NotNil(t, got)
	assert.Equal(t, int(cookie.DefaultSessionAge.Seconds()), got.MaxAge)
}

func TestClearSessionCookie(t *testing.T) {
	w := performWithHandler(t, func(c *gin.Context) {
		cookie.ClearSessionCookie(c, config.CookieConfig{})
		c.Status(http.StatusOK)
	})

	got := findCookie(w, cookie.SessionCookieName)
	require.NotNil(t, got)
	assert.Empty(t, got.Value)
	assert.Negative(t, got.MaxAge)
}

func TestGetSessionToken(t *testing.T) {
	t.Run("returns the cookie value", func(t *testing.T) {
		w := performWithHandler(t, func(c *gin.Context) {
			c.String(http.StatusOK, cookie.GetSessionToken(c))
		}, &http.Cookie{Name: cookie.SessionCookieName, Value: "the-token"})

		assert.Equal(t, "the-token", w.Body.String())
	})

	t.Run("a missing cookie yields an empty token, not an error", func(t *testing.T) {
		w := performWithHandler(t, func(c *gin.Context) {
			c.String(http.StatusOK, cookie.GetSessionToken(c))
		})

		assert.Empty(t, w.Body.String())
	})
}
