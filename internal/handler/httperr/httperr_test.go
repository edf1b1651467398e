//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-admin-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cause := errors.New("connection pool exhausted")
	var recorded []*gin.Error

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Next()
		recorded = c.Errors
	})
	router.GET("/boom", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	// The cause must be recorded on the context so the request log carries it.
	require.Len(t, recorded, 1)
	assert.ErrorIs(t, recorded[0].Err, cause)
	assert.True(t, recorded[0].IsType(gin.ErrorTypePublic))

	resp, ok := recorded[0].Meta.(httperr.Response)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	assert.Equal(t, "Internal server error", resp.Error)
}

func TestAbortWithErrorNilCausePanics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad request")
	})
}
