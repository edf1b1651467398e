package api

import (
	"errors"
	"net/http"

	reqdto "rental-admin-api/internal/handler/dto/request"
	resdto "rental-admin-api/internal/handler/dto/response"
	"rental-admin-api/internal/handler/httperr"
	"rental-admin-api/internal/handler/middleware"
	"rental-admin-api/internal/pkg/config"
	"rental-admin-api/internal/pkg/cookie"
	"rental-admin-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cookieCfg,
	}
}

// @Summary Admin login
// @Description Verify an externally issued ID token and start a cookie session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	_, err := h.authUseCase.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid token")
		case errors.Is(err, usecase.ErrNotAdmin):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not an admin account")
		case errors.Is(err, usecase.ErrIdentityUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Identity service not configured")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	// The cookie carries the verified token itself; every privileged request
	// re-verifies it, so no server-side session state exists.
	cookie.SetSessionCookie(c, h.cookieCfg, req.IDToken)
	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.OKResponse
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Current identity
// @Description Return the verified identity behind the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /api/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.GetSessionIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNoSession, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, resdto.FromIdentity(id))
}
