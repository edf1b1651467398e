package api

import (
	"errors"
	"net/http"

	reqdto "rental-admin-api/internal/handler/dto/request"
	resdto "rental-admin-api/internal/handler/dto/response"
	"rental-admin-api/internal/handler/httperr"
	"rental-admin-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationUseCase usecase.LocationUseCase
}

func NewLocationHandler(locationUseCase usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
	}
}

// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /api/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocations(locations))
}

// @Summary Upsert locations
// @Description Merge-update one location or a batch of them
// @Tags locations
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertLocationsRequest true "Location patches (single object or {items})"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/locations [put]
func (h *LocationHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.locationUseCase.Upsert(c.Request.Context(), req.ToItems()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Create location
// @Description Create a location under a slugified id
// @Tags locations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLocationRequest true "New location"
// @Success 200 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.locationUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		case errors.Is(err, usecase.ErrSlugExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Location with this slug already exists")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.Created(id))
}

// @Summary Delete location
// @Tags locations
// @Produce json
// @Param id query string true "Location id"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/locations [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	id := c.Query("id")

	if err := h.locationUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "id is required")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}
