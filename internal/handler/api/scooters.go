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

type ScooterHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewScooterHandler(catalogUseCase usecase.CatalogUseCase) *ScooterHandler {
	return &ScooterHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List scooter fleet
// @Tags scooters
// @Produce json
// @Success 200 {array} resdto.ScooterResponse
// @Router /api/scooters [get]
func (h *ScooterHandler) List(c *gin.Context) {
	scooters, err := h.catalogUseCase.ListScooters(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromScooters(scooters))
}

// @Summary Update scooter
// @Description Merge-update label and fleet quantity
// @Tags scooters
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateScooterRequest true "Scooter patch"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/scooters [put]
func (h *ScooterHandler) Update(c *gin.Context) {
	var req reqdto.UpdateScooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.catalogUseCase.UpdateScooter(c.Request.Context(), req.ID, req.ToPatch()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}
