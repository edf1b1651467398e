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

type BoatHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewBoatHandler(catalogUseCase usecase.CatalogUseCase) *BoatHandler {
	return &BoatHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List boats
// @Tags boats
// @Produce json
// @Success 200 {array} resdto.BoatResponse
// @Router /api/boats [get]
func (h *BoatHandler) List(c *gin.Context) {
	boats, err := h.catalogUseCase.ListBoats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoats(boats))
}

// @Summary Update boat
// @Description Merge-update only the provided fields
// @Tags boats
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateBoatRequest true "Boat patch"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/boats [put]
func (h *BoatHandler) Update(c *gin.Context) {
	var req reqdto.UpdateBoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.catalogUseCase.UpdateBoat(c.Request.Context(), req.ID, req.ToPatch()); err != nil {
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
