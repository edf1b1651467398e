package api

import (
	"net/http"
	"strconv"

	reqdto "rental-admin-api/internal/handler/dto/request"
	resdto "rental-admin-api/internal/handler/dto/response"
	"rental-admin-api/internal/handler/httperr"
	"rental-admin-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	pricingUseCase usecase.PricingUseCase
}

func NewPriceHandler(pricingUseCase usecase.PricingUseCase) *PriceHandler {
	return &PriceHandler{
		pricingUseCase: pricingUseCase,
	}
}

// @Summary List prices
// @Description Scooter price matrix; scooter, season and days filters combine with AND
// @Tags prices
// @Produce json
// @Param scooter query string false "Scooter id"
// @Param season query string false "Season key"
// @Param days query int false "Rental duration in days"
// @Success 200 {array} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/prices [get]
func (h *PriceHandler) List(c *gin.Context) {
	filter := usecase.PriceFilter{
		ScooterID: c.Query("scooter"),
		Season:    c.Query("season"),
	}
	if daysStr := c.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "days must be an integer")
			return
		}
		filter.Days = &days
	}

	prices, err := h.pricingUseCase.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPrices(prices, usecase.PriceDocID))
}

// @Summary Upsert prices
// @Description Batch upsert price cells; malformed items are skipped
// @Tags prices
// @Accept json
// @Produce json
// @Param request body reqdto.UpsertPricesRequest true "Price items (single object or array)"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/prices [put]
func (h *PriceHandler) Upsert(c *gin.Context) {
	var req reqdto.UpsertPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.pricingUseCase.Upsert(c.Request.Context(), req.ToReadModel()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}
