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

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary List bookings
// @Description All bookings, newest first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.bookingUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(list))
}

// @Summary Create booking
// @Description Admit the candidate against availability rules, then persist it
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.bookingUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		case errors.Is(err, usecase.ErrConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Selected dates are no longer available")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.Created(id))
}
