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

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
}

func NewContactHandler(contactUseCase usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

// @Summary List contact submissions
// @Description All submissions, newest first
// @Tags contacts
// @Produce json
// @Success 200 {array} resdto.ContactResponse
// @Failure 401 {object} httperr.Response
// @Router /api/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromContacts(contacts))
}

// @Summary Submit contact form
// @Description Public contact form; requires firstname, lastname, email and message
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitContactRequest true "Contact form"
// @Success 200 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /api/contacts [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	id, err := h.contactUseCase.Submit(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.Created(id))
}
