package api

import (
	"net/http"

	reqdto "salon-booking-api/internal/handler/dto/request"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/handler/httperr"
	"salon-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
}

func NewContactHandler(contactUseCase usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{contactUseCase: contactUseCase}
}

// @Summary Send a contact-form message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact form"
// @Success 200 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Name, email, and message are required")
		return
	}

	if err := h.contactUseCase.SendMessage(c.Request.Context(), req.ToParams()); err != nil {
		// Delivery detail stays server-side; callers get a generic failure.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send message. Please try again or contact us directly.")
		return
	}

	c.JSON(http.StatusOK, resdto.ContactResponse{Message: "Thank you for your message. We'll get back to you soon!"})
}
