package api

import (
	"encoding/xml"
	"errors"
	"net/http"

	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/handler/httperr"
	"salon-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// twimlResponse is the minimal TwiML document the SMS gateway expects back
// from a webhook: <Response><Message>...</Message></Response>.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}

type WebhookHandler struct {
	approvalUseCase usecase.ApprovalUseCase
}

func NewWebhookHandler(approvalUseCase usecase.ApprovalUseCase) *WebhookHandler {
	return &WebhookHandler{approvalUseCase: approvalUseCase}
}

// SMSReply handles the gateway callback fired when the owner replies to an
// approval prompt. The sender-number check inside the usecase is the only
// auth on this path; the route itself is public.
//
// @Summary SMS gateway webhook
// @Description Resolves the latest pending appointment from the owner's reply
// @Tags appointments
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param From formData string true "Sender phone number"
// @Param Body formData string false "Reply body"
// @Success 200 {string} string "TwiML acknowledgement"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/sms-webhook [post]
func (h *WebhookHandler) SMSReply(c *gin.Context) {
	var req reqdto.SMSWebhookRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing sender")
		return
	}

	outcome, err := h.approvalUseCase.ResolveReply(c.Request.Context(), req.From, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthorizedSender):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Sender not authorized")
		case errors.Is(err, usecase.ErrNoPendingAppointment):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No pending appointment")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	ack := "Denied. The client has been notified."
	if outcome.Approved {
		ack = "Approved. The client has been notified."
	}
	c.XML(http.StatusOK, twimlResponse{Message: ack})
}
