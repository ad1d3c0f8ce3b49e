package request

import (
	"salon-booking-api/internal/usecase"
)

type CreateAppointmentRequest struct {
	Client  string `json:"client" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
	Time    string `json:"time" binding:"required,datetime=15:04"`
}

func (r CreateAppointmentRequest) ToParams() usecase.SubmitAppointmentParams {
	return usecase.SubmitAppointmentParams{
		ClientName: r.Client,
		Phone:      r.Phone,
		Service:    r.Service,
		Date:       r.Date,
		Time:       r.Time,
	}
}

// SMSWebhookRequest is the gateway callback payload (Twilio posts
// form-encoded fields). Body may legitimately be empty; an empty reply
// denies.
type SMSWebhookRequest struct {
	Body string `form:"Body"`
	From string `form:"From" binding:"required"`
}
