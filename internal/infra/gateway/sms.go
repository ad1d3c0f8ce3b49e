package gateway

import (
	"context"

	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends outbound SMS through the Twilio REST API. It implements
// usecase.SMSGateway.
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender(cfg config.SMSConfig) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{
		client:     client,
		fromNumber: cfg.FromNumber,
	}
}

// Send delivers one message and returns the provider-assigned SID.
// The Twilio client has no context plumbing; ctx is accepted to satisfy the
// gateway port and for future replacement providers.
func (s *TwilioSender) Send(_ context.Context, to, body string) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", errs.Wrap(err, "twilio send failed")
	}
	if resp.Sid == nil {
		return "", errs.New("twilio response missing message sid")
	}
	return *resp.Sid, nil
}
