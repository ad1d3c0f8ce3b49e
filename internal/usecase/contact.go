package usecase

import (
	"context"
	"fmt"

	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/pkg/errs"
)

var ErrEmailDelivery = errs.New("email delivery failed")

type ContactMessageParams struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactUseCase forwards the public contact form to the salon inbox.
type ContactUseCase interface {
	SendMessage(ctx context.Context, params ContactMessageParams) error
}

type contactUseCaseImpl struct {
	email      EmailGateway
	contactCfg config.ContactConfig
}

func NewContactUseCase(email EmailGateway, contactCfg config.ContactConfig) ContactUseCase {
	return &contactUseCaseImpl{
		email:      email,
		contactCfg: contactCfg,
	}
}

func (u *contactUseCaseImpl) SendMessage(ctx context.Context, params ContactMessageParams) error {
	phone := params.Phone
	if phone == "" {
		phone = "Not provided"
	}

	subject := fmt.Sprintf("New contact form submission from %s", params.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
		params.Name, params.Email, phone, params.Message,
	)

	if err := u.email.Send(ctx, u.contactCfg.ToEmail, subject, body); err != nil {
		return errs.Mark(err, ErrEmailDelivery)
	}
	return nil
}
