package bootstrap

import (
	"salon-booking-api/internal/infra/gateway"
	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewSMSGateway,
			fx.As(new(usecase.SMSGateway)),
		),
		fx.Annotate(
			NewEmailGateway,
			fx.As(new(usecase.EmailGateway)),
		),
	),
)

func NewSMSGateway(cfg config.Config) *gateway.TwilioSender {
	return gateway.NewTwilioSender(cfg.SMS)
}

func NewEmailGateway(cfg config.Config) *gateway.SMTPSender {
	return gateway.NewSMTPSender(cfg.Contact)
}
