package components

import (
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/pkg/jwt"
	"salon-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewApprovalUseCase,
		NewAuthUseCase,
		NewContactUseCase,
		usecase.NewAppointmentUseCase,
		func(a usecase.AuthUseCase) usecase.TokenValidator { return a },
	),
)

func NewApprovalUseCase(repo usecase.AppointmentRepository, sms usecase.SMSGateway, cfg config.Config, clk clock.Clock) usecase.ApprovalUseCase {
	return usecase.NewApprovalUseCase(repo, sms, cfg.SMS, clk)
}

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Admin, jwtService)
}

func NewContactUseCase(email usecase.EmailGateway, cfg config.Config) usecase.ContactUseCase {
	return usecase.NewContactUseCase(email, cfg.Contact)
}
