package components

import (
	"salon-booking-api/internal/infra/repository"
	"salon-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(usecase.AppointmentRepository)),
		),
	),
)
