package usecase

import (
	"context"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// AppointmentRepository is the store port. Implementations translate storage
// failures into infra.RepositoryError kinds so usecases never see driver
// errors.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error)
	FindByDateTime(ctx context.Context, date, timeSlot string) (*readmodel.AppointmentRM, error)
	FindLatestPending(ctx context.Context) (*readmodel.AppointmentRM, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status appointment.Status) (*readmodel.AppointmentRM, error)
	SetNotificationSID(ctx context.Context, id uuid.UUID, sid string) error
	ListAll(ctx context.Context) ([]*readmodel.AppointmentRM, error)
	ListByDate(ctx context.Context, date string) ([]*readmodel.AppointmentRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SMSGateway sends one outbound text and returns the provider message id.
type SMSGateway interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// EmailGateway sends one outbound plain-text email.
type EmailGateway interface {
	Send(ctx context.Context, to, subject, body string) error
}
