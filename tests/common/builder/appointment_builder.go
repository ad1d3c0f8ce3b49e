//go:build unit || e2e

package builder

import (
	"time"

	domappt "salon-booking-api/internal/domain/appointment"
	reqdto "salon-booking-api/internal/handler/dto/request"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ClientName string
	Phone      string
	Service    string
	Date       string
	Time       string
	Status     domappt.Status
	CreatedAt  time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ClientName: "Jamie Lee",
		Phone:      "+15551230001",
		Service:    "Haircut",
		Date:       "2026-09-15",
		Time:       "14:30",
		Status:     domappt.StatusPending,
		CreatedAt:  time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	return domappt.New(b.ClientName, b.Phone, b.Service, b.Date, b.Time, b.CreatedAt)
}

func (b *AppointmentBuilder) BuildReadModel() *readmodel.AppointmentRM {
	return &readmodel.AppointmentRM{
		ID:         uuid.New(),
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Service:    b.Service,
		Date:       b.Date,
		Time:       b.Time,
		Status:     b.Status.String(),
		CreatedAt:  b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		Client:  b.ClientName,
		Phone:   b.Phone,
		Service: b.Service,
		Date:    b.Date,
		Time:    b.Time,
	}
}

func (b *AppointmentBuilder) BuildSubmitParams() usecase.SubmitAppointmentParams {
	return usecase.SubmitAppointmentParams{
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Service:    b.Service,
		Date:       b.Date,
		Time:       b.Time,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithClientName(name string) *AppointmentBuilder {
	b.ClientName = name
	return b
}

func (b *AppointmentBuilder) WithPhone(phone string) *AppointmentBuilder {
	b.Phone = phone
	return b
}

func (b *AppointmentBuilder) WithService(service string) *AppointmentBuilder {
	b.Service = service
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTime(timeSlot string) *AppointmentBuilder {
	b.Time = timeSlot
	return b
}

func (b *AppointmentBuilder) WithStatus(status domappt.Status) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithCreatedAt(createdAt time.Time) *AppointmentBuilder {
	b.CreatedAt = createdAt
	return b
}
