package usecase

import (
	"context"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrAppointmentNotFound = errs.New("appointment not found")

// AppointmentUseCase covers the plain CRUD surface around the approval
// workflow: public per-date listing, the privileged full listing and the
// admin delete.
type AppointmentUseCase interface {
	ListAll(ctx context.Context) ([]*readmodel.AppointmentRM, error)
	ListByDate(ctx context.Context, date string) ([]*readmodel.AppointmentRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	appointmentRepo AppointmentRepository
}

func NewAppointmentUseCase(appointmentRepo AppointmentRepository) AppointmentUseCase {
	return &appointmentUseCaseImpl{
		appointmentRepo: appointmentRepo,
	}
}

// ListAll returns every appointment ordered by date asc, time asc.
func (u *appointmentUseCaseImpl) ListAll(ctx context.Context) ([]*readmodel.AppointmentRM, error) {
	result, err := u.appointmentRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return result, nil
}

func (u *appointmentUseCaseImpl) ListByDate(ctx context.Context, date string) ([]*readmodel.AppointmentRM, error) {
	result, err := u.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return result, nil
}

func (u *appointmentUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}
