package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase/readmodel"
)

var (
	ErrAppointmentValidation = errs.New("appointment validation failed")
	ErrSlotAlreadyBooked     = errs.New("slot already booked")
	ErrNoPendingAppointment  = errs.New("no pending appointment")
	ErrUnauthorizedSender    = errs.New("unauthorized webhook sender")
	ErrStoreFailure          = errs.New("appointment store failure")
)

type SubmitAppointmentParams struct {
	ClientName string
	Phone      string
	Service    string
	Date       string
	Time       string
}

type ReplyOutcome struct {
	Appointment *readmodel.AppointmentRM
	Approved    bool
}

// ApprovalUseCase is the appointment-approval workflow: a submission creates
// a pending record and prompts the salon owner by SMS; the owner's reply
// (relayed by the gateway webhook) finalizes the record and notifies the
// requester.
type ApprovalUseCase interface {
	Submit(ctx context.Context, params SubmitAppointmentParams) (*readmodel.AppointmentRM, error)
	ResolveReply(ctx context.Context, from, body string) (*ReplyOutcome, error)
}

type approvalUseCaseImpl struct {
	appointmentRepo AppointmentRepository
	sms             SMSGateway
	smsCfg          config.SMSConfig
	clock           clock.Clock
}

func NewApprovalUseCase(
	appointmentRepo AppointmentRepository,
	sms SMSGateway,
	smsCfg config.SMSConfig,
	clk clock.Clock,
) ApprovalUseCase {
	return &approvalUseCaseImpl{
		appointmentRepo: appointmentRepo,
		sms:             sms,
		smsCfg:          smsCfg,
		clock:           clk,
	}
}

// Submit validates the request, rejects an occupied (date, time) slot,
// persists the pending record and prompts the owner. A failed prompt is
// logged but never rolls back the creation.
func (u *approvalUseCaseImpl) Submit(ctx context.Context, params SubmitAppointmentParams) (*readmodel.AppointmentRM, error) {
	appt, err := appointment.New(
		params.ClientName,
		params.Phone,
		params.Service,
		params.Date,
		params.Time,
		u.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrAppointmentValidation)
	}

	if err := u.checkSlotFree(ctx, appt.Date(), appt.TimeSlot()); err != nil {
		return nil, err
	}

	id, err := u.appointmentRepo.Create(ctx, appt)
	if err != nil {
		// Unique index on (date, time_slot) backstops the pre-check under
		// concurrent submissions for the same slot.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	u.promptOwner(ctx, appt)

	created, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return created, nil
}

func (u *approvalUseCaseImpl) checkSlotFree(ctx context.Context, date, timeSlot string) error {
	_, err := u.appointmentRepo.FindByDateTime(ctx, date, timeSlot)
	if err == nil {
		return ErrSlotAlreadyBooked
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return errs.Mark(err, ErrStoreFailure)
}

func (u *approvalUseCaseImpl) promptOwner(ctx context.Context, appt *appointment.Appointment) {
	body := fmt.Sprintf(
		"New appointment request from %s (%s): %s on %s at %s. Reply YES to approve, anything else to deny.",
		appt.ClientName(), appt.Phone(), appt.Service(), appt.Date(), appt.TimeSlot(),
	)

	sid, err := u.sms.Send(ctx, u.smsCfg.OwnerNumber, body)
	if err != nil {
		slog.Warn("failed to send approval prompt to owner",
			"appointment_id", appt.ID(), "error", err.Error())
		return
	}

	if err := u.appointmentRepo.SetNotificationSID(ctx, appt.ID(), sid); err != nil {
		slog.Warn("failed to persist notification sid",
			"appointment_id", appt.ID(), "sid", sid, "error", err.Error())
	}
}

// ResolveReply handles the gateway's inbound callback. Only the configured
// owner number is accepted. The reply is matched to the most recently
// created pending appointment; there is no correlation token in a
// plain-reply SMS flow, so when several appointments are pending the newest
// one wins.
func (u *approvalUseCaseImpl) ResolveReply(ctx context.Context, from, body string) (*ReplyOutcome, error) {
	if from != u.smsCfg.OwnerNumber {
		return nil, ErrUnauthorizedSender
	}

	pending, err := u.appointmentRepo.FindLatestPending(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoPendingAppointment
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	status := appointment.DecideFromReply(body)

	resolved, err := u.appointmentRepo.UpdateStatus(ctx, pending.ID, status)
	if err != nil {
		// The pending row can be resolved concurrently between the read and
		// the guarded update; report it the same as no pending appointment.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoPendingAppointment
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	u.notifyRequester(ctx, resolved, status)

	return &ReplyOutcome{
		Appointment: resolved,
		Approved:    status == appointment.StatusApproved,
	}, nil
}

func (u *approvalUseCaseImpl) notifyRequester(ctx context.Context, rm *readmodel.AppointmentRM, status appointment.Status) {
	var body string
	if status == appointment.StatusApproved {
		body = fmt.Sprintf(
			"Hi %s, your %s appointment on %s at %s is confirmed. See you then!",
			rm.ClientName, rm.Service, rm.Date, rm.Time,
		)
	} else {
		body = fmt.Sprintf(
			"Hi %s, unfortunately we can't take your %s appointment on %s at %s. Please book another time.",
			rm.ClientName, rm.Service, rm.Date, rm.Time,
		)
	}

	if _, err := u.sms.Send(ctx, rm.Phone, body); err != nil {
		slog.Warn("failed to notify requester of outcome",
			"appointment_id", rm.ID, "status", status.String(), "error", err.Error())
	}
}
