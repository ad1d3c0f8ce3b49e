//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/pkg/clock"
	"salon-booking-api/internal/pkg/config"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/tests/common/builder"
	usecasemock "salon-booking-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApprovalUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *usecasemock.MockAppointmentRepository
	mockSMS  *usecasemock.MockSMSGateway
	smsCfg   config.SMSConfig
	useCase  usecase.ApprovalUseCase
}

func (s *ApprovalUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockSMS = usecasemock.NewMockSMSGateway(s.mockCtrl)
	s.smsCfg = config.NewTestConfig().SMS

	clk := clock.NewMockClock(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	s.useCase = usecase.NewApprovalUseCase(s.mockRepo, s.mockSMS, s.smsCfg, clk)
}

func (s *ApprovalUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApprovalUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ApprovalUseCaseTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errors.New("no rows in result set"), infra.KindNotFound)
}

func (s *ApprovalUseCaseTestSuite) TestSubmit() {
	params := builder.NewAppointmentBuilder().BuildSubmitParams()

	s.Run("success: creates pending record and prompts the owner", func() {
		createdID := uuid.New()
		createdRM := builder.NewAppointmentBuilder().BuildReadModel()
		createdRM.ID = createdID

		s.mockRepo.EXPECT().FindByDateTime(gomock.Any(), params.Date, params.Time).
			Return(nil, notFoundErr()).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, appt *appointment.Appointment) (uuid.UUID, error) {
				s.Equal(params.ClientName, appt.ClientName())
				s.Equal(appointment.StatusPending, appt.Status())
				return createdID, nil
			}).Times(1)
		s.mockSMS.EXPECT().Send(gomock.Any(), s.smsCfg.OwnerNumber, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, body string) (string, error) {
				s.Contains(body, params.ClientName)
				s.Contains(body, "Reply YES to approve")
				return "SM123", nil
			}).Times(1)
		s.mockRepo.EXPECT().SetNotificationSID(gomock.Any(), gomock.Any(), "SM123").
			Return(nil).Times(1)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), createdID).
			Return(createdRM, nil).Times(1)

		result, err := s.useCase.Submit(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(createdID, result.ID)
		s.Equal("pending", result.Status)
	})

	s.Run("error: rejects invalid appointment data without touching the repo", func() {
		invalid := params
		invalid.Date = "not-a-date"

		_, err := s.useCase.Submit(context.Background(), invalid)
		s.ErrorIs(err, usecase.ErrAppointmentValidation)
	})

	s.Run("error: rejects an occupied slot on the pre-check", func() {
		existing := builder.NewAppointmentBuilder().BuildReadModel()
		s.mockRepo.EXPECT().FindByDateTime(gomock.Any(), params.Date, params.Time).
			Return(existing, nil).Times(1)

		_, err := s.useCase.Submit(context.Background(), params)
		s.ErrorIs(err, usecase.ErrSlotAlreadyBooked)
	})

	s.Run("error: maps a unique violation on insert to slot conflict", func() {
		s.mockRepo.EXPECT().FindByDateTime(gomock.Any(), params.Date, params.Time).
			Return(nil, notFoundErr()).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert appointment", errors.New("duplicate key"), infra.KindDuplicateKey)).Times(1)

		_, err := s.useCase.Submit(context.Background(), params)
		s.ErrorIs(err, usecase.ErrSlotAlreadyBooked)
	})

	s.Run("success: a failed owner prompt never rolls back the creation", func() {
		createdID := uuid.New()
		createdRM := builder.NewAppointmentBuilder().BuildReadModel()
		createdRM.ID = createdID

		s.mockRepo.EXPECT().FindByDateTime(gomock.Any(), params.Date, params.Time).
			Return(nil, notFoundErr()).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(createdID, nil).Times(1)
		s.mockSMS.EXPECT().Send(gomock.Any(), s.smsCfg.OwnerNumber, gomock.Any()).
			Return("", errors.New("twilio unreachable")).Times(1)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), createdID).
			Return(createdRM, nil).Times(1)

		result, err := s.useCase.Submit(context.Background(), params)
		s.Require().NoError(err)
		s.Equal("pending", result.Status)
	})

	s.Run("success: a failed sid persist is tolerated", func() {
		createdID := uuid.New()
		createdRM := builder.NewAppointmentBuilder().BuildReadModel()
		createdRM.ID = createdID

		s.mockRepo.EXPECT().FindByDateTime(gomock.Any(), params.Date, params.Time).
			Return(nil, notFoundErr()).Times(1)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(createdID, nil).Times(1)
		s.mockSMS.EXPECT().Send(gomock.Any(), s.smsCfg.OwnerNumber, gomock.Any()).
			Return("SM456", nil).Times(1)
		s.mockRepo.EXPECT().SetNotificationSID(gomock.Any(), gomock.Any(), "SM456").
			Return(infra.WrapRepoErr("update sid", errors.New("connection reset"))).Times(1)
		s.mockRepo.EXPECT().FindByID(gomock.Any(), createdID).
			Return(createdRM, nil).Times(1)

		_, err := s.useCase.Submit(context.Background(), params)
		s.NoError(err)
	})

	s.Run("error: surfaces a store failure on the availability check", func() {
		s.mockRepo.EXPECT().FindByDateTime(gomock.Any(), params.Date, params.Time).
			Return(nil, infra.WrapRepoErr("query appointment", errors.New("connection refused"))).Times(1)

		_, err := s.useCase.Submit(context.Background(), params)
		s.ErrorIs(err, usecase.ErrStoreFailure)
	})
}

func (s *ApprovalUseCaseTestSuite) TestResolveReply() {
	owner := s.smsCfg.OwnerNumber

	s.Run("success: YES reply approves and notifies the requester", func() {
		pending := builder.NewAppointmentBuilder().BuildReadModel()
		resolved := *pending
		resolved.Status = "approved"

		s.mockRepo.EXPECT().FindLatestPending(gomock.Any()).
			Return(pending, nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), pending.ID, appointment.StatusApproved).
			Return(&resolved, nil).Times(1)
		s.mockSMS.EXPECT().Send(gomock.Any(), pending.Phone, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, body string) (string, error) {
				s.Contains(body, "confirmed")
				return "SM789", nil
			}).Times(1)

		outcome, err := s.useCase.ResolveReply(context.Background(), owner, "YES")
		s.Require().NoError(err)
		s.True(outcome.Approved)
		s.Equal("approved", outcome.Appointment.Status)
	})

	s.Run("success: any other reply denies, including an empty one", func() {
		for _, reply := range []string{"no", "maybe", ""} {
			pending := builder.NewAppointmentBuilder().BuildReadModel()
			resolved := *pending
			resolved.Status = "denied"

			s.mockRepo.EXPECT().FindLatestPending(gomock.Any()).
				Return(pending, nil).Times(1)
			s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), pending.ID, appointment.StatusDenied).
				Return(&resolved, nil).Times(1)
			s.mockSMS.EXPECT().Send(gomock.Any(), pending.Phone, gomock.Any()).
				Return("SM790", nil).Times(1)

			outcome, err := s.useCase.ResolveReply(context.Background(), owner, reply)
			s.Require().NoError(err)
			s.False(outcome.Approved)
		}
	})

	s.Run("error: rejects any sender but the owner without touching the repo", func() {
		_, err := s.useCase.ResolveReply(context.Background(), "+19998887777", "yes")
		s.ErrorIs(err, usecase.ErrUnauthorizedSender)
	})

	s.Run("error: reports when nothing is pending", func() {
		s.mockRepo.EXPECT().FindLatestPending(gomock.Any()).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.useCase.ResolveReply(context.Background(), owner, "yes")
		s.ErrorIs(err, usecase.ErrNoPendingAppointment)
	})

	s.Run("error: a concurrently resolved row reads as nothing pending", func() {
		pending := builder.NewAppointmentBuilder().BuildReadModel()

		s.mockRepo.EXPECT().FindLatestPending(gomock.Any()).
			Return(pending, nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), pending.ID, appointment.StatusApproved).
			Return(nil, notFoundErr()).Times(1)

		_, err := s.useCase.ResolveReply(context.Background(), owner, "yes")
		s.ErrorIs(err, usecase.ErrNoPendingAppointment)
	})

	s.Run("success: a failed requester notification never fails the resolution", func() {
		pending := builder.NewAppointmentBuilder().BuildReadModel()
		resolved := *pending
		resolved.Status = "approved"

		s.mockRepo.EXPECT().FindLatestPending(gomock.Any()).
			Return(pending, nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), pending.ID, appointment.StatusApproved).
			Return(&resolved, nil).Times(1)
		s.mockSMS.EXPECT().Send(gomock.Any(), pending.Phone, gomock.Any()).
			Return("", errors.New("twilio unreachable")).Times(1)

		outcome, err := s.useCase.ResolveReply(context.Background(), owner, "yes")
		s.Require().NoError(err)
		s.True(outcome.Approved)
	})
}
