//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-booking-api/internal/handler/api"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/internal/usecase/readmodel"
	"salon-booking-api/tests/common/builder"
	"salon-booking-api/tests/common/httptest"
	usecasemock "salon-booking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockApproval *usecasemock.MockApprovalUseCase
	mockAppt     *usecasemock.MockAppointmentUseCase
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockApproval = usecasemock.NewMockApprovalUseCase(s.mockCtrl)
	s.mockAppt = usecasemock.NewMockAppointmentUseCase(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockApproval, s.mockAppt)

	s.router.POST("/api/appointments", s.handler.Create)
	s.router.GET("/api/appointments", s.handler.ListAll)
	s.router.GET("/api/appointments/date/:date", s.handler.ListByDate)
	s.router.DELETE("/api/appointments/:id", s.handler.Delete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/api/appointments"
	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with the pending record and note", func() {
		created := builder.NewAppointmentBuilder().BuildReadModel()
		s.mockApproval.EXPECT().Submit(gomock.Any(), reqBody.ToParams()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID, response.ID)
		s.Equal("pending", response.Status)
		s.NotEmpty(response.Note)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing client", mutate: func(m map[string]any) { delete(m, "client") }},
			{name: "missing phone", mutate: func(m map[string]any) { delete(m, "phone") }},
			{name: "missing service", mutate: func(m map[string]any) { delete(m, "service") }},
			{name: "missing date", mutate: func(m map[string]any) { delete(m, "date") }},
			{name: "missing time", mutate: func(m map[string]any) { delete(m, "time") }},
			{name: "bad date format", mutate: func(m map[string]any) { m["date"] = "15/09/2026" }},
			{name: "bad time format", mutate: func(m map[string]any) { m["time"] = "2pm" }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := map[string]any{
					"client":  reqBody.Client,
					"phone":   reqBody.Phone,
					"service": reqBody.Service,
					"date":    reqBody.Date,
					"time":    reqBody.Time,
				}
				tc.mutate(requestMap)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot already booked",
				usecaseError:   usecase.ErrSlotAlreadyBooked,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot already booked",
			},
			{
				name:           "validation failure",
				usecaseError:   usecase.ErrAppointmentValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid appointment data",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockApproval.EXPECT().Submit(gomock.Any(), reqBody.ToParams()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestListByDate() {
	s.Run("success: returns the day's appointments", func() {
		date := "2026-09-15"
		listing := []*readmodel.AppointmentRM{
			builder.NewAppointmentBuilder().WithTime("10:00").BuildReadModel(),
			builder.NewAppointmentBuilder().WithTime("14:30").BuildReadModel(),
		}
		s.mockAppt.EXPECT().ListByDate(gomock.Any(), date).Return(listing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/appointments/date/"+date, nil, "")

		var response []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("10:00", response[0].Time)
	})

	s.Run("success: an empty day is an empty array", func() {
		s.mockAppt.EXPECT().ListByDate(gomock.Any(), "2026-12-25").
			Return([]*readmodel.AppointmentRM{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/appointments/date/2026-12-25", nil, "")

		var response []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 on a malformed date", func() {
		for _, bad := range []string{"15-09-2026", "2026-9-5", "tomorrow"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/appointments/date/"+bad, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestListAll() {
	s.Run("success: returns the full listing", func() {
		listing := []*readmodel.AppointmentRM{
			builder.NewAppointmentBuilder().WithDate("2026-09-01").BuildReadModel(),
			builder.NewAppointmentBuilder().WithDate("2026-09-02").BuildReadModel(),
			builder.NewAppointmentBuilder().WithDate("2026-09-03").BuildReadModel(),
		}
		s.mockAppt.EXPECT().ListAll(gomock.Any()).Return(listing, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/appointments", nil, "")

		var response []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 3)
	})

	s.Run("error: 500 on a store failure", func() {
		s.mockAppt.EXPECT().ListAll(gomock.Any()).
			Return(nil, usecase.ErrStoreFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/appointments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()
		s.mockAppt.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/appointments/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/appointments/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})

	s.Run("error: 404 when the appointment does not exist", func() {
		id := uuid.New()
		s.mockAppt.EXPECT().Delete(gomock.Any(), id).
			Return(usecase.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/appointments/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}
