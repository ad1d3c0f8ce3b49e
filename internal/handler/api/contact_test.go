//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-booking-api/internal/handler/api"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/tests/common/httptest"
	usecasemock "salon-booking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContactHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockContact *usecasemock.MockContactUseCase
	handler     *api.ContactHandler
}

func (s *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockContact = usecasemock.NewMockContactUseCase(s.mockCtrl)
	s.handler = api.NewContactHandler(s.mockContact)

	s.router.POST("/api/contact", s.handler.Send)
}

func (s *ContactHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContactHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}

func (s *ContactHandlerTestSuite) TestSend() {
	url := "/api/contact"
	reqBody := map[string]any{
		"name":    "Jamie Lee",
		"email":   "jamie@example.com",
		"phone":   "+15551230001",
		"message": "Do you have availability next week?",
	}

	s.Run("success: returns the thank-you message", func() {
		s.mockContact.EXPECT().SendMessage(gomock.Any(), usecase.ContactMessageParams{
			Name:    "Jamie Lee",
			Email:   "jamie@example.com",
			Phone:   "+15551230001",
			Message: "Do you have availability next week?",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ContactResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response.Message, "Thank you")
	})

	s.Run("success: phone is optional", func() {
		noPhone := map[string]any{
			"name":    "Jamie Lee",
			"email":   "jamie@example.com",
			"message": "Walk-ins welcome?",
		}
		s.mockContact.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, noPhone, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: func(m map[string]any) { delete(m, "name") }},
			{name: "missing email", mutate: func(m map[string]any) { delete(m, "email") }},
			{name: "invalid email", mutate: func(m map[string]any) { m["email"] = "not-an-email" }},
			{name: "missing message", mutate: func(m map[string]any) { delete(m, "message") }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := map[string]any{}
				for k, v := range reqBody {
					requestMap[k] = v
				}
				tc.mutate(requestMap)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 500 with a generic message on delivery failure", func() {
		s.mockContact.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			Return(usecase.ErrEmailDelivery).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to send message")
	})
}
