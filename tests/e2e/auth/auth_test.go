//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/tests/common/builder"
	"salon-booking-api/tests/common/httptest"
	"salon-booking-api/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type AuthE2ETestSuite struct {
	e2e.SharedSuite
}

func TestAuthE2ESuite(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}

const loginURL = "/api/login"

func (s *AuthE2ETestSuite) login() string {
	reqBody := map[string]any{
		"username": s.Config.Admin.Username,
		"password": e2e.AdminPassword,
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().NotEmpty(response.Token)
	return response.Token
}

func (s *AuthE2ETestSuite) TestLogin() {
	s.Run("success: issues a token for the admin credentials", func() {
		s.login()
	})

	s.Run("error: rejects a wrong password", func() {
		reqBody := map[string]any{
			"username": s.Config.Admin.Username,
			"password": "wrong-password",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("error: rejects an unknown username", func() {
		reqBody := map[string]any{
			"username": "root",
			"password": e2e.AdminPassword,
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})
}

func (s *AuthE2ETestSuite) TestProtectedEndpoints() {
	s.Run("error: full listing requires a token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/appointments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Missing token")
	})

	s.Run("error: rejects a garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/appointments", nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("success: full listing with a fresh token", func() {
		token := s.login()

		reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
		createRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/appointments", reqBody, "")
		s.Require().Equal(http.StatusCreated, createRec.Code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/appointments", nil, token)

		var listing []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listing)
		s.Require().Len(listing, 1)
		s.Equal(reqBody.Client, listing[0].ClientName)
	})

	s.Run("success: delete removes the appointment", func() {
		token := s.login()

		reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
		var created resdto.CreatedAppointmentResponse
		createRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/appointments", reqBody, "")
		httptest.AssertSuccessResponse(s.T(), createRec, http.StatusCreated, &created)

		deleteRec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/appointments/"+created.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, deleteRec.Code)

		// A second delete of the same id is a 404
		deleteAgain := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/appointments/"+created.ID.String(), nil, token)
		httptest.AssertErrorResponse(s.T(), deleteAgain, http.StatusNotFound, "Appointment not found")
	})
}
