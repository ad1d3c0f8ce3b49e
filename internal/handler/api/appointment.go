package api

import (
	"errors"
	"net/http"
	"regexp"

	reqdto "salon-booking-api/internal/handler/dto/request"
	resdto "salon-booking-api/internal/handler/dto/response"
	"salon-booking-api/internal/handler/httperr"
	"salon-booking-api/internal/pkg/errs"
	"salon-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	datePathRe         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	errInvalidDatePath = errs.New("invalid date path parameter")
)

type AppointmentHandler struct {
	approvalUseCase    usecase.ApprovalUseCase
	appointmentUseCase usecase.AppointmentUseCase
}

func NewAppointmentHandler(approvalUseCase usecase.ApprovalUseCase, appointmentUseCase usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{
		approvalUseCase:    approvalUseCase,
		appointmentUseCase: appointmentUseCase,
	}
}

// @Summary Request an appointment
// @Description Submit a booking request; the salon owner approves or denies it by SMS
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.CreatedAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields")
		return
	}

	created, err := h.approvalUseCase.Submit(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment data")
		case errors.Is(err, usecase.ErrSlotAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreatedAppointmentRM(created))
}

// @Summary List appointments for a date
// @Description Public listing used by the booking page
// @Tags appointments
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments/date/{date} [get]
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")
	if !datePathRe.MatchString(date) {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidDatePath, "Invalid date format")
		return
	}

	appointments, err := h.appointmentUseCase.ListByDate(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRMList(appointments))
}

// @Summary List all appointments
// @Description Admin-only full listing ordered by date then time
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.appointmentUseCase.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentRMList(appointments))
}

// @Summary Delete an appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format")
		return
	}

	if err := h.appointmentUseCase.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
