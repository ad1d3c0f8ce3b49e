package response

import (
	"time"

	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientName      string    `json:"client"`
	Phone           string    `json:"phone"`
	Service         string    `json:"service"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	NotificationSID *string   `json:"notification_sid,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreatedAppointmentResponse decorates the created record with the
// human-readable awaiting-approval note.
type CreatedAppointmentResponse struct {
	AppointmentResponse
	Note string `json:"note"`
}

func FromAppointmentRM(rm *readmodel.AppointmentRM) *AppointmentResponse {
	var resp AppointmentResponse
	// Field names line up with the read model; copier keeps this mapping
	// from drifting when columns are added.
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCreatedAppointmentRM(rm *readmodel.AppointmentRM) *CreatedAppointmentResponse {
	return &CreatedAppointmentResponse{
		AppointmentResponse: *FromAppointmentRM(rm),
		Note:                "Appointment requested. We'll text you once the salon confirms it.",
	}
}

func FromAppointmentRMList(rms []*readmodel.AppointmentRM) []*AppointmentResponse {
	result := make([]*AppointmentResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromAppointmentRM(rm)
	}
	return result
}
