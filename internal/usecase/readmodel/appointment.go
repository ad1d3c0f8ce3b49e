package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentRM is the read-side view of one appointment row.
type AppointmentRM struct {
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
