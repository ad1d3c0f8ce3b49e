package appointment

import (
	"regexp"
	"strings"
	"time"

	"salon-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName = errs.New("client name is required")
	ErrEmptyPhone      = errs.New("phone is required")
	ErrEmptyService    = errs.New("service is required")
	ErrInvalidDate     = errs.New("date must be YYYY-MM-DD")
	ErrInvalidTime     = errs.New("time must be HH:MM")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Appointment is a requested service booking. Date and TimeSlot are kept as
// the wire strings (date-only, minute precision) since that pair is the
// booking key; the DB owns the canonical representation.
type Appointment struct {
	id         uuid.UUID
	clientName string
	phone      string
	service    string
	date       string
	timeSlot   string
	status     Status
	createdAt  time.Time
}

func New(clientName, phone, service, date, timeSlot string, createdAt time.Time) (*Appointment, error) {
	clientName = strings.TrimSpace(clientName)
	phone = strings.TrimSpace(phone)
	service = strings.TrimSpace(service)
	date = strings.TrimSpace(date)
	timeSlot = strings.TrimSpace(timeSlot)

	if clientName == "" {
		return nil, ErrEmptyClientName
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}
	if service == "" {
		return nil, ErrEmptyService
	}
	if !dateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}
	t, err := time.Parse(TimeLayout, timeSlot)
	if err != nil {
		return nil, ErrInvalidTime
	}
	// time.Parse accepts a single-digit hour; reformat so "9:30" and "09:30"
	// land on the same slot and sort lexicographically.
	timeSlot = t.Format(TimeLayout)

	return &Appointment{
		id:         uuid.New(),
		clientName: clientName,
		phone:      phone,
		service:    service,
		date:       date,
		timeSlot:   timeSlot,
		status:     StatusPending,
		createdAt:  createdAt,
	}, nil
}

func (a *Appointment) ID() uuid.UUID      { return a.id }
func (a *Appointment) ClientName() string { return a.clientName }
func (a *Appointment) Phone() string      { return a.phone }
func (a *Appointment) Service() string    { return a.service }
func (a *Appointment) Date() string       { return a.date }
func (a *Appointment) TimeSlot() string   { return a.timeSlot }
func (a *Appointment) Status() Status     { return a.status }
func (a *Appointment) CreatedAt() time.Time {
	return a.createdAt
}

// DecideFromReply maps an operator's free-text reply to the resulting
// status: exactly "yes" (trimmed, case-insensitive) approves, anything else
// denies.
func DecideFromReply(body string) Status {
	if strings.EqualFold(strings.TrimSpace(body), "yes") {
		return StatusApproved
	}
	return StatusDenied
}
