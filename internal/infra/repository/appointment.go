package repository

import (
	"context"
	"errors"

	"salon-booking-api/internal/domain/appointment"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const appointmentColumns = `id, client_name, phone, service, date::text, time_slot, status, notification_sid, created_at`

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create inserts a new pending appointment. The unique index on
// (date, time_slot) is the authoritative double-booking guard; a violation
// surfaces as KindDuplicateKey.
func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO appointments (id, client_name, phone, service, date, time_slot, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		appt.ID(), appt.ClientName(), appt.Phone(), appt.Service(),
		appt.Date(), appt.TimeSlot(), appt.Status().String(), appt.CreatedAt(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("slot already booked", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	return id, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AppointmentRM, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)

	rm, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by id", err)
	}
	return rm, nil
}

func (r *AppointmentRepository) FindByDateTime(ctx context.Context, date, timeSlot string) (*readmodel.AppointmentRM, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE date = $1 AND time_slot = $2 LIMIT 1`,
		date, timeSlot)

	rm, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by date and time", err)
	}
	return rm, nil
}

// FindLatestPending returns the most recently created pending appointment,
// the row an inbound operator reply is matched against.
func (r *AppointmentRepository) FindLatestPending(ctx context.Context) (*readmodel.AppointmentRM, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE status = 'pending'
		 ORDER BY created_at DESC
		 LIMIT 1`)

	rm, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no pending appointment", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest pending appointment", err)
	}
	return rm, nil
}

// UpdateStatus finalizes a pending appointment. The status = 'pending' guard
// makes concurrent double-resolves lose cleanly as not-found.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status appointment.Status) (*readmodel.AppointmentRM, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE appointments SET status = $2
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+appointmentColumns,
		id, status.String())

	rm, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pending appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update appointment status", err)
	}
	return rm, nil
}

func (r *AppointmentRepository) SetNotificationSID(ctx context.Context, id uuid.UUID, sid string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE appointments SET notification_sid = $2 WHERE id = $1`, id, sid)
	if err != nil {
		return infra.WrapRepoErr("failed to set notification sid", err)
	}
	return nil
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*readmodel.AppointmentRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY date ASC, time_slot ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentRepository) ListByDate(ctx context.Context, date string) ([]*readmodel.AppointmentRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE date = $1 ORDER BY time_slot ASC`,
		date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by date", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanAppointment(row pgx.Row) (*readmodel.AppointmentRM, error) {
	var rm readmodel.AppointmentRM
	err := row.Scan(
		&rm.ID,
		&rm.ClientName,
		&rm.Phone,
		&rm.Service,
		&rm.Date,
		&rm.Time,
		&rm.Status,
		&rm.NotificationSID,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func collectAppointments(rows pgx.Rows) ([]*readmodel.AppointmentRM, error) {
	result := make([]*readmodel.AppointmentRM, 0)
	for rows.Next() {
		rm, err := scanAppointment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return result, nil
}
