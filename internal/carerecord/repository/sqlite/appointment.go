package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
)

// CreateAppointment inserts one appointment row.
func (r *Repo) CreateAppointment(ctx context.Context, a model.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (id, user_id, title, location, doctor, notes, starts_at, reminder_id, calendar_event, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Title, a.Location, a.Doctor, a.Notes,
		timeColumn(a.StartsAt), a.ReminderID, a.CalendarEvent,
		timeColumn(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// ListAppointments returns a user's appointments, soonest first.
func (r *Repo) ListAppointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, location, doctor, notes, starts_at, reminder_id, calendar_event, created_at
		FROM appointments WHERE user_id = ?
		ORDER BY starts_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

// GetAppointment loads one appointment by ID, scoped to the user.
func (r *Repo) GetAppointment(ctx context.Context, userID, id string) (model.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, location, doctor, notes, starts_at, reminder_id, calendar_event, created_at
		FROM appointments WHERE user_id = ? AND id = ?`, userID, id)

	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Appointment{}, repository.ErrNotFound
	}
	return a, err
}

// DeleteAppointment removes an appointment row.
func (r *Repo) DeleteAppointment(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM appointments WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanAppointment(row rowScanner) (model.Appointment, error) {
	var (
		a                   model.Appointment
		startsAt, createdAt string
	)

	err := row.Scan(&a.ID, &a.UserID, &a.Title, &a.Location, &a.Doctor, &a.Notes,
		&startsAt, &a.ReminderID, &a.CalendarEvent, &createdAt)
	if err != nil {
		return model.Appointment{}, err
	}

	a.StartsAt, _ = time.Parse(time.RFC3339, startsAt)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return a, nil
}
