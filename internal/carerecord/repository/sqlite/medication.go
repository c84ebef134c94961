package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
)

// CreateMedication inserts a medication row.
func (r *Repo) CreateMedication(ctx context.Context, m model.Medication) error {
	times, err := json.Marshal(m.Times)
	if err != nil {
		return fmt.Errorf("failed to marshal intake times: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medications (id, user_id, name, dosage, times, notes, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Name, m.Dosage, string(times), m.Notes, boolToInt(m.Active),
		timeColumn(m.CreatedAt), timeColumn(m.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert medication: %w", err)
	}
	return nil
}

// ListMedications returns a user's medications, newest first.
func (r *Repo) ListMedications(ctx context.Context, userID string, opt repository.MedicationListOptions) ([]model.Medication, error) {
	query := `
		SELECT id, user_id, name, dosage, times, notes, active, created_at, updated_at
		FROM medications WHERE user_id = ?`
	if opt.ActiveOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer rows.Close()

	var meds []model.Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

// GetMedication loads one medication by ID, scoped to the user.
func (r *Repo) GetMedication(ctx context.Context, userID, id string) (model.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, dosage, times, notes, active, created_at, updated_at
		FROM medications WHERE user_id = ? AND id = ?`, userID, id)

	m, err := scanMedication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Medication{}, repository.ErrNotFound
	}
	return m, err
}

// DeleteMedication removes a medication row.
func (r *Repo) DeleteMedication(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM medications WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(row rowScanner) (model.Medication, error) {
	var (
		m                    model.Medication
		times                string
		active               int
		createdAt, updatedAt string
	)

	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &times, &m.Notes, &active, &createdAt, &updatedAt)
	if err != nil {
		return model.Medication{}, err
	}

	if err := json.Unmarshal([]byte(times), &m.Times); err != nil {
		return model.Medication{}, fmt.Errorf("corrupt times column: %w", err)
	}
	m.Active = active != 0
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return m, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
