package sqlite

import (
	"context"
	"fmt"
	"time"

	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
)

// CreateVital inserts one vital-sign reading.
func (r *Repo) CreateVital(ctx context.Context, v model.VitalReading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vitals (id, user_id, type, value, secondary, unit, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.UserID, string(v.Type), v.Value, v.Secondary, v.Unit, v.Notes,
		timeColumn(v.RecordedAt))
	if err != nil {
		return fmt.Errorf("failed to insert vital reading: %w", err)
	}
	return nil
}

// ListVitals returns readings newest first, honoring the type and time
// filters in opt.
func (r *Repo) ListVitals(ctx context.Context, userID string, opt repository.VitalListOptions) ([]model.VitalReading, error) {
	query := `
		SELECT id, user_id, type, value, secondary, unit, notes, recorded_at
		FROM vitals WHERE user_id = ?`
	args := []any{userID}

	if opt.Type != "" {
		query += ` AND type = ?`
		args = append(args, string(opt.Type))
	}
	if !opt.From.IsZero() {
		query += ` AND recorded_at >= ?`
		args = append(args, timeColumn(opt.From))
	}
	if !opt.To.IsZero() {
		query += ` AND recorded_at <= ?`
		args = append(args, timeColumn(opt.To))
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = repository.DefaultVitalLimit
	}
	query += ` ORDER BY recorded_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	defer rows.Close()

	var readings []model.VitalReading
	for rows.Next() {
		var (
			v          model.VitalReading
			vtype      string
			recordedAt string
		)
		if err := rows.Scan(&v.ID, &v.UserID, &vtype, &v.Value, &v.Secondary, &v.Unit, &v.Notes, &recordedAt); err != nil {
			return nil, err
		}
		v.Type = model.VitalType(vtype)
		v.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		readings = append(readings, v)
	}
	return readings, rows.Err()
}
