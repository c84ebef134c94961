package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"care-companion/internal/carerecord/repository"
	"care-companion/internal/model"
)

// UpsertProfile creates or replaces the profile row for a user.
func (r *Repo) UpsertProfile(ctx context.Context, p model.CareProfile) error {
	conditions, err := json.Marshal(p.Conditions)
	if err != nil {
		return fmt.Errorf("failed to marshal conditions: %w", err)
	}
	allergies, err := json.Marshal(p.Allergies)
	if err != nil {
		return fmt.Errorf("failed to marshal allergies: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, name, age, conditions, allergies, ai_mode)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			conditions = excluded.conditions,
			allergies = excluded.allergies,
			ai_mode = excluded.ai_mode`,
		p.UserID, p.Name, p.Age, string(conditions), string(allergies), string(p.AIMode))
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile loads one user's profile.
func (r *Repo) GetProfile(ctx context.Context, userID string) (model.CareProfile, error) {
	var (
		p          model.CareProfile
		conditions string
		allergies  string
		aiMode     string
	)

	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, name, age, conditions, allergies, ai_mode
		FROM profiles WHERE user_id = ?`, userID)

	err := row.Scan(&p.UserID, &p.Name, &p.Age, &conditions, &allergies, &aiMode)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CareProfile{}, repository.ErrNotFound
	}
	if err != nil {
		return model.CareProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal([]byte(conditions), &p.Conditions); err != nil {
		return model.CareProfile{}, fmt.Errorf("corrupt conditions column: %w", err)
	}
	if err := json.Unmarshal([]byte(allergies), &p.Allergies); err != nil {
		return model.CareProfile{}, fmt.Errorf("corrupt allergies column: %w", err)
	}
	p.AIMode = model.AIMode(aiMode)

	return p, nil
}
