package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"voice_control_system/internal/models"
)

type ProfileSQLite struct {
	db *sql.DB
}

func NewProfileSQLite(db *sql.DB) *ProfileSQLite {
	return &ProfileSQLite{db: db}
}

var _ Profiles = (*ProfileSQLite)(nil)

const (
	insertProfileSQL = `INSERT INTO profiles (user_id, admin_id, name, image_path, role) VALUES (?, ?, ?, ?, ?)`

	updateProfileSQL = `UPDATE profiles SET name = ?, image_path = ? WHERE user_id = ?`

	upsertPreferenceSQL = `
		INSERT INTO preferences (preference_id, user_id, room, intent, intensity)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, room) DO UPDATE SET
			intent=excluded.intent,
			intensity=excluded.intensity
	`

	selectProfileByIDSQL = `SELECT user_id, admin_id, name, image_path, role FROM profiles WHERE user_id = ?`

	// Owner tiles sort first, the rest alphabetically, as the panel
	// renders them.
	selectProfilesByAdminSQL = `
		SELECT user_id, admin_id, name, image_path, role
		FROM profiles
		WHERE admin_id = ?
		ORDER BY CASE WHEN role = 'owner' THEN 0 ELSE 1 END, name ASC
	`

	countProfilesByAdminSQL = `SELECT COUNT(*) FROM profiles WHERE admin_id = ?`

	// Preferences come back in the fixed display order of the four rooms.
	selectPreferencesSQL = `
		SELECT room, intent, intensity
		FROM preferences
		WHERE user_id = ?
		ORDER BY CASE room
			WHEN 'kitchen' THEN 0
			WHEN 'hall' THEN 1
			WHEN 'master' THEN 2
			ELSE 3
		END
	`
)

// Create inserts the profile row and its preferences in one transaction.
func (r *ProfileSQLite) Create(ctx context.Context, p models.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create profile: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, insertProfileSQL,
		p.UserID, p.AdminID, p.Name, nullable(p.ImagePath), p.Role); err != nil {
		return fmt.Errorf("insert profile %q: %w", p.Name, err)
	}
	if err := upsertPreferences(ctx, tx, p.UserID, p.Preferences); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the profile's name/image and upserts its preferences.
// An empty ImagePath preserves the stored one.
func (r *ProfileSQLite) Update(ctx context.Context, p models.Profile) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update profile: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	imagePath := p.ImagePath
	if imagePath == "" {
		var stored sql.NullString
		err := tx.QueryRowContext(ctx, `SELECT image_path FROM profiles WHERE user_id = ?`, p.UserID).Scan(&stored)
		if err != nil {
			return fmt.Errorf("load stored image path for %q: %w", p.UserID, err)
		}
		imagePath = stored.String
	}

	if _, err := tx.ExecContext(ctx, updateProfileSQL, p.Name, nullable(imagePath), p.UserID); err != nil {
		return fmt.Errorf("update profile %q: %w", p.UserID, err)
	}
	if err := upsertPreferences(ctx, tx, p.UserID, p.Preferences); err != nil {
		return err
	}
	return tx.Commit()
}

// GetByID fetches one profile with preferences. Returns (nil, nil) if not found.
func (r *ProfileSQLite) GetByID(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	var image sql.NullString
	err := r.db.QueryRowContext(ctx, selectProfileByIDSQL, userID).
		Scan(&p.UserID, &p.AdminID, &p.Name, &image, &p.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select profile %q: %w", userID, err)
	}
	p.ImagePath = image.String

	prefs, err := r.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Preferences = prefs
	return &p, nil
}

func (r *ProfileSQLite) ListByAdmin(ctx context.Context, adminID string) ([]models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, selectProfilesByAdminSQL, adminID)
	if err != nil {
		return nil, fmt.Errorf("list profiles for %q: %w", adminID, err)
	}
	defer rows.Close()

	out := make([]models.Profile, 0, 4)
	for rows.Next() {
		var p models.Profile
		var image sql.NullString
		if err := rows.Scan(&p.UserID, &p.AdminID, &p.Name, &image, &p.Role); err != nil {
			return nil, err
		}
		p.ImagePath = image.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		prefs, err := r.loadPreferences(ctx, out[i].UserID)
		if err != nil {
			return nil, err
		}
		out[i].Preferences = prefs
	}
	return out, nil
}

func (r *ProfileSQLite) CountByAdmin(ctx context.Context, adminID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countProfilesByAdminSQL, adminID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count profiles for %q: %w", adminID, err)
	}
	return n, nil
}

func (r *ProfileSQLite) loadPreferences(ctx context.Context, userID string) ([]models.Preference, error) {
	rows, err := r.db.QueryContext(ctx, selectPreferencesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences for %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Preference, 0, 4)
	for rows.Next() {
		var p models.Preference
		if err := rows.Scan(&p.Room, &p.Intent, &p.Intensity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertPreferences(ctx context.Context, tx execer, userID string, prefs []models.Preference) error {
	for _, pref := range prefs {
		if _, err := tx.ExecContext(ctx, upsertPreferenceSQL,
			uuid.NewString(), userID, pref.Room, pref.Intent, pref.Intensity); err != nil {
			return fmt.Errorf("upsert preference %s/%s: %w", userID, pref.Room, err)
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
