package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"voice_control_system/internal/models"
)

type AdminSQLite struct {
	db *sql.DB
}

func NewAdminSQLite(db *sql.DB) *AdminSQLite {
	return &AdminSQLite{db: db}
}

// Ensure implementation of Admins interface at compile time.
var _ Admins = (*AdminSQLite)(nil)

const (
	insertAdminSQL = `INSERT INTO admins (admin_id, name, username, password_hash, house_address) VALUES (?, ?, ?, ?, ?)`

	selectAdminByUsernameSQL = `SELECT admin_id, name, username, password_hash, house_address FROM admins WHERE username = ?`
	selectAdminByIDSQL       = `SELECT admin_id, name, username, password_hash, house_address FROM admins WHERE admin_id = ?`
)

func (r *AdminSQLite) Create(ctx context.Context, a models.Admin) error {
	_, err := r.db.ExecContext(ctx, insertAdminSQL,
		a.AdminID, a.Name, a.Username, a.PasswordHash, a.HouseAddress)
	if err != nil {
		return fmt.Errorf("insert admin %q: %w", a.Username, err)
	}
	return nil
}

// GetByUsername fetches an admin by username. Returns (nil, nil) if not found.
func (r *AdminSQLite) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectAdminByUsernameSQL, username), username)
}

// GetByID fetches an admin by id. Returns (nil, nil) if not found.
func (r *AdminSQLite) GetByID(ctx context.Context, adminID string) (*models.Admin, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectAdminByIDSQL, adminID), adminID)
}

func (r *AdminSQLite) scanOne(row *sql.Row, key string) (*models.Admin, error) {
	var a models.Admin
	var house sql.NullString
	err := row.Scan(&a.AdminID, &a.Name, &a.Username, &a.PasswordHash, &house)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select admin %q: %w", key, err)
	}
	a.HouseAddress = house.String
	return &a, nil
}
