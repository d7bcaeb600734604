package store

import (
	"context"
	"time"
)

const createAdminUser = `
INSERT INTO admin_users (name, email, password_hash, created_at)
VALUES (?, ?, ?, ?)
RETURNING id, name, email, password_hash, created_at
`

// CreateAdminUserParams holds the fields for CreateAdminUser.
type CreateAdminUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateAdminUser inserts a new admin user and returns the stored row.
func (q *Queries) CreateAdminUser(ctx context.Context, arg CreateAdminUserParams) (AdminUser, error) {
	row := q.db.QueryRowContext(ctx, createAdminUser,
		arg.Name, arg.Email, arg.PasswordHash, arg.CreatedAt)
	var u AdminUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

const getAdminUserByID = `
SELECT id, name, email, password_hash, created_at
FROM admin_users
WHERE id = ?
`

// GetAdminUserByID fetches an admin user by primary key.
func (q *Queries) GetAdminUserByID(ctx context.Context, id int64) (AdminUser, error) {
	row := q.db.QueryRowContext(ctx, getAdminUserByID, id)
	var u AdminUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

const getAdminUserByEmail = `
SELECT id, name, email, password_hash, created_at
FROM admin_users
WHERE email = ?
`

// GetAdminUserByEmail fetches an admin user by unique email.
func (q *Queries) GetAdminUserByEmail(ctx context.Context, email string) (AdminUser, error) {
	row := q.db.QueryRowContext(ctx, getAdminUserByEmail, email)
	var u AdminUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

const updateAdminUserPassword = `
UPDATE admin_users SET password_hash = ? WHERE id = ?
`

// UpdateAdminUserPasswordParams holds the fields for UpdateAdminUserPassword.
type UpdateAdminUserPasswordParams struct {
	PasswordHash string
	ID           int64
}

// UpdateAdminUserPassword replaces the stored password hash of an admin user.
func (q *Queries) UpdateAdminUserPassword(ctx context.Context, arg UpdateAdminUserPasswordParams) error {
	_, err := q.db.ExecContext(ctx, updateAdminUserPassword, arg.PasswordHash, arg.ID)
	return err
}

const countAdminUsers = `
SELECT COUNT(*) FROM admin_users
`

// CountAdminUsers returns the total number of admin users.
func (q *Queries) CountAdminUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAdminUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}
