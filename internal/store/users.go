package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/homemate-app/homemate/internal/model"
)

// Duplicate unique-field errors, surfaced to handlers as 409s instead of
// being collapsed into a generic internal error.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// duplicateErr maps a SQLite unique-constraint violation to the matching
// sentinel, or returns nil if err is not a uniqueness violation.
func duplicateErr(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	if strings.Contains(msg, "users.email") {
		return ErrDuplicateEmail
	}
	return ErrDuplicateUsername
}

// CreateUser creates a new non-admin user.
func CreateUser(ctx context.Context, db *sql.DB, username, email, passwordHash string) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, passwordHash,
	)
	if err != nil {
		if dup := duplicateErr(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// CreateAdmin creates a user with the admin flag set. Only used for first-run
// provisioning; signup never grants admin.
func CreateAdmin(ctx context.Context, db *sql.DB, username, email, passwordHash string) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, is_admin) VALUES (?, ?, ?, 1)`,
		username, email, passwordHash,
	)
	if err != nil {
		if dup := duplicateErr(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("creating admin user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID, or nil if absent.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, is_admin, profile_picture_mime, created_at, updated_at
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &mime, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u.ProfilePictureMime = mime.String
	return u, nil
}

// GetUserByEmail returns a user by email, or nil if absent. Signin looks
// accounts up by email.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, is_admin, profile_picture_mime, created_at, updated_at
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &mime, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	u.ProfilePictureMime = mime.String
	return u, nil
}

// ListUsers returns all users.
func ListUsers(ctx context.Context, db *sql.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, username, email, password_hash, is_admin, profile_picture_mime, created_at, updated_at
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var mime sql.NullString
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &mime, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		u.ProfilePictureMime = mime.String
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser updates the provided fields of a user; empty values are left
// unchanged.
func UpdateUser(ctx context.Context, db *sql.DB, id int64, username, email, passwordHash string) error {
	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	var args []any
	if username != "" {
		sets = append(sets, "username = ?")
		args = append(args, username)
	}
	if email != "" {
		sets = append(sets, "email = ?")
		args = append(args, email)
	}
	if passwordHash != "" {
		sets = append(sets, "password_hash = ?")
		args = append(args, passwordHash)
	}
	args = append(args, id)

	_, err := db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE users SET %s WHERE id = ?`, strings.Join(sets, ", ")),
		args...,
	)
	if err != nil {
		if dup := duplicateErr(err); dup != nil {
			return dup
		}
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// DeleteUser removes a user. The user's inventory documents are left in
// place; no cascade exists anywhere in the system.
func DeleteUser(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking user delete: %w", err)
	}
	return affected > 0, nil
}

// SetUserProfilePicture stores a user's profile picture.
func SetUserProfilePicture(ctx context.Context, db *sql.DB, id int64, data []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET profile_picture = ?, profile_picture_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		data, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting profile picture: %w", err)
	}
	return nil
}

// GetUserProfilePicture returns a user's profile picture data and MIME type.
func GetUserProfilePicture(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var data []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT profile_picture, profile_picture_mime FROM users WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting profile picture: %w", err)
	}
	return data, mime.String, nil
}
