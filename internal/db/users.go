package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"parietal.systems/acqview/pkg/utils/passwords"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is a registered lab member.
type User struct {
	ID                    pgtype.UUID
	UserName              string
	Email                 string
	Password              passwords.Password
	Role                  UserRole
	Enabled               bool
	SessionsInvalidatedAt pgtype.Timestamptz
	CreatedAt             pgtype.Timestamptz
}

const userColumns = `id, user_name, email, password, role, enabled, sessions_invalidated_at, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.UserName, &u.Email, &u.Password, &u.Role, &u.Enabled, &u.SessionsInvalidatedAt, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// NewUserParams contains the parameters for creating a new user
type NewUserParams struct {
	Username string
	Email    string
	Password string // plaintext password
	Role     string
}

// NewUser creates a new user with a hashed password
func (q *Queries) NewUser(ctx context.Context, params NewUserParams) (*User, error) {
	hashedPassword, err := passwords.NewPassword(passwords.PasswordInput{
		Password: params.Password,
	})
	if err != nil {
		return nil, err
	}

	userID := uuid.New()
	pgUUID := pgtype.UUID{
		Bytes: userID,
		Valid: true,
	}

	role := UserRole(params.Role)
	if params.Role == "" {
		role = UserRoleUser
	}

	row := q.db.QueryRow(ctx, `
		INSERT INTO users (id, user_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		pgUUID, params.Username, params.Email, hashedPassword, role,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// SelectUserByUserName fetches a user by username.
func (q *Queries) SelectUserByUserName(ctx context.Context, userName string) (*User, error) {
	row := q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_name = $1`, userName)
	return scanUser(row)
}

// SelectUserByEmail fetches a user by email.
func (q *Queries) SelectUserByEmail(ctx context.Context, email string) (*User, error) {
	row := q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// SelectUserByID fetches a user by id.
func (q *Queries) SelectUserByID(ctx context.Context, id pgtype.UUID) (*User, error) {
	row := q.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// ListAllUsers returns every user, oldest account first.
func (q *Queries) ListAllUsers(ctx context.Context) ([]*User, error) {
	rows, err := q.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SetUserEnabledParams identifies the user and the new enabled state.
type SetUserEnabledParams struct {
	ID      pgtype.UUID
	Enabled bool
}

func (q *Queries) SetUserEnabled(ctx context.Context, params *SetUserEnabledParams) error {
	_, err := q.db.Exec(ctx, `UPDATE users SET enabled = $2 WHERE id = $1`, params.ID, params.Enabled)
	return err
}

// SetUserRoleParams identifies the user and the new role.
type SetUserRoleParams struct {
	ID   pgtype.UUID
	Role UserRole
}

func (q *Queries) SetUserRole(ctx context.Context, params *SetUserRoleParams) error {
	_, err := q.db.Exec(ctx, `UPDATE users SET role = $2 WHERE id = $1`, params.ID, params.Role)
	return err
}

// InvalidateUserSessions marks all of a user's sessions created before now
// as invalid. The session middleware clears them on the next request.
func (q *Queries) InvalidateUserSessions(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, `UPDATE users SET sessions_invalidated_at = now() WHERE id = $1`, id)
	return err
}

// CountEnabledAdmins returns how many enabled admin accounts exist.
func (q *Queries) CountEnabledAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = 'admin' AND enabled`).Scan(&n)
	return n, err
}

// UsernameTaken reports whether a username is already registered.
func (q *Queries) UsernameTaken(ctx context.Context, userName string) (bool, error) {
	var taken bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_name = $1)`, userName).Scan(&taken)
	return taken, err
}

// EmailRegistered reports whether an email address is already registered.
func (q *Queries) EmailRegistered(ctx context.Context, email string) (bool, error) {
	var registered bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&registered)
	return registered, err
}

// CountUsers returns the number of registered users. The first account to
// register becomes the admin.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

// SessionInvalidationRow carries the per-user fields the session middleware
// checks on every authenticated request.
type SessionInvalidationRow struct {
	Enabled               bool
	SessionsInvalidatedAt pgtype.Timestamptz
}

// GetSessionInvalidation fetches the session validity fields for a user.
func (q *Queries) GetSessionInvalidation(ctx context.Context, userID pgtype.UUID) (*SessionInvalidationRow, error) {
	var r SessionInvalidationRow
	err := q.db.QueryRow(ctx,
		`SELECT enabled, sessions_invalidated_at FROM users WHERE id = $1`, userID,
	).Scan(&r.Enabled, &r.SessionsInvalidatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
