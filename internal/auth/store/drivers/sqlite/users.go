package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, password_hash, role, totp_secret, two_factor_enabled, last_login, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, totp_secret, two_factor_enabled, last_login, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Username,
		u.PasswordHash,
		string(u.Role),
		mapOptionalString(u.TOTPSecret),
		u.TwoFactorEnabled,
		mapOptionalTime(u.LastLogin),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) ListUsers(ctx context.Context, f domain.UserFilter) (domain.UserPage, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if f.Search != "" {
		where = append(where, `username LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(f.Search)+"%")
	}
	if f.Role != "" {
		where = append(where, `role = ?`)
		args = append(args, string(f.Role))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+clause, args...).Scan(&total); err != nil {
		return domain.UserPage{}, err
	}

	offset := (f.Page - 1) * f.Limit
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM users%s ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
			userColumns, clause),
		append(args, f.Limit, offset)...)
	if err != nil {
		return domain.UserPage{}, err
	}
	defer rows.Close()

	users := make([]domain.User, 0, f.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return domain.UserPage{}, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return domain.UserPage{}, err
	}

	return domain.UserPage{Users: users, Total: total}, nil
}

func (r *usersRepo) UpdateUsername(ctx context.Context, userID, username string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, updated_at = ? WHERE id = ?`,
		username, time.Now().UTC(), userID)
	if err != nil {
		return mapConflict(err)
	}
	return checkAffected(res, nil)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), userID))
}

func (r *usersRepo) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), userID))
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ?, updated_at = ? WHERE id = ?`,
		at, time.Now().UTC(), userID))
}

func (r *usersRepo) UpdateTOTPSecret(ctx context.Context, userID, secret string) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET totp_secret = ?, updated_at = ? WHERE id = ?`,
		secret, time.Now().UTC(), userID))
}

func (r *usersRepo) EnableTwoFactor(ctx context.Context, userID string) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET two_factor_enabled = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID))
}

func (r *usersRepo) DisableTwoFactor(ctx context.Context, userID string) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET totp_secret = NULL, two_factor_enabled = 0, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID))
}

func (r *usersRepo) ClearTOTPSecret(ctx context.Context, userID string) error {
	return checkAffected(r.db.ExecContext(ctx,
		`UPDATE users SET totp_secret = NULL, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return checkAffected(r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = ?`, userID))
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (domain.User, error) {
	var (
		u         domain.User
		role      string
		secret    sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&role,
		&secret,
		&u.TwoFactorEnabled,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.Role(role)
	u.TOTPSecret = mapNullStringPtr(secret)
	u.LastLogin = mapNullTimePtr(lastLogin)
	return u, nil
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
