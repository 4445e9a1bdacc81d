package store

import (
	"context"
	"errors"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this. Every operation is a single-document read or write; the
// driver's own atomicity and the unique username index are the only
// consistency mechanisms the auth core relies on.
type Store interface {
	Users() Users

	// ApplyMigrations brings the schema (or indexes) up to date. Called
	// once at startup before the service accepts requests.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername looks a user up for login. Case-sensitive match.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken; the unique
	// index here is the authority on uniqueness, any pre-check in the
	// service layer is advisory only.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns one page of users matching the filter, newest
	// first, plus the total match count.
	ListUsers(ctx context.Context, f domain.UserFilter) (domain.UserPage, error)

	// UpdateUsername renames a user. Returns ErrAlreadyExists when the
	// new name is taken and ErrNotFound when the user id is unknown.
	UpdateUsername(ctx context.Context, userID, username string) error

	// UpdatePasswordHash replaces the password hash wholesale. No hash
	// history is retained.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// UpdateRole changes the role.
	UpdateRole(ctx context.Context, userID string, role domain.Role) error

	// UpdateLastLogin stamps a completed authentication.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error

	// UpdateTOTPSecret stores a freshly generated, not yet verified secret.
	UpdateTOTPSecret(ctx context.Context, userID, secret string) error

	// EnableTwoFactor flips the verified flag after a successful code check.
	EnableTwoFactor(ctx context.Context, userID string) error

	// DisableTwoFactor clears both the secret and the verified flag.
	DisableTwoFactor(ctx context.Context, userID string) error

	// ClearTOTPSecret drops the stored secret without touching the
	// verified flag. Used to abandon a pending enrollment.
	ClearTOTPSecret(ctx context.Context, userID string) error

	// DeleteUser removes the record. Outstanding session tokens are not
	// tracked and therefore not revoked.
	DeleteUser(ctx context.Context, userID string) error
}
