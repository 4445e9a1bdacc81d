package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/store"
	"github.com/goldenage/auth/pkg/cryptox"
	"github.com/goldenage/auth/pkg/idx"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type AdminService struct {
	Store store.Store

	// Now is overridable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListUsers returns one page of users. Out-of-range paging values are
// clamped rather than rejected.
func (s *AdminService) ListUsers(ctx context.Context, f domain.UserFilter) (domain.UserPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}

	page, err := s.Store.Users().ListUsers(ctx, f)
	if err != nil {
		return domain.UserPage{}, err
	}
	page.Page = f.Page
	page.Limit = f.Limit
	return page, nil
}

// GetUser fetches a single user by id.
func (s *AdminService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// CreateUser provisions an account on someone's behalf. Unlike self
// registration, no TOTP secret is generated; the user enrolls themselves
// later if they want two-factor.
func (s *AdminService) CreateUser(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now().UTC()
	user := domain.User{
		ID:           string(idx.New()),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser applies an admin edit. Nil fields are left untouched.
func (s *AdminService) UpdateUser(ctx context.Context, userID string, username *string, role *domain.Role) (domain.User, error) {
	if username != nil {
		if err := s.Store.Users().UpdateUsername(ctx, userID, *username); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.User{}, ErrUsernameTaken
			}
			return domain.User{}, err
		}
	}
	if role != nil {
		if err := s.Store.Users().UpdateRole(ctx, userID, *role); err != nil {
			return domain.User{}, err
		}
	}
	return s.Store.Users().GetUserByID(ctx, userID)
}

// DeleteUser removes an account. Admins cannot delete themselves, which
// keeps at least the acting admin alive. Outstanding session tokens are not
// revoked; they fail lookups from then on.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return ErrSelfDelete
	}
	return s.Store.Users().DeleteUser(ctx, userID)
}

// ResetPassword force-sets a user's password without knowing the old one.
func (s *AdminService) ResetPassword(ctx context.Context, userID, newPassword string) error {
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}
