package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/store"
	"github.com/goldenage/auth/pkg/cryptox"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile applies a self-service profile change. A password change
// requires the current password; a username change alone does not. The
// username is renamed first so a conflicting rename aborts the whole update
// before the password hash is touched.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, newUsername, newPassword *string, currentPassword string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if newPassword != nil {
		if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
			return domain.User{}, ErrInvalidCredentials
		}
	}

	if newUsername != nil && *newUsername != user.Username {
		if err := s.Store.Users().UpdateUsername(ctx, userID, *newUsername); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.User{}, ErrUsernameTaken
			}
			return domain.User{}, err
		}
	}

	if newPassword != nil {
		hash, err := cryptox.HashPassword(*newPassword)
		if err != nil {
			return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
			return domain.User{}, err
		}
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}
