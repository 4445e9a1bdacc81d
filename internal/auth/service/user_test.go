package service

import (
	"context"
	"testing"

	"github.com/goldenage/auth/internal/auth/domain"

	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	setup := func(t *testing.T) (*UserService, domain.User) {
		st := newTestStore(t)
		admin := &AdminService{Store: st}
		user, err := admin.CreateUser(ctx, "alice", "hunter22", domain.RoleUser)
		require.NoError(t, err)
		return &UserService{Store: st}, user
	}

	t.Run("username change needs no password", func(t *testing.T) {
		svc, user := setup(t)

		newName := "alice-two"
		updated, err := svc.UpdateProfile(ctx, user.ID, &newName, nil, "")
		require.NoError(t, err)
		require.Equal(t, newName, updated.Username)
	})

	t.Run("password change requires the current password", func(t *testing.T) {
		svc, user := setup(t)
		auth := &AuthService{Store: svc.Store, Issuer: newTestIssuer(), TOTPIssuer: "authtest"}

		newPw := "new-password"
		_, err := svc.UpdateProfile(ctx, user.ID, nil, &newPw, "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.UpdateProfile(ctx, user.ID, nil, &newPw, "hunter22")
		require.NoError(t, err)

		_, err = auth.Login(ctx, "alice", "new-password")
		require.NoError(t, err)
	})

	t.Run("rename onto a taken username conflicts", func(t *testing.T) {
		svc, user := setup(t)
		admin := &AdminService{Store: svc.Store}

		_, err := admin.CreateUser(ctx, "bob", "hunter22", domain.RoleUser)
		require.NoError(t, err)

		taken := "bob"
		_, err = svc.UpdateProfile(ctx, user.ID, &taken, nil, "")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("conflicting rename leaves the password untouched", func(t *testing.T) {
		svc, user := setup(t)
		admin := &AdminService{Store: svc.Store}
		auth := &AuthService{Store: svc.Store, Issuer: newTestIssuer(), TOTPIssuer: "authtest"}

		_, err := admin.CreateUser(ctx, "bob", "hunter22", domain.RoleUser)
		require.NoError(t, err)

		taken := "bob"
		newPw := "brand-new-pw"
		_, err = svc.UpdateProfile(ctx, user.ID, &taken, &newPw, "hunter22")
		require.ErrorIs(t, err, ErrUsernameTaken)

		_, err = auth.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)
		_, err = auth.Login(ctx, "alice", "brand-new-pw")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("same username is a no-op", func(t *testing.T) {
		svc, user := setup(t)

		same := user.Username
		updated, err := svc.UpdateProfile(ctx, user.ID, &same, nil, "")
		require.NoError(t, err)
		require.Equal(t, user.Username, updated.Username)
	})
}
