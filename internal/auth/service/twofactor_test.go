package service

import (
	"context"
	"testing"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/store"

	"github.com/stretchr/testify/require"
)

func TestTwoFactorLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)

	setup := func(t *testing.T) (*TwoFactorService, domain.User) {
		st := newTestStore(t)
		admin := &AdminService{Store: st}
		user, err := admin.CreateUser(ctx, "alice", "hunter22", domain.RoleUser)
		require.NoError(t, err)

		return &TwoFactorService{
			Store:  st,
			Issuer: "authtest",
			Now:    func() time.Time { return base },
		}, user
	}

	t.Run("generate stores an unverified secret", func(t *testing.T) {
		svc, user := setup(t)

		enr, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)
		require.NotEmpty(t, enr.Secret)
		require.Contains(t, enr.OtpauthURL, "otpauth://totp/")

		stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, stored.TwoFactorPending())
	})

	t.Run("generate replaces a previous secret", func(t *testing.T) {
		svc, user := setup(t)

		first, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)
		second, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)
		require.NotEqual(t, first.Secret, second.Secret)

		stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, second.Secret, *stored.TOTPSecret)
	})

	t.Run("verify enables after a correct code", func(t *testing.T) {
		svc, user := setup(t)

		enr, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Verify(ctx, user.ID, "000000"), ErrInvalidTwoFactorCode)

		require.NoError(t, svc.Verify(ctx, user.ID, codeAt(t, enr.Secret, base)))

		stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.True(t, stored.TwoFactorEnabled)
	})

	t.Run("verify without enrollment fails", func(t *testing.T) {
		svc, user := setup(t)
		require.ErrorIs(t, svc.Verify(ctx, user.ID, "123456"), ErrNotEnrolled)
	})

	t.Run("disable clears secret and flag without a code", func(t *testing.T) {
		svc, user := setup(t)

		enr, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Verify(ctx, user.ID, codeAt(t, enr.Secret, base)))

		require.NoError(t, svc.Disable(ctx, user.ID))

		stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, stored.TwoFactorEnabled)
		require.False(t, stored.HasTOTPSecret())
	})

	t.Run("cancel abandons a pending enrollment", func(t *testing.T) {
		svc, user := setup(t)

		_, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, user.ID))

		stored, err := svc.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.False(t, stored.HasTOTPSecret())
	})

	t.Run("cancel refuses a verified enrollment", func(t *testing.T) {
		svc, user := setup(t)

		enr, err := svc.Generate(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Verify(ctx, user.ID, codeAt(t, enr.Secret, base)))

		require.ErrorIs(t, svc.Cancel(ctx, user.ID), ErrTwoFactorEnabled)
	})

	t.Run("cancel with nothing pending is a no-op", func(t *testing.T) {
		svc, user := setup(t)
		require.NoError(t, svc.Cancel(ctx, user.ID))
	})

	t.Run("unknown user surfaces not found", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Generate(ctx, "no-such-id")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
