package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goldenage/auth/internal/auth/domain"
	"github.com/goldenage/auth/internal/auth/store"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod     = 30 // seconds per code window
	totpSecretSize = 20 // 160-bit secrets
	totpSkew       = 1  // accept one window either side for clock drift
)

type TwoFactorService struct {
	Store  store.Store
	Issuer string // Issuer name embedded in otpauth URLs

	// Now is overridable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *TwoFactorService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate creates a fresh TOTP secret for the user and stores it unverified.
// Any previous secret is replaced. The two-factor flag is untouched, so a
// user re-enrolling stays protected by the old flag until they verify.
func (s *TwoFactorService) Generate(ctx context.Context, userID string) (domain.TwoFactorEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.TwoFactorEnrollment{}, err
	}

	key, err := generateTOTPKey(s.Issuer, user.Username)
	if err != nil {
		return domain.TwoFactorEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return domain.TwoFactorEnrollment{}, fmt.Errorf("failed to store TOTP secret: %w", err)
	}

	return domain.TwoFactorEnrollment{
		Secret:     key.Secret(),
		OtpauthURL: key.URL(),
	}, nil
}

// Verify checks a code against the stored secret and flips the two-factor
// flag on success.
func (s *TwoFactorService) Verify(ctx context.Context, userID string, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasTOTPSecret() {
		return ErrNotEnrolled
	}

	if !verifyTOTPCode(*user.TOTPSecret, code, s.now()) {
		return ErrInvalidTwoFactorCode
	}

	return s.Store.Users().EnableTwoFactor(ctx, userID)
}

// Disable turns two-factor off and discards the secret. No code check is
// required beyond holding a valid session.
func (s *TwoFactorService) Disable(ctx context.Context, userID string) error {
	return s.Store.Users().DisableTwoFactor(ctx, userID)
}

// Cancel abandons a pending enrollment by dropping the unverified secret.
// Enrollments that were already verified must go through Disable instead.
func (s *TwoFactorService) Cancel(ctx context.Context, userID string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.TwoFactorEnabled {
		return ErrTwoFactorEnabled
	}
	if !user.HasTOTPSecret() {
		return nil
	}
	return s.Store.Users().ClearTOTPSecret(ctx, userID)
}

func generateTOTPKey(issuer, accountName string) (*otp.Key, error) {
	return totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      totpPeriod,
		SecretSize:  totpSecretSize,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
}

// verifyTOTPCode checks a code at an explicit instant so the drift window
// can be exercised deterministically in tests.
func verifyTOTPCode(secret, code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, at, totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
