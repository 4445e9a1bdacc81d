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
	"github.com/goldenage/auth/pkg/jwtx"
)

type AuthService struct {
	Store      store.Store
	Issuer     *jwtx.Issuer
	TOTPIssuer string // Issuer name embedded in otpauth URLs

	// Now is overridable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates a new account with the default role. A TOTP secret is
// generated up front and stored unverified so the client can offer 2FA
// setup immediately after signup. The account stays usable with password
// alone only until its first login, since a stored secret gates login even
// before it is verified.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.RegisteredUser, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	key, err := generateTOTPKey(s.TOTPIssuer, username)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	now := s.now().UTC()
	secret := key.Secret()
	user := domain.User{
		ID:           string(idx.New()),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		TOTPSecret:   &secret,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index decides races, not a pre-check.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.RegisteredUser{}, ErrUsernameTaken
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	setupToken, err := s.Issuer.IssueSetup(user.ID)
	if err != nil {
		return domain.RegisteredUser{}, fmt.Errorf("failed to issue setup token: %w", err)
	}

	return domain.RegisteredUser{
		User: user,
		Enrollment: domain.TwoFactorEnrollment{
			Secret:     secret,
			OtpauthURL: key.URL(),
		},
		SetupToken: setupToken,
	}, nil
}

// Login authenticates a username and password. When any TOTP secret is
// stored, verified or not, the result is a two-factor challenge and no
// token is issued. Unknown usernames and bad passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.LoginResult, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.LoginResult{}, ErrInvalidCredentials
		}
		return domain.LoginResult{}, err
	}

	if user.HasTOTPSecret() {
		return domain.LoginResult{Need2FA: true, User: user}, nil
	}

	return s.completeLogin(ctx, user)
}

// VerifyLoginChallenge finishes a two-factor login. When the account has no
// stored secret yet, a caller-supplied secret is accepted and persisted on
// success, which lets a client that just displayed the registration secret
// complete enrollment in the same flow. A stored secret always wins over
// the override. The two-factor flag is never touched here; only the
// dedicated enrollment verification paths flip it.
func (s *AuthService) VerifyLoginChallenge(ctx context.Context, userID, code, secretOverride string) (domain.LoginResult, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.LoginResult{}, err
	}

	secret := ""
	persistSecret := false
	if user.HasTOTPSecret() {
		secret = *user.TOTPSecret
	} else if secretOverride != "" {
		secret = secretOverride
		persistSecret = true
	}
	if secret == "" {
		return domain.LoginResult{}, ErrNotEnrolled
	}

	if !verifyTOTPCode(secret, code, s.now()) {
		return domain.LoginResult{}, ErrInvalidTwoFactorCode
	}

	if persistSecret {
		if err := s.Store.Users().UpdateTOTPSecret(ctx, userID, secret); err != nil {
			return domain.LoginResult{}, fmt.Errorf("failed to store TOTP secret: %w", err)
		}
		user.TOTPSecret = &secret
	}

	return s.completeLogin(ctx, user)
}

// CompleteSetup verifies the first code of a fresh registration using the
// short-lived setup token instead of a password, enables two-factor, and
// signs the user in.
func (s *AuthService) CompleteSetup(ctx context.Context, setupToken, code string) (domain.LoginResult, error) {
	claims, err := s.Issuer.VerifySetup(setupToken)
	if err != nil {
		return domain.LoginResult{}, ErrInvalidSetupToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if !user.HasTOTPSecret() {
		return domain.LoginResult{}, ErrNotEnrolled
	}

	if !verifyTOTPCode(*user.TOTPSecret, code, s.now()) {
		return domain.LoginResult{}, ErrInvalidTwoFactorCode
	}

	if err := s.Store.Users().EnableTwoFactor(ctx, user.ID); err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to enable two-factor: %w", err)
	}
	user.TwoFactorEnabled = true

	return s.completeLogin(ctx, user)
}

func (s *AuthService) completeLogin(ctx context.Context, user domain.User) (domain.LoginResult, error) {
	now := s.now().UTC()
	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID, now); err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLogin = &now

	token, err := s.Issuer.IssueSession(user.ID, user.Username, string(user.Role))
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	return domain.LoginResult{User: user, Token: token}, nil
}
