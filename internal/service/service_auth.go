// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/store"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
)

// authService is the concrete implementation of AuthService.
// It runs the login checks in a fixed order against the credential store,
// emits one audit entry per attempt outcome, and optionally issues JWT
// tokens when a signing key is configured.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// accessLog receives one audit entry per login outcome. Append failures
	// are swallowed inside the repository and never block a login response.
	accessLog store.AccessLogRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// An empty key disables token issuance entirely.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, accessLog store.AccessLogRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		accessLog:      accessLog,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates one login attempt. Checks run strictly in order and
// the first failing check wins:
//
//  1. Username or password absent from the request body: ErrInvalidDataProvided,
//     no audit entry (pre-validation failure).
//  2. Trimmed username unknown: audit "login_failed: user not exist", wrapped
//     store.ErrUserNotFound.
//  3. Password digest mismatch: audit "login_failed: wrong password",
//     ErrWrongPassword.
//  4. Admin-role account with a two-factor digest mismatch: audit
//     "login_failed: wrong two-factor code", ErrWrongTwoFactorCode. Accounts
//     with the user role skip this check regardless of what was supplied.
//
// On success one "login_success" entry is recorded and the account's public
// view is returned. Credentials are never echoed back.
func (a *authService) Login(ctx context.Context, request models.LoginRequest, ip string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	if request.Username == nil || request.Password == nil {
		log.Error().Msg("login request without username or password field")
		return models.UserInfo{}, ErrInvalidDataProvided
	}

	username := strings.TrimSpace(*request.Username)

	user, err := a.userRepository.FindUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.accessLog.Append(ctx, username, models.ActionLoginFailedNoUser, ip)
		}
		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.UserInfo{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if user.PasswordHash != utils.HashSecret(*request.Password) {
		a.accessLog.Append(ctx, username, models.ActionLoginFailedPassword, ip)
		log.Error().Str("username", username).Msg("wrong password")
		return models.UserInfo{}, ErrWrongPassword
	}

	if user.IsAdmin() && user.TwoFactorHash != utils.HashSecret(request.TwoFactorCode) {
		a.accessLog.Append(ctx, username, models.ActionLoginFailedTwoFA, ip)
		log.Error().Str("username", username).Msg("wrong two-factor code")
		return models.UserInfo{}, ErrWrongTwoFactorCode
	}

	a.accessLog.Append(ctx, username, models.ActionLoginSuccess, ip)

	return models.UserInfo{
		Username:    username,
		Role:        user.Role,
		Permissions: user.Permissions,
	}, nil
}

// TokenEnabled reports whether a token signing key was configured.
func (a *authService) TokenEnabled() bool {
	return a.tokenSignKey != ""
}

// CreateToken issues a signed JWT for the given username.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised
// to ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
