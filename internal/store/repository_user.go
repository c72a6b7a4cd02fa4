// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
)

// userRepository is the JSON-file-backed implementation of [UserRepository].
// The backing document is a single username to account mapping; it is
// re-read from disk on every call so out-of-band edits take effect without
// a restart.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	path   string
	appCfg config.App
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the JSON
// document at path. appCfg supplies the default account credentials used
// by [UserRepository.EnsureDefaults].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(path string, appCfg config.App, logger *logger.Logger) UserRepository {
	logger.Debug().Str("path", path).Msg("creating user repository")
	return &userRepository{
		path:   path,
		appCfg: appCfg,
		logger: logger,
	}
}

// Users returns the full username to account mapping. A missing or
// corrupted document degrades to an empty mapping per the durable store
// adapter contract.
func (r *userRepository) Users(ctx context.Context) map[string]models.User {
	return ReadJSONFile(r.path, map[string]models.User{}, r.logger)
}

// FindUser looks up the account keyed by the trimmed username.
//
// Returns [ErrUserNotFound] when no such account exists.
func (r *userRepository) FindUser(ctx context.Context, username string) (models.User, error) {
	users := r.Users(ctx)

	user, ok := users[strings.TrimSpace(username)]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// EnsureDefaults seeds exactly two accounts when the store is empty: an
// admin-role account with a non-empty two-factor digest, and a user-role
// account with two-factor disabled. If any accounts already exist the call
// is a no-op, so existing data is never overwritten.
func (r *userRepository) EnsureDefaults(ctx context.Context) {
	log := logger.FromContext(ctx)

	if existing := r.Users(ctx); len(existing) > 0 {
		return
	}

	now := time.Now()
	users := map[string]models.User{
		r.appCfg.AdminUsername: {
			PasswordHash:  utils.HashSecret(r.appCfg.AdminPassword),
			TwoFactorHash: utils.HashSecret(r.appCfg.AdminTwoFactorCode),
			Role:          models.RoleAdmin,
			Permissions: []string{
				models.PermissionViewAccessData,
				models.PermissionBasicModify,
				models.PermissionViewLogs,
			},
			CreatedAt: now,
		},
		r.appCfg.PlayerUsername: {
			PasswordHash:  utils.HashSecret(r.appCfg.PlayerPassword),
			TwoFactorHash: "",
			Role:          models.RoleUser,
			Permissions:   []string{models.PermissionPlayGame},
			CreatedAt:     now,
		},
	}

	if !WriteJSONFile(r.path, users, r.logger) {
		log.Error().Str("path", r.path).Msg("failed to seed default accounts")
		return
	}

	log.Info().Str("path", r.path).Msg("default accounts seeded")
}
