package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAppCfg = config.App{
	AdminUsername:      "administrator",
	AdminPassword:      "admin-pass",
	AdminTwoFactorCode: "123456",
	PlayerUsername:     "user",
	PlayerPassword:     "user-pass",
}

func newTestUserRepository(t *testing.T) UserRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "userData.json")
	return NewUserRepository(path, testAppCfg, logger.Nop())
}

// TestEnsureDefaults_SeedsTwoAccounts verifies the first-boot seed: exactly
// one admin account with a two-factor digest and one user account without.
func TestEnsureDefaults_SeedsTwoAccounts(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepository(t)

	repo.EnsureDefaults(ctx)
	users := repo.Users(ctx)
	require.Len(t, users, 2)

	admin := users["administrator"]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, utils.HashSecret("admin-pass"), admin.PasswordHash)
	assert.NotEmpty(t, admin.TwoFactorHash)
	assert.ElementsMatch(t, []string{
		models.PermissionViewAccessData,
		models.PermissionBasicModify,
		models.PermissionViewLogs,
	}, admin.Permissions)
	assert.False(t, admin.CreatedAt.IsZero())

	player := users["user"]
	assert.Equal(t, models.RoleUser, player.Role)
	assert.Empty(t, player.TwoFactorHash, "user-role account has two-factor disabled")
	assert.Equal(t, []string{models.PermissionPlayGame}, player.Permissions)
}

// TestEnsureDefaults_Idempotent verifies that a second call never
// overwrites existing data.
func TestEnsureDefaults_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "userData.json")
	repo := NewUserRepository(path, testAppCfg, logger.Nop())

	// pre-existing out-of-band account
	existing := map[string]models.User{
		"custom": {PasswordHash: "x", Role: models.RoleUser},
	}
	require.True(t, WriteJSONFile(path, existing, logger.Nop()))

	repo.EnsureDefaults(ctx)

	users := repo.Users(ctx)
	require.Len(t, users, 1)
	assert.Contains(t, users, "custom")
}

// TestFindUser_TrimsUsername verifies the trimmed-username lookup.
func TestFindUser_TrimsUsername(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepository(t)
	repo.EnsureDefaults(ctx)

	user, err := repo.FindUser(ctx, "  administrator  ")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

// TestFindUser_NotFound verifies the sentinel error for unknown accounts.
func TestFindUser_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepository(t)
	repo.EnsureDefaults(ctx)

	_, err := repo.FindUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestUsers_MissingDocument verifies that a missing store degrades to an
// empty mapping.
func TestUsers_MissingDocument(t *testing.T) {
	repo := newTestUserRepository(t)
	assert.Empty(t, repo.Users(context.Background()))
}
