package service

import (
	"context"

	"github.com/MKhiriev/go-2048-server/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	usersFn    func(ctx context.Context) map[string]models.User
	findUserFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) Users(ctx context.Context) map[string]models.User {
	if m.usersFn != nil {
		return m.usersFn(ctx)
	}
	return nil
}

func (m *mockUserRepository) FindUser(ctx context.Context, username string) (models.User, error) {
	if m.findUserFn != nil {
		return m.findUserFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) EnsureDefaults(ctx context.Context) {}

// ─────────────────────────────────────────────
// Mock: store.AccessLogRepository
// ─────────────────────────────────────────────

// mockAccessLog records every Append call so tests can assert on the audit
// trail a service operation produced.
type mockAccessLog struct {
	entries  []models.AccessLogEntry
	appended []models.AccessLogEntry
}

func (m *mockAccessLog) Entries(ctx context.Context) []models.AccessLogEntry {
	return m.entries
}

func (m *mockAccessLog) Append(ctx context.Context, username, action, ip string) {
	m.appended = append(m.appended, models.AccessLogEntry{
		Username: username,
		Action:   action,
		IP:       ip,
	})
}

func (m *mockAccessLog) EnforceRetention(ctx context.Context) {}
