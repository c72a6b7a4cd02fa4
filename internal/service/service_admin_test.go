package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminService(accessLog *mockAccessLog) AdminService {
	return NewAdminService(fixtureUserRepository(), accessLog, logger.Nop())
}

// ─────────────────────────────────────────────
// Authorization
// ─────────────────────────────────────────────

func TestAdminQueries_EmptyUsername(t *testing.T) {
	svc := newTestAdminService(&mockAccessLog{})
	ctx := context.Background()

	_, err := svc.AccessData(ctx, "   ", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Logs(ctx, "", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAdminQueries_PermissionDenied(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{name: "unknown account", username: "nobody"},
		{name: "user-role account", username: "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessLog := &mockAccessLog{}
			svc := newTestAdminService(accessLog)
			ctx := context.Background()

			_, err := svc.AccessData(ctx, tt.username, "127.0.0.1")
			assert.ErrorIs(t, err, ErrPermissionDenied)

			_, err = svc.Logs(ctx, tt.username, "127.0.0.1")
			assert.ErrorIs(t, err, ErrPermissionDenied)

			assert.Empty(t, accessLog.appended, "denied queries are not audited as views")
		})
	}
}

func TestAdminQueries_TrimUsername(t *testing.T) {
	accessLog := &mockAccessLog{}
	svc := newTestAdminService(accessLog)

	_, err := svc.Logs(context.Background(), "  administrator  ", "127.0.0.1")

	require.NoError(t, err)
	require.Len(t, accessLog.appended, 1)
	assert.Equal(t, "administrator", accessLog.appended[0].Username)
}

// ─────────────────────────────────────────────
// AccessData
// ─────────────────────────────────────────────

func TestAccessData_AggregatesPerUsername(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	accessLog := &mockAccessLog{entries: []models.AccessLogEntry{
		{Username: "alice", Action: models.ActionLoginSuccess, Time: base},
		{Username: "alice", Action: models.ActionLoginFailedPassword, Time: base.Add(time.Minute)},
		{Username: "alice", Action: models.ActionLoginSuccess, Time: base.Add(2 * time.Minute)},
		{Username: "bob", Action: models.ActionLoginFailedNoUser, Time: base.Add(3 * time.Minute)},
	}}
	svc := newTestAdminService(accessLog)

	stats, err := svc.AccessData(context.Background(), "administrator", "127.0.0.1")

	require.NoError(t, err)
	require.Len(t, stats, 2)

	alice := stats["alice"]
	assert.Equal(t, 2, alice.LoginSuccess)
	assert.Equal(t, 1, alice.LoginFailed)
	assert.Equal(t, 3, alice.Total)
	assert.Equal(t, base.Add(2*time.Minute), alice.LastAccess)

	bob := stats["bob"]
	assert.Equal(t, 0, bob.LoginSuccess)
	assert.Equal(t, 1, bob.LoginFailed)
	assert.Equal(t, 1, bob.Total)
}

func TestAccessData_CountsNonLoginActionsInTotalOnly(t *testing.T) {
	accessLog := &mockAccessLog{entries: []models.AccessLogEntry{
		{Username: "administrator", Action: models.ActionViewLogs, Time: time.Now()},
	}}
	svc := newTestAdminService(accessLog)

	stats, err := svc.AccessData(context.Background(), "administrator", "127.0.0.1")

	require.NoError(t, err)
	admin := stats["administrator"]
	assert.Equal(t, 1, admin.Total)
	assert.Zero(t, admin.LoginSuccess)
	assert.Zero(t, admin.LoginFailed)
}

func TestAccessData_EmptyLog(t *testing.T) {
	svc := newTestAdminService(&mockAccessLog{})

	stats, err := svc.AccessData(context.Background(), "administrator", "127.0.0.1")

	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestAccessData_AuditsView(t *testing.T) {
	accessLog := &mockAccessLog{}
	svc := newTestAdminService(accessLog)

	_, err := svc.AccessData(context.Background(), "administrator", "10.1.1.1")

	require.NoError(t, err)
	require.Len(t, accessLog.appended, 1)
	assert.Equal(t, models.ActionViewAccessData, accessLog.appended[0].Action)
	assert.Equal(t, "10.1.1.1", accessLog.appended[0].IP)
}

// ─────────────────────────────────────────────
// Logs
// ─────────────────────────────────────────────

func TestLogs_ReturnsFullSequenceInOrder(t *testing.T) {
	entries := []models.AccessLogEntry{
		{Username: "alice", Action: models.ActionLoginSuccess, IP: "1.1.1.1"},
		{Username: "bob", Action: models.ActionLoginFailedPassword, IP: "2.2.2.2"},
	}
	accessLog := &mockAccessLog{entries: entries}
	svc := newTestAdminService(accessLog)

	got, err := svc.Logs(context.Background(), "administrator", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, entries, got)

	require.Len(t, accessLog.appended, 1)
	assert.Equal(t, models.ActionViewLogs, accessLog.appended[0].Action)
}
