package http

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/models"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, request models.LoginRequest, ip string) (models.UserInfo, error)
	createTokenFn func(ctx context.Context, username string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	tokenEnabled  bool
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest, ip string) (models.UserInfo, error) {
	return m.loginFn(ctx, request, ip)
}

func (m *mockAuthService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, username)
	}
	return models.Token{SignedString: "stub-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) TokenEnabled() bool { return m.tokenEnabled }

// ─────────────────────────────────────────────
// Mock service.AdminService
// ─────────────────────────────────────────────

type mockAdminService struct {
	accessDataFn func(ctx context.Context, username string, ip string) (map[string]models.AccessStats, error)
	logsFn       func(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error)
}

func (m *mockAdminService) AccessData(ctx context.Context, username string, ip string) (map[string]models.AccessStats, error) {
	return m.accessDataFn(ctx, username, ip)
}

func (m *mockAdminService) Logs(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error) {
	return m.logsFn(ctx, username, ip)
}

// ─────────────────────────────────────────────
// Mock store.CrashReporter
// ─────────────────────────────────────────────

type mockCrashReporter struct {
	mu      sync.Mutex
	reasons []any
}

func (m *mockCrashReporter) Record(reason any, stack []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reasons = append(m.reasons, reason)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth service.AuthService, admin service.AdminService) *Handler {
	svcs := &service.Services{
		AuthService:  auth,
		AdminService: admin,
	}
	return NewHandler(svcs, &mockCrashReporter{}, config.Server{StaticDir: "."}, logger.Nop())
}
