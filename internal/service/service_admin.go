package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/store"
	"github.com/MKhiriev/go-2048-server/models"
)

// adminService serves the read-only audit queries. Authorization trusts
// the caller-supplied username: the account must exist, hold the admin
// role and carry the specific permission for the operation. There is no
// password re-check on this path.
type adminService struct {
	userRepository store.UserRepository
	accessLog      store.AccessLogRepository

	logger *logger.Logger
}

func NewAdminService(userRepository store.UserRepository, accessLog store.AccessLogRepository, logger *logger.Logger) AdminService {
	return &adminService{
		userRepository: userRepository,
		accessLog:      accessLog,
		logger:         logger,
	}
}

// AccessData aggregates the full access log into per-username statistics.
// Every entry counts towards the username's total and advances its last
// access time; entries additionally count as a success on an exact
// "login_success" match or as a failure on a "login_failed" prefix match.
func (s *adminService) AccessData(ctx context.Context, username string, ip string) (map[string]models.AccessStats, error) {
	caller, err := s.authorize(ctx, username, models.PermissionViewAccessData)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]models.AccessStats)
	for _, entry := range s.accessLog.Entries(ctx) {
		record := stats[entry.Username]
		record.Total++
		record.LastAccess = entry.Time
		switch {
		case entry.IsLoginSuccess():
			record.LoginSuccess++
		case entry.IsLoginFailure():
			record.LoginFailed++
		}
		stats[entry.Username] = record
	}

	s.accessLog.Append(ctx, caller.Username, models.ActionViewAccessData, ip)

	return stats, nil
}

// Logs returns the full ordered log sequence verbatim.
func (s *adminService) Logs(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error) {
	caller, err := s.authorize(ctx, username, models.PermissionViewLogs)
	if err != nil {
		return nil, err
	}

	entries := s.accessLog.Entries(ctx)

	s.accessLog.Append(ctx, caller.Username, models.ActionViewLogs, ip)

	return entries, nil
}

// authorize resolves the caller-supplied username to an admin-role account
// holding the given permission. Unknown accounts, non-admin roles and
// missing permissions all collapse into ErrPermissionDenied.
func (s *adminService) authorize(ctx context.Context, username string, permission string) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		log.Error().Msg("admin query without username")
		return models.UserInfo{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUser(ctx, trimmed)
	if err != nil {
		log.Err(err).Str("username", trimmed).Msg("admin query by unknown account")
		return models.UserInfo{}, ErrPermissionDenied
	}

	if !user.IsAdmin() || !user.HasPermission(permission) {
		log.Error().
			Str("username", trimmed).
			Str("role", user.Role).
			Str("permission", permission).
			Msg("admin query without required permission")
		return models.UserInfo{}, ErrPermissionDenied
	}

	return models.UserInfo{Username: trimmed, Role: user.Role, Permissions: user.Permissions}, nil
}
