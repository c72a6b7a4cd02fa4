package store

import (
	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
)

// Repositories aggregates every data-access component backed by the
// flat-file store.
type Repositories struct {
	UserRepository      UserRepository
	AccessLogRepository AccessLogRepository
	CrashReporter       CrashReporter
	RetentionPolicy     *RetentionPolicy
}

// NewRepositories wires all repositories to the documents configured in
// storageCfg. appCfg supplies the default account credentials seeded at
// first boot.
func NewRepositories(storageCfg config.Storage, appCfg config.App, logger *logger.Logger) *Repositories {
	retention := NewRetentionPolicy(storageCfg, logger)

	return &Repositories{
		UserRepository:      NewUserRepository(storageCfg.UserDataPath(), appCfg, logger),
		AccessLogRepository: NewAccessLogRepository(storageCfg.AccessLogPath(), retention, logger),
		CrashReporter:       NewCrashReporter(storageCfg.CrashLogPath(), logger),
		RetentionPolicy:     retention,
	}
}
