package service

import (
	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/store"
)

type Services struct {
	AuthService  AuthService
	AdminService AdminService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(repositories.UserRepository, repositories.AccessLogRepository, cfg.App, logger),
		AdminService: NewAdminService(repositories.UserRepository, repositories.AccessLogRepository, logger),
	}
}
