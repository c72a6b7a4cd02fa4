package service

import (
	"context"

	"github.com/MKhiriev/go-2048-server/models"
)

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest, ip string) (models.UserInfo, error)
	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	TokenEnabled() bool
}

type AdminService interface {
	AccessData(ctx context.Context, username string, ip string) (map[string]models.AccessStats, error)
	Logs(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error)
}
