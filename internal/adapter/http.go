package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig carries the connection parameters of the admin client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a resty-backed [ServerAdapter] pointed at the
// given base URL.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password, twoFactorCode string) (models.UserInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{
			Username:      &username,
			Password:      &password,
			TwoFactorCode: twoFactorCode,
		}).
		Post("/api/login")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	var envelope struct {
		Success  bool             `json:"success"`
		UserInfo *models.UserInfo `json:"userInfo"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.UserInfo{}, fmt.Errorf("decode login response: %w", err)
	}
	if envelope.UserInfo == nil {
		return models.UserInfo{}, fmt.Errorf("login response without user info")
	}

	// the server attaches a bearer token only when tokens are enabled
	if header := resp.Header().Get("Authorization"); header != "" {
		h.SetToken(strings.TrimPrefix(header, "Bearer "))
	}

	return *envelope.UserInfo, nil
}

func (h *httpServerAdapter) AccessData(ctx context.Context, username string) (map[string]models.AccessStats, error) {
	resp, err := h.adminRequest(ctx, username).Get("/api/admin/access-data")
	if err != nil {
		return nil, fmt.Errorf("access-data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool                          `json:"success"`
		Data    map[string]models.AccessStats `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode access-data response: %w", err)
	}

	return envelope.Data, nil
}

func (h *httpServerAdapter) Logs(ctx context.Context, username string) ([]models.AccessLogEntry, error) {
	resp, err := h.adminRequest(ctx, username).Get("/api/admin/logs")
	if err != nil {
		return nil, fmt.Errorf("logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool                    `json:"success"`
		Data    []models.AccessLogEntry `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode logs response: %w", err)
	}

	return envelope.Data, nil
}

// adminRequest prepares an admin query carrying the caller identity either
// as the legacy username parameter or as a bearer token.
func (h *httpServerAdapter) adminRequest(ctx context.Context, username string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if username != "" {
		req.SetQueryParam("username", username)
	}
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
