package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performAdminGet(t *testing.T, h *Handler, target string, header http.Header) (*httptest.ResponseRecorder, models.Response) {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, target, nil)
	request.RemoteAddr = "192.0.2.1:51234"
	for key, values := range header {
		request.Header[key] = values
	}
	recorder := httptest.NewRecorder()

	router := h.Init()
	router.ServeHTTP(recorder, request)

	var response models.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return recorder, response
}

func TestAccessData_Success(t *testing.T) {
	lastAccess := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	admin := &mockAdminService{
		accessDataFn: func(ctx context.Context, username string, ip string) (map[string]models.AccessStats, error) {
			assert.Equal(t, "administrator", username)
			return map[string]models.AccessStats{
				"alice": {LoginSuccess: 2, LoginFailed: 1, Total: 3, LastAccess: lastAccess},
			}, nil
		},
	}
	h := newTestHandler(&mockAuthService{}, admin)

	recorder, response := performAdminGet(t, h, "/api/admin/access-data?username=administrator", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, response.Success)

	data, err := json.Marshal(response.Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alice":{"loginSuccess":2,"loginFailed":1,"total":3,"lastAccess":"2026-03-01T12:00:00Z"}}`, string(data))
}

func TestAdminEndpoints_MissingUsername(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockAdminService{})

	for _, target := range []string{"/api/admin/access-data", "/api/admin/logs"} {
		recorder, response := performAdminGet(t, h, target, nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
		assert.False(t, response.Success)
		assert.Equal(t, "invalid request format", response.Message)
	}
}

func TestAdminEndpoints_PermissionDenied(t *testing.T) {
	admin := &mockAdminService{
		accessDataFn: func(ctx context.Context, username string, ip string) (map[string]models.AccessStats, error) {
			return nil, service.ErrPermissionDenied
		},
		logsFn: func(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error) {
			return nil, service.ErrPermissionDenied
		},
	}
	h := newTestHandler(&mockAuthService{}, admin)

	for _, target := range []string{"/api/admin/access-data?username=user", "/api/admin/logs?username=user"} {
		recorder, response := performAdminGet(t, h, target, nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code, target)
		assert.False(t, response.Success)
		assert.Equal(t, "no access permission", response.Message)
	}
}

func TestLogs_Success(t *testing.T) {
	admin := &mockAdminService{
		logsFn: func(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error) {
			return []models.AccessLogEntry{
				{Username: "alice", Action: models.ActionLoginSuccess, IP: "1.1.1.1"},
			}, nil
		},
	}
	h := newTestHandler(&mockAuthService{}, admin)

	recorder, response := performAdminGet(t, h, "/api/admin/logs?username=administrator", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, response.Success)
	require.NotNil(t, response.Data)
}

func TestAdminEndpoints_BearerFallback(t *testing.T) {
	auth := &mockAuthService{
		tokenEnabled: true,
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "signed-token", tokenString)
			return models.Token{Username: "administrator"}, nil
		},
	}
	admin := &mockAdminService{
		logsFn: func(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error) {
			assert.Equal(t, "administrator", username, "identity must come from the bearer token")
			return nil, nil
		},
	}
	h := newTestHandler(auth, admin)

	header := http.Header{"Authorization": []string{"Bearer signed-token"}}
	recorder, response := performAdminGet(t, h, "/api/admin/logs", header)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, response.Success)
}

func TestAdminEndpoints_InvalidBearerToken(t *testing.T) {
	auth := &mockAuthService{
		tokenEnabled: true,
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(auth, &mockAdminService{})

	header := http.Header{"Authorization": []string{"Bearer expired"}}
	recorder, response := performAdminGet(t, h, "/api/admin/logs", header)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "token is expired or invalid", response.Message)
}

func TestAdminEndpoints_QueryParamWinsOverBearer(t *testing.T) {
	auth := &mockAuthService{
		tokenEnabled: true,
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			t.Fatal("token must not be parsed when the username parameter is present")
			return models.Token{}, nil
		},
	}
	admin := &mockAdminService{
		logsFn: func(ctx context.Context, username string, ip string) ([]models.AccessLogEntry, error) {
			assert.Equal(t, "administrator", username)
			return nil, nil
		},
	}
	h := newTestHandler(auth, admin)

	header := http.Header{"Authorization": []string{"Bearer signed-token"}}
	recorder, _ := performAdminGet(t, h, "/api/admin/logs?username=administrator", header)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
