package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-2048-server/models"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_CORSAllowsAnyOrigin(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockAdminService{})
	router := h.Init()

	request := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	request.Header.Set("Origin", "http://game.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_TraceIDHeaderSet(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, request models.LoginRequest, ip string) (models.UserInfo, error) {
			return models.UserInfo{Username: "user", Role: models.RoleUser}, nil
		},
	}
	h := newTestHandler(auth, &mockAdminService{})
	router := h.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.NotEmpty(t, recorder.Header().Get(traceIDHeader))
}

func TestRoutes_TraceIDHeaderEchoed(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockAdminService{})
	router := h.Init()

	request := httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil)
	request.Header.Set(traceIDHeader, "trace-from-client")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, "trace-from-client", recorder.Header().Get(traceIDHeader))
}
