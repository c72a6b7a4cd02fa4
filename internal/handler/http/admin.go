package http

import (
	"net/http"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
)

func (h *Handler) accessData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, err := h.callerUsername(r)
	if err != nil {
		log.Err(err).Msg("access-data query without caller identity")
		h.writeError(w, err)
		return
	}

	stats, err := h.services.AdminService.AccessData(ctx, username, clientIP(r))
	if err != nil {
		log.Err(err).Str("username", username).Msg("access-data query rejected")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.Response{Success: true, Data: stats}, http.StatusOK)
}

func (h *Handler) logs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, err := h.callerUsername(r)
	if err != nil {
		log.Err(err).Msg("logs query without caller identity")
		h.writeError(w, err)
		return
	}

	entries, err := h.services.AdminService.Logs(ctx, username, clientIP(r))
	if err != nil {
		log.Err(err).Str("username", username).Msg("logs query rejected")
		h.writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.Response{Success: true, Data: entries}, http.StatusOK)
}

// callerUsername resolves the identity an admin query runs as. The legacy
// "username" query parameter wins; when it is absent and tokens are
// enabled, a bearer token may carry the identity instead. No password
// re-check happens on this path.
func (h *Handler) callerUsername(r *http.Request) (string, error) {
	if username := r.URL.Query().Get("username"); username != "" {
		return username, nil
	}

	authorizationHeader := r.Header.Get("Authorization")
	if authorizationHeader == "" || !h.services.AuthService.TokenEnabled() {
		return "", service.ErrInvalidDataProvided
	}

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return "", service.ErrInvalidDataProvided
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return "", err
	}

	return token.Username, nil
}
