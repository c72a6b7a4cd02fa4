// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, service.ErrInvalidDataProvided)
		return
	}

	userInfo, err := h.services.AuthService.Login(ctx, request, clientIP(r))
	if err != nil {
		log.Err(err).Msg("login attempt failed")
		h.writeError(w, err)
		return
	}

	log.Info().Str("username", userInfo.Username).Str("role", userInfo.Role).Msg("user successfully logged in")

	if h.services.AuthService.TokenEnabled() {
		token, err := h.services.AuthService.CreateToken(ctx, userInfo.Username)
		if err != nil {
			log.Err(err).Msg("creation of token failed")
			h.writeError(w, err)
			return
		}
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	}

	_, _ = utils.WriteJSON(w, models.Response{Success: true, UserInfo: &userInfo}, http.StatusOK)
}

// clientIP resolves the peer address for audit entries. middleware.RealIP
// has already folded X-Forwarded-For/X-Real-IP into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
