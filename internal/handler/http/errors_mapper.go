package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/internal/store"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrUserNotFound:              http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrWrongTwoFactorCode:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrPermissionDenied: http.StatusForbidden,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid request format",

	store.ErrUserNotFound:              "username does not exist",
	service.ErrWrongPassword:           "wrong password",
	service.ErrWrongTwoFactorCode:      "wrong two-factor code",
	service.ErrTokenIsExpiredOrInvalid: "token is expired or invalid",

	service.ErrPermissionDenied: "no access permission",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError resolves the user-facing failure message. Unexpected
// errors collapse into a generic message so no internal detail leaks.
func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "internal server error"
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	_, _ = utils.WriteJSON(w, models.Response{
		Success: false,
		Message: messageFromError(err),
	}, statusFromError(err))
}
