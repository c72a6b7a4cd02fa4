package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/utils"
	"github.com/MKhiriev/go-2048-server/models"
)

// withCrashRecovery catches panics escaping a request handler, writes one
// crash record and answers with a generic 500. The process stays alive;
// restarting after a fault is the external supervisor's job.
func (h *Handler) withCrashRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			reason := recover()
			if reason == nil {
				return
			}
			if reason == http.ErrAbortHandler {
				panic(reason)
			}

			stack := debug.Stack()
			logger.FromRequest(r).Error().
				Any("reason", reason).
				Str("uri", r.RequestURI).
				Bytes("stack", stack).
				Msg("request handler panicked")

			h.crashReporter.Record(reason, stack)

			_, _ = utils.WriteJSON(w, models.Response{
				Success: false,
				Message: "internal server error",
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
