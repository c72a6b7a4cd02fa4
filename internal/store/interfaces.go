package store

import (
	"context"

	"github.com/MKhiriev/go-2048-server/models"
)

// UserRepository is the data-access layer for the user credential document.
// Implementations re-read the backing store on every call; there is no
// in-process cache.
type UserRepository interface {
	// Users returns the full username to account mapping. Storage faults
	// degrade to an empty mapping, never an error.
	Users(ctx context.Context) map[string]models.User

	// FindUser looks up the account for the trimmed username.
	// Returns ErrUserNotFound when no such account exists.
	FindUser(ctx context.Context, username string) (models.User, error)

	// EnsureDefaults seeds the two default accounts if and only if the
	// store holds no accounts at all. Idempotent; never overwrites
	// existing data.
	EnsureDefaults(ctx context.Context)
}

// AccessLogRepository is the data-access layer for the append-only access
// log document.
type AccessLogRepository interface {
	// Entries returns the full ordered log sequence. Storage faults
	// degrade to an empty sequence, never an error.
	Entries(ctx context.Context) []models.AccessLogEntry

	// Append records one entry, substituting "unknown" for empty fields
	// and enforcing retention before the write. All failures are logged
	// and swallowed; audit faults must not block the user-facing response.
	Append(ctx context.Context, username, action, ip string)

	// EnforceRetention runs one retention sweep over the log document.
	EnforceRetention(ctx context.Context)
}

// CrashReporter persists crash records for post-mortem inspection.
type CrashReporter interface {
	// Record appends one crash record; failures are logged and swallowed.
	Record(reason any, stack []byte)
}
