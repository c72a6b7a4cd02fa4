package models

import (
	"strings"
	"time"
)

// Access log actions. Failed logins carry a reason suffix after
// ActionLoginFailedPrefix (e.g. "login_failed: wrong password").
const (
	ActionLoginSuccess        = "login_success"
	ActionLoginFailedPrefix   = "login_failed"
	ActionViewAccessData      = "admin_view_access_data"
	ActionViewLogs            = "admin_view_logs"
	ActionLoginFailedNoUser   = "login_failed: user not exist"
	ActionLoginFailedPassword = "login_failed: wrong password"
	ActionLoginFailedTwoFA    = "login_failed: wrong two-factor code"
)

// AccessLogEntry is one immutable record of the append-only access log.
// Insertion order equals chronological order.
//
// JSON tags match the legacy accessLog.json document.
type AccessLogEntry struct {
	Username string    `json:"username"`
	Action   string    `json:"action"`
	IP       string    `json:"ip"`
	Time     time.Time `json:"time"`
}

// IsLoginSuccess reports whether the entry records a successful login.
func (e AccessLogEntry) IsLoginSuccess() bool {
	return e.Action == ActionLoginSuccess
}

// IsLoginFailure reports whether the entry records a failed login,
// regardless of the failure reason.
func (e AccessLogEntry) IsLoginFailure() bool {
	return strings.HasPrefix(e.Action, ActionLoginFailedPrefix)
}

// AccessStats is the per-username aggregation of access log entries
// served by the admin access-data endpoint.
type AccessStats struct {
	// LoginSuccess counts entries whose action is exactly "login_success".
	LoginSuccess int `json:"loginSuccess"`

	// LoginFailed counts entries whose action starts with "login_failed".
	LoginFailed int `json:"loginFailed"`

	// Total counts every entry attributed to the username, including
	// admin view actions.
	Total int `json:"total"`

	// LastAccess is the timestamp of the most recent entry.
	LastAccess time.Time `json:"lastAccess"`
}
