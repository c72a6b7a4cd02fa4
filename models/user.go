package models

import (
	"slices"
	"time"
)

// Account roles. The server knows exactly two of them.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Permissions attached to the default accounts.
const (
	PermissionViewAccessData = "view_access_data"
	PermissionBasicModify    = "basic_modify"
	PermissionViewLogs       = "view_logs"
	PermissionPlayGame       = "play_game"
)

// User represents an account entity used for authentication and authorization.
// Accounts are keyed by username in the user store document, so the username
// itself is not part of the persisted record.
// Sensitive fields hold digests only; plaintext secrets are never stored.
//
// JSON tags match the legacy userData.json document so existing store files
// load unchanged.
type User struct {
	// PasswordHash is the deterministic digest of the account password.
	PasswordHash string `json:"password"`

	// TwoFactorHash is the digest of the secondary shared secret required
	// for admin-role logins. Empty means two-factor is not required.
	TwoFactorHash string `json:"twoFactorCode"`

	// Role is either RoleAdmin or RoleUser.
	Role string `json:"role"`

	// Permissions is the set of operation names this account may perform.
	Permissions []string `json:"permissions"`

	// CreatedAt is the timestamp when the account was seeded.
	CreatedAt time.Time `json:"createTime"`
}

// HasPermission reports whether the account holds the named permission.
func (u User) HasPermission(permission string) bool {
	return slices.Contains(u.Permissions, permission)
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserInfo is the public projection of a [User] returned on successful
// login. Credential digests are deliberately absent.
type UserInfo struct {
	Username    string   `json:"username"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
