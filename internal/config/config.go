// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-2048-server application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin session token
	// parameters and the default account credentials seeded at first boot.
	App App `envPrefix:"APP_"`

	// Server holds network and static-asset settings for the HTTP server.
	// It carries no env prefix so that the legacy PORT variable keeps
	// working for existing deployments.
	Server Server

	// Storage holds the flat-file persistence settings: document paths,
	// the log size threshold, and the retention count.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify the JWT issued
	// on successful login. When empty, no token is issued and admin
	// endpoints fall back to the legacy username query parameter only.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminUsername is the name of the admin account seeded at first boot.
	// Env: APP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPassword is the plaintext password of the seeded admin account.
	// Only its digest is ever persisted.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// AdminTwoFactorCode is the plaintext secondary secret of the seeded
	// admin account. Only its digest is ever persisted.
	// Env: APP_ADMIN_TWO_FACTOR_CODE
	AdminTwoFactorCode string `env:"ADMIN_TWO_FACTOR_CODE"`

	// PlayerUsername is the name of the user-role account seeded at first
	// boot. Env: APP_PLAYER_USERNAME
	PlayerUsername string `env:"PLAYER_USERNAME"`

	// PlayerPassword is the plaintext password of the seeded user-role
	// account. Env: APP_PLAYER_PASSWORD
	PlayerPassword string `env:"PLAYER_PASSWORD"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// Port is the TCP port on which the HTTP server listens. When the port
	// is already in use, the server retries once on Port+1.
	// Env: PORT (legacy, unprefixed)
	Port int `env:"PORT"`

	// StaticDir is the directory the game assets and login page are served
	// from. Env: STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Storage holds flat-file persistence settings. All state lives in two
// JSON documents plus a crash record, each resolved against DataDir.
type Storage struct {
	// DataDir is the directory holding all persisted JSON documents.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// UserFile is the file name of the user credential document.
	// Env: STORAGE_USER_FILE
	UserFile string `env:"USER_FILE"`

	// LogFile is the file name of the access log document.
	// Env: STORAGE_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// CrashFile is the file name of the crash record document.
	// Env: STORAGE_CRASH_FILE
	CrashFile string `env:"CRASH_FILE"`

	// MaxLogSize is the size threshold in bytes above which the access log
	// is truncated to the most recent KeepEntries entries.
	// Env: STORAGE_MAX_LOG_SIZE
	MaxLogSize int64 `env:"MAX_LOG_SIZE"`

	// KeepEntries is the number of newest log entries that survive a
	// retention sweep. Env: STORAGE_KEEP_ENTRIES
	KeepEntries int `env:"KEEP_ENTRIES"`
}

// UserDataPath returns the full path of the user credential document.
func (s Storage) UserDataPath() string {
	return filepath.Join(s.DataDir, s.UserFile)
}

// AccessLogPath returns the full path of the access log document.
func (s Storage) AccessLogPath() string {
	return filepath.Join(s.DataDir, s.LogFile)
}

// CrashLogPath returns the full path of the crash record document.
func (s Storage) CrashLogPath() string {
	return filepath.Join(s.DataDir, s.CrashFile)
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RetentionInterval is how often the background retention sweep runs
	// over the access log. Zero disables the worker; the sweep before
	// every append still applies. Env: WORKERS_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
