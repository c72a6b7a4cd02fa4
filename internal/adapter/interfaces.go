// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the game server's JSON API.
//
// The primary abstraction is [ServerAdapter], which decouples the admin TUI
// from the underlying protocol. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-2048-server/models"
)

// ServerAdapter defines the client-side view of the server API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to subsequent
	// admin requests. It is called automatically after a successful Login
	// when the server issues tokens.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates against POST /api/login and returns the public
	// account view on success.
	Login(ctx context.Context, username, password, twoFactorCode string) (models.UserInfo, error)

	// AccessData fetches the aggregated per-username login statistics.
	// username may be empty when a bearer token is held.
	AccessData(ctx context.Context, username string) (map[string]models.AccessStats, error)

	// Logs fetches the full ordered audit log.
	// username may be empty when a bearer token is held.
	Logs(ctx context.Context, username string) ([]models.AccessLogEntry, error)
}
