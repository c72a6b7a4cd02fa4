// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/models"
)

// unknownField substitutes any missing entry field so a malformed audit
// call still leaves a traceable record.
const unknownField = "unknown"

// accessLogRepository is the JSON-file-backed implementation of
// [AccessLogRepository]. The backing document is an ordered JSON array;
// insertion order equals chronological order.
type accessLogRepository struct {
	path      string
	retention *RetentionPolicy
	logger    *logger.Logger
}

// NewAccessLogRepository constructs an [AccessLogRepository] backed by the
// JSON document at path, guarded by the given retention policy.
func NewAccessLogRepository(path string, retention *RetentionPolicy, logger *logger.Logger) AccessLogRepository {
	logger.Debug().Str("path", path).Msg("creating access log repository")
	return &accessLogRepository{
		path:      path,
		retention: retention,
		logger:    logger,
	}
}

// Entries returns the full ordered log sequence. A missing or corrupted
// document degrades to an empty sequence per the durable store adapter
// contract.
func (r *accessLogRepository) Entries(ctx context.Context) []models.AccessLogEntry {
	return ReadJSONFile(r.path, []models.AccessLogEntry{}, r.logger)
}

// Append records one entry at the end of the log.
//
// Empty fields are substituted with "unknown". Retention is enforced
// before the read-modify-write so the document cannot grow unbounded
// between appends. Write failures are logged and swallowed: an audit
// fault never blocks the user-facing response it accompanies.
func (r *accessLogRepository) Append(ctx context.Context, username, action, ip string) {
	log := logger.FromContext(ctx)

	if username == "" {
		username = unknownField
	}
	if action == "" {
		action = unknownField
	}
	if ip == "" {
		ip = unknownField
	}

	r.retention.EnforceLimit(r.path)

	entries := r.Entries(ctx)
	entries = append(entries, models.AccessLogEntry{
		Username: username,
		Action:   action,
		IP:       ip,
		Time:     time.Now(),
	})

	if !WriteJSONFile(r.path, entries, r.logger) {
		log.Error().
			Str("path", r.path).
			Str("username", username).
			Str("action", action).
			Msg("failed to append access log entry")
	}
}

// EnforceRetention runs one retention sweep over the log document.
func (r *accessLogRepository) EnforceRetention(ctx context.Context) {
	r.retention.EnforceLimit(r.path)
}
