package store

import (
	"errors"
	"os"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/models"
)

// RetentionPolicy caps the size of an append-only log document: once the
// file exceeds MaxFileSize bytes, only the most recent KeepEntries entries
// survive the sweep.
type RetentionPolicy struct {
	// MaxFileSize is the size threshold in bytes that triggers a sweep.
	MaxFileSize int64

	// KeepEntries is the number of newest entries kept by a sweep.
	KeepEntries int

	logger *logger.Logger
}

// NewRetentionPolicy constructs a [RetentionPolicy] from storage settings.
func NewRetentionPolicy(cfg config.Storage, logger *logger.Logger) *RetentionPolicy {
	return &RetentionPolicy{
		MaxFileSize: cfg.MaxLogSize,
		KeepEntries: cfg.KeepEntries,
		logger:      logger,
	}
}

// EnforceLimit truncates the log document at path to the most recent
// KeepEntries entries when the file exceeds MaxFileSize.
//
// It is invoked at startup, before every append, and periodically by the
// retention worker, so the file never grows unbounded between checks. Any
// failure is logged and swallowed; enforcement must never block the append
// it guards.
func (p *RetentionPolicy) EnforceLimit(path string) {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.logger.Err(err).Str("path", path).Msg("retention: stat failed")
		}
		return
	}

	if info.Size() <= p.MaxFileSize {
		return
	}

	entries := ReadJSONFile(path, []models.AccessLogEntry{}, p.logger)
	if len(entries) > p.KeepEntries {
		entries = entries[len(entries)-p.KeepEntries:]
	}

	if !WriteJSONFile(path, entries, p.logger) {
		p.logger.Error().Str("path", path).Msg("retention: rewrite failed")
		return
	}

	p.logger.Info().Str("path", path).Int("kept", len(entries)).Msg("log document truncated by retention sweep")
}
