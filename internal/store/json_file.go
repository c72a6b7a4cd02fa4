// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/MKhiriev/go-2048-server/internal/logger"
)

// File name suffixes used by the durable JSON-file adapter.
const (
	backupSuffix    = ".backup"
	corruptedSuffix = ".corrupted"
)

// ReadJSONFile loads the JSON document at path into a value of type T.
//
// The adapter favors availability over strict consistency and never
// returns an error to the caller:
//   - a missing file yields defaultValue;
//   - a zero-length file is quarantined (renamed to a ".corrupted"
//     sibling, preserved for forensics) and defaultValue is returned;
//   - a file that cannot be read or parsed triggers exactly one recovery
//     attempt: the ".backup" sibling, when present, is copied over the
//     primary and the read is retried once; if recovery also fails,
//     defaultValue is returned and the failure is logged.
//
// Unmarshalling into the concrete type T doubles as a shape check: a
// document whose top-level shape does not match T follows the same
// recovery path as a corrupted one.
func ReadJSONFile[T any](path string, defaultValue T, log *logger.Logger) T {
	// bounded retry: the second pass runs only after a backup restore
	for attempt := 0; attempt < 2; attempt++ {
		info, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return defaultValue
		}

		if err == nil && info.Size() == 0 {
			if renameErr := os.Rename(path, path+corruptedSuffix); renameErr != nil {
				log.Err(renameErr).Str("path", path).Msg("failed to quarantine empty store document")
			} else {
				log.Warn().Str("path", path).Msg("empty store document quarantined")
			}
			return defaultValue
		}

		if err == nil {
			var data []byte
			if data, err = os.ReadFile(path); err == nil {
				var value T
				if err = json.Unmarshal(data, &value); err == nil {
					return value
				}
			}
		}

		log.Err(err).Str("path", path).Int("attempt", attempt).Msg("error reading store document")

		if attempt == 0 && restoreFromBackup(path, log) {
			continue
		}

		return defaultValue
	}

	return defaultValue
}

// WriteJSONFile persists value as JSON at path.
//
// The existing primary is copied to a ".backup" sibling first, so a crash
// mid-write leaves at most the primary corrupted while the backup remains
// valid from the prior generation. The backup is best-effort: its failure
// never blocks the write. The document is written pretty-printed; on any
// write failure one retry is made with compact JSON.
//
// Returns false only if both attempts fail. Never returns an error.
func WriteJSONFile(path string, value any, log *logger.Logger) bool {
	if _, err := os.Stat(path); err == nil {
		if backupErr := copyFile(path, path+backupSuffix); backupErr != nil {
			log.Warn().Err(backupErr).Str("path", path).Msg("failed to back up store document before write")
		}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err == nil {
		if writeErr := os.WriteFile(path, data, 0644); writeErr == nil {
			return true
		} else {
			err = writeErr
		}
	}

	log.Err(err).Str("path", path).Msg("error writing store document, retrying with compact JSON")

	data, err = json.Marshal(value)
	if err != nil {
		log.Err(err).Str("path", path).Msg("retry write still failed")
		return false
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Err(err).Str("path", path).Msg("retry write still failed")
		return false
	}

	return true
}

// restoreFromBackup copies the ".backup" sibling over the primary document.
// Returns true when a retry of the read is worthwhile.
func restoreFromBackup(path string, log *logger.Logger) bool {
	backupPath := path + backupSuffix
	if _, err := os.Stat(backupPath); err != nil {
		return false
	}

	if err := copyFile(backupPath, path); err != nil {
		log.Err(err).Str("path", path).Msg("backup recovery failed")
		return false
	}

	log.Warn().Str("path", path).Msg("store document restored from backup")
	return true
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
