package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesFixture(n int) []models.AccessLogEntry {
	entries := make([]models.AccessLogEntry, 0, n)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		entries = append(entries, models.AccessLogEntry{
			Username: fmt.Sprintf("user-%d", i),
			Action:   models.ActionLoginSuccess,
			IP:       "127.0.0.1",
			Time:     base.Add(time.Duration(i) * time.Second),
		})
	}
	return entries
}

// TestEnforceLimit_UnderThresholdNoop verifies that a small file is left
// untouched.
func TestEnforceLimit_UnderThresholdNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.True(t, WriteJSONFile(path, entriesFixture(5), logger.Nop()))

	p := NewRetentionPolicy(config.Storage{MaxLogSize: 1 << 20, KeepEntries: 3}, logger.Nop())
	p.EnforceLimit(path)

	got := ReadJSONFile(path, []models.AccessLogEntry{}, logger.Nop())
	assert.Len(t, got, 5)
}

// TestEnforceLimit_TruncatesToNewest verifies that exceeding the size
// threshold keeps exactly the most recent KeepEntries entries in insertion
// order.
func TestEnforceLimit_TruncatesToNewest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.True(t, WriteJSONFile(path, entriesFixture(250), logger.Nop()))

	// threshold of one byte forces a sweep
	p := NewRetentionPolicy(config.Storage{MaxLogSize: 1, KeepEntries: 100}, logger.Nop())
	p.EnforceLimit(path)

	got := ReadJSONFile(path, []models.AccessLogEntry{}, logger.Nop())
	require.Len(t, got, 100)
	assert.Equal(t, "user-150", got[0].Username, "oldest surviving entry")
	assert.Equal(t, "user-249", got[99].Username, "newest entry survives")
}

// TestEnforceLimit_MissingFileNoop verifies that a missing log document is
// not an error and is not created.
func TestEnforceLimit_MissingFileNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")

	p := NewRetentionPolicy(config.Storage{MaxLogSize: 1, KeepEntries: 100}, logger.Nop())
	p.EnforceLimit(path)

	got := ReadJSONFile(path, []models.AccessLogEntry(nil), logger.Nop())
	assert.Nil(t, got)
}

// TestEnforceLimit_FewerEntriesThanKeep verifies that an oversized file
// with fewer entries than the keep count is rewritten without loss.
func TestEnforceLimit_FewerEntriesThanKeep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.True(t, WriteJSONFile(path, entriesFixture(10), logger.Nop()))

	p := NewRetentionPolicy(config.Storage{MaxLogSize: 1, KeepEntries: 100}, logger.Nop())
	p.EnforceLimit(path)

	got := ReadJSONFile(path, []models.AccessLogEntry{}, logger.Nop())
	assert.Len(t, got, 10)
}
