package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/models"
)

// crashReporter appends crash records to a JSON document through the
// durable store adapter. The process is deliberately kept alive after a
// crash record is written; restarting is the job of the external process
// supervisor.
type crashReporter struct {
	path   string
	logger *logger.Logger
}

// NewCrashReporter constructs a [CrashReporter] backed by the JSON
// document at path.
func NewCrashReporter(path string, logger *logger.Logger) CrashReporter {
	return &crashReporter{path: path, logger: logger}
}

// Record appends one crash record with the panic reason and stack trace.
// Failures are logged and swallowed.
func (c *crashReporter) Record(reason any, stack []byte) {
	records := ReadJSONFile(c.path, []models.CrashRecord{}, c.logger)
	records = append(records, models.CrashRecord{
		Time:  time.Now().Format(time.RFC3339),
		Error: fmt.Sprintf("%v", reason),
		Stack: string(stack),
	})

	if !WriteJSONFile(c.path, records, c.logger) {
		c.logger.Error().Str("path", c.path).Msg("failed to write crash record")
	}
}
