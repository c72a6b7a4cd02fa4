package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-2048-server/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// visibleLogLines bounds how many entries fit on one screen of the log view.
const visibleLogLines = 20

// logsModel renders the raw audit log with a movable cursor.
type logsModel struct {
	entries []models.AccessLogEntry
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newLogsModel() logsModel {
	return logsModel{spinner: spinner.New()}
}

func (m logsModel) View() string {
	if m.loading {
		return renderPage("AUDIT LOG", m.spinner.View()+" loading...", "")
	}

	var b strings.Builder
	if len(m.entries) == 0 {
		b.WriteString("no audit entries yet\n")
	}

	start := 0
	if m.idx >= visibleLogLines {
		start = m.idx - visibleLogLines + 1
	}
	end := min(start+visibleLogLines, len(m.entries))

	for i := start; i < end; i++ {
		entry := m.entries[i]
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s  %-20s %-40s %s\n",
			cursor,
			formatAccessTime(entry.Time),
			fitText(entry.Username, 20),
			fitText(entry.Action, 40),
			entry.IP,
		))
	}

	if len(m.entries) > 0 {
		b.WriteString(fmt.Sprintf("\n%d/%d entries", m.idx+1, len(m.entries)))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("AUDIT LOG", strings.TrimRight(b.String(), "\n"), "s: statistics │ r: refresh │ c: copy entry │ q: quit")
}

func (m logsModel) current() (models.AccessLogEntry, bool) {
	if m.idx < 0 || m.idx >= len(m.entries) {
		return models.AccessLogEntry{}, false
	}
	return m.entries[m.idx], true
}
