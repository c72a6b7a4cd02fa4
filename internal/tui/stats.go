package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-2048-server/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// statsModel renders the per-username login statistics table.
type statsModel struct {
	stats   map[string]models.AccessStats
	loading bool
	spinner spinner.Model
	status  string
}

func newStatsModel() statsModel {
	return statsModel{spinner: spinner.New()}
}

func (m statsModel) View() string {
	if m.loading {
		return renderPage("ACCESS STATISTICS", m.spinner.View()+" loading...", "")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-20s │ %7s │ %7s │ %7s │ %s\n", "Username", "Success", "Failed", "Total", "Last access"))
	b.WriteString("─────────────────────┼─────────┼─────────┼─────────┼────────────────────\n")

	for _, username := range sortedUsernames(m.stats) {
		record := m.stats[username]
		b.WriteString(fmt.Sprintf("%-20s │ %7d │ %7d │ %7d │ %s\n",
			fitText(username, 20),
			record.LoginSuccess,
			record.LoginFailed,
			record.Total,
			formatAccessTime(record.LastAccess),
		))
	}
	if len(m.stats) == 0 {
		b.WriteString("no access records yet\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("ACCESS STATISTICS", strings.TrimRight(b.String(), "\n"), "l: raw logs │ r: refresh │ c: copy │ q: quit")
}

func sortedUsernames(stats map[string]models.AccessStats) []string {
	usernames := make([]string, 0, len(stats))
	for username := range stats {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	return usernames
}

func formatAccessTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
