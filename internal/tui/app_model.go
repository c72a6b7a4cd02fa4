package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/adapter"
	"github.com/MKhiriev/go-2048-server/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenStats
	screenLogs
)

type appModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	currentScreen screen

	login loginModel
	stats statsModel
	logs  logsModel

	// username of the logged-in admin, passed to the audit queries
	username string

	err error
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		stats:         newStatsModel(),
		logs:          newLogsModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.info.Role != models.RoleAdmin {
			m.login.errMsg = "account is not an admin"
			return m, nil
		}
		m.username = msg.info.Username
		m.currentScreen = screenStats
		m.stats.loading = true
		return m, tea.Batch(m.stats.spinner.Tick, m.cmdLoadStats())
	case statsLoadedMsg:
		m.stats.loading = false
		if msg.err != nil {
			m.stats.status = errorStyle.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.stats.stats = msg.stats
		return m, nil
	case logsLoadedMsg:
		m.logs.loading = false
		if msg.err != nil {
			m.logs.status = errorStyle.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.logs.entries = msg.entries
		if m.logs.idx >= len(m.logs.entries) {
			m.logs.idx = len(m.logs.entries) - 1
		}
		if m.logs.idx < 0 {
			m.logs.idx = 0
		}
		return m, nil
	case copiedMsg:
		m.stats.status = "Copied!"
		m.logs.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.stats.status = ""
		m.logs.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		switch {
		case m.stats.loading:
			m.stats.spinner, cmd = m.stats.spinner.Update(msg)
		case m.logs.loading:
			m.logs.spinner, cmd = m.logs.spinner.Update(msg)
		}
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenStats:
		return m.updateStats(msg)
	case screenLogs:
		return m.updateLogs(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenStats:
		body = m.stats.View()
	case screenLogs:
		body = m.logs.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNext(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrev(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			twoFactorCode := strings.TrimSpace(m.login.inputs[2].Value())
			if username == "" || password == "" {
				m.login.errMsg = "username and password are required"
				return m, nil
			}

			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(username, password, twoFactorCode)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logs):
		m.currentScreen = screenLogs
		m.logs.loading = true
		return m, tea.Batch(m.logs.spinner.Tick, m.cmdLoadLogs())
	case key.Matches(keyMsg, keys.refresh):
		m.stats.loading = true
		return m, tea.Batch(m.stats.spinner.Tick, m.cmdLoadStats())
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyJSON(m.stats.stats)
	}

	return m, nil
}

func (m appModel) updateLogs(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.stats):
		m.currentScreen = screenStats
		m.stats.loading = true
		return m, tea.Batch(m.stats.spinner.Tick, m.cmdLoadStats())
	case key.Matches(keyMsg, keys.refresh):
		m.logs.loading = true
		return m, tea.Batch(m.logs.spinner.Tick, m.cmdLoadLogs())
	case key.Matches(keyMsg, keys.up):
		if m.logs.idx > 0 {
			m.logs.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.logs.idx < len(m.logs.entries)-1 {
			m.logs.idx++
		}
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.logs.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyJSON(entry)
	}

	return m, nil
}

func (m appModel) cmdLogin(username, password, twoFactorCode string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		info, err := server.Login(ctx, username, password, twoFactorCode)
		return loginDoneMsg{info: info, err: err}
	}
}

func (m appModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	server := m.server
	username := m.username
	return func() tea.Msg {
		stats, err := server.AccessData(ctx, username)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdLoadLogs() tea.Cmd {
	ctx := m.ctx
	server := m.server
	username := m.username
	return func() tea.Msg {
		entries, err := server.Logs(ctx, username)
		return logsLoadedMsg{entries: entries, err: err}
	}
}

func cmdCopyJSON(v any) tea.Cmd {
	return func() tea.Msg {
		payload, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return statsLoadedMsg{err: fmt.Errorf("encode for clipboard: %w", err)}
		}
		if err := clipboard.WriteAll(string(payload)); err != nil {
			return statsLoadedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNext(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrev(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
