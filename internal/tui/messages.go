package tui

import (
	"github.com/MKhiriev/go-2048-server/models"
)

type loginDoneMsg struct {
	info models.UserInfo
	err  error
}

type statsLoadedMsg struct {
	stats map[string]models.AccessStats
	err   error
}

type logsLoadedMsg struct {
	entries []models.AccessLogEntry
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
