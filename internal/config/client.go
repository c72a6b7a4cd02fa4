package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// AdminClient holds the configuration of the admin TUI binary.
type AdminClient struct {
	// ServerAddress is the base URL of the game server API.
	// Env: ADMIN_SERVER_ADDRESS
	ServerAddress string `env:"ADMIN_SERVER_ADDRESS"`

	// RequestTimeout bounds every request issued by the TUI.
	// Env: ADMIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"ADMIN_REQUEST_TIMEOUT"`

	// LogPath is the file diagnostic logs are written to. Writing to a file
	// keeps zerolog output from corrupting the terminal UI.
	// Env: ADMIN_LOG_PATH
	LogPath string `env:"ADMIN_LOG_PATH"`
}

// GetAdminClientConfig loads the admin TUI configuration from environment
// variables, command-line flags, and built-in defaults, in that priority
// order.
func GetAdminClientConfig() (*AdminClient, error) {
	cfg := &AdminClient{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	var address string
	var requestTimeout time.Duration
	var logPath string

	flag.StringVar(&address, "a", "", "Server base URL")
	flag.StringVar(&address, "address", "", "Server base URL (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&logPath, "log-path", "", "Diagnostic log file path")
	flag.Parse()

	layers := []*AdminClient{
		{ServerAddress: address, RequestTimeout: requestTimeout, LogPath: logPath},
		{ServerAddress: "http://localhost:3000", RequestTimeout: 15 * time.Second, LogPath: "admin-tui.log"},
	}
	for _, layer := range layers {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, nil
}
