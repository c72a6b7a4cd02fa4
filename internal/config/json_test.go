package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestParseJSON_FullConfig verifies that a complete JSON config file is
// mapped onto the structured config.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "issuer",
			"token_duration": "2h",
			"admin_username": "root"
		},
		"server": {
			"port": 9000,
			"static_dir": "/srv/game",
			"request_timeout": "20s"
		},
		"storage": {
			"data_dir": "/var/lib/game",
			"user_file": "users.json",
			"log_file": "log.json",
			"max_log_size": 4096,
			"keep_entries": 10
		},
		"workers": {
			"retention_interval": "30m"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "root", cfg.App.AdminUsername)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/game", cfg.Server.StaticDir)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/game", cfg.Storage.DataDir)
	assert.Equal(t, int64(4096), cfg.Storage.MaxLogSize)
	assert.Equal(t, 10, cfg.Storage.KeepEntries)
	assert.Equal(t, 30*time.Minute, cfg.Workers.RetentionInterval)
}

// TestParseJSON_MissingFile verifies the error path for a non-existent file.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

// TestParseJSON_MalformedFile verifies the error path for invalid JSON.
func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempConfig(t, "{not json")
	_, err := parseJSON(path)
	assert.Error(t, err)
}

// TestDuration_UnmarshalJSON covers string, numeric and invalid inputs.
func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"ninety seconds"`), &d))
}
