package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		AdminUsername      string   `json:"admin_username"`
		AdminPassword      string   `json:"admin_password"`
		AdminTwoFactorCode string   `json:"admin_two_factor_code"`
		PlayerUsername     string   `json:"player_username"`
		PlayerPassword     string   `json:"player_password"`
	} `json:"app,omitempty"`

	Server struct {
		Port           int      `json:"port"`
		StaticDir      string   `json:"static_dir"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DataDir     string `json:"data_dir"`
		UserFile    string `json:"user_file"`
		LogFile     string `json:"log_file"`
		CrashFile   string `json:"crash_file"`
		MaxLogSize  int64  `json:"max_log_size"`
		KeepEntries int    `json:"keep_entries"`
	} `json:"storage,omitempty"`

	Workers struct {
		RetentionInterval Duration `json:"retention_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			AdminUsername:      jsonCfg.App.AdminUsername,
			AdminPassword:      jsonCfg.App.AdminPassword,
			AdminTwoFactorCode: jsonCfg.App.AdminTwoFactorCode,
			PlayerUsername:     jsonCfg.App.PlayerUsername,
			PlayerPassword:     jsonCfg.App.PlayerPassword,
		},
		Server: Server{
			Port:           jsonCfg.Server.Port,
			StaticDir:      jsonCfg.Server.StaticDir,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DataDir:     jsonCfg.Storage.DataDir,
			UserFile:    jsonCfg.Storage.UserFile,
			LogFile:     jsonCfg.Storage.LogFile,
			CrashFile:   jsonCfg.Storage.CrashFile,
			MaxLogSize:  jsonCfg.Storage.MaxLogSize,
			KeepEntries: jsonCfg.Storage.KeepEntries,
		},
		Workers: Workers{
			RetentionInterval: time.Duration(jsonCfg.Workers.RetentionInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
