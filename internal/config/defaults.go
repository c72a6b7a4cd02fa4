package config

import "time"

// Legacy deployment constants. A fresh boot with no configuration at all
// produces the same listener, files, and seed accounts as the original
// service.
const (
	DefaultPort       = 3000
	DefaultMaxLogSize = 10 * 1024 * 1024 // 10 MiB
	DefaultKeepCount  = 100
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        "go-2048-server",
			TokenDuration:      time.Hour,
			AdminUsername:      "administrator",
			AdminPassword:      "YDS2893064167",
			AdminTwoFactorCode: "213221",
			PlayerUsername:     "user",
			PlayerPassword:     "202602",
		},
		Server: Server{
			Port:           DefaultPort,
			StaticDir:      ".",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DataDir:     ".",
			UserFile:    "userData.json",
			LogFile:     "accessLog.json",
			CrashFile:   "crash.log",
			MaxLogSize:  DefaultMaxLogSize,
			KeepEntries: DefaultKeepCount,
		},
		Workers: Workers{
			RetentionInterval: time.Hour,
		},
	}
}
