package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p/-port server port
//	-static static assets directory
//	-data-dir directory for persisted JSON documents
//	-user-file user credential document file name
//	-log-file access log document file name
//	-crash-file crash record file name
//	-max-log-size access log size threshold in bytes
//	-keep-entries number of log entries kept by a retention sweep
//	-c/-config json file path with configs
//	-token-sign-key admin session token signing key
//	-token-issuer admin session token issuer name
//	-token-duration admin session token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retention-interval background retention sweep interval
func ParseFlags() *StructuredConfig {
	var port int
	var staticDir string
	var dataDir string
	var userFile string
	var logFile string
	var crashFile string
	var maxLogSize int64
	var keepEntries int
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var retentionInterval time.Duration

	flag.IntVar(&port, "p", 0, "Server port")
	flag.IntVar(&port, "port", 0, "Server port (alias)")
	flag.StringVar(&staticDir, "static", "", "Static assets directory")
	flag.StringVar(&dataDir, "data-dir", "", "Directory for persisted JSON documents")
	flag.StringVar(&userFile, "user-file", "", "User credential document file name")
	flag.StringVar(&logFile, "log-file", "", "Access log document file name")
	flag.StringVar(&crashFile, "crash-file", "", "Crash record file name")
	flag.Int64Var(&maxLogSize, "max-log-size", 0, "Access log size threshold in bytes")
	flag.IntVar(&keepEntries, "keep-entries", 0, "Log entries kept by a retention sweep")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&retentionInterval, "retention-interval", 0, "Background retention sweep interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			Port:           port,
			StaticDir:      staticDir,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DataDir:     dataDir,
			UserFile:    userFile,
			LogFile:     logFile,
			CrashFile:   crashFile,
			MaxLogSize:  maxLogSize,
			KeepEntries: keepEntries,
		},
		Workers: Workers{
			RetentionInterval: retentionInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
