// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DataDir == "" || cfg.Storage.UserFile == "" || cfg.Storage.LogFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.MaxLogSize <= 0 || cfg.Storage.KeepEntries <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.AdminUsername == "" || cfg.App.PlayerUsername == "" {
		return ErrInvalidAppConfigs
	}

	// a sign key without issuer or duration cannot produce a valid token
	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0) {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RetentionInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
