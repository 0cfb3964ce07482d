package config

import "time"

// Fallback values applied after all sources are merged. The session
// lifetime default matches the 30-minute policy of the record system.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultSessionLifetime = 30 * time.Minute
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMongoDatabase   = "stroke_records_db"
)

// applyDefaults fills in safe defaults for fields no source provided.
// Secrets (sign key, DSNs) have no defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.SessionLifetime == 0 {
		cfg.App.SessionLifetime = DefaultSessionLifetime
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = DefaultMongoDatabase
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Mongo.URI == "" || cfg.Storage.Redis.URI == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.SessionLifetime < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
