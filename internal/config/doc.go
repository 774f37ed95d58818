// Package config defines the tracker's configuration.
//
// Sections are plain structs with creasty/defaults tags. Functional options and
// DebugMap are generated by optgen:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Library Upstream Storage Tracing
//
//	Configuration
//	├── Server     - HTTP server
//	├── Library    - aggregation workers, freshness window, sort locale
//	├── Upstream   - backend proxy url, timeout, retries, bearer token
//	├── Storage    - persistent store backend and data folder
//	├── Tracing    - OTLP/HTTP span export
//	├── LogFormat  - console | json
//	└── LogLevel   - debug | info | warn | error
//
//	┌──────────────────────────┬───────────────────────────┐
//	│ Field                    │ Default                   │
//	├──────────────────────────┼───────────────────────────┤
//	│ Server.ServerMode        │ "dev"                     │
//	│ Server.HTTPPort          │ 8000                      │
//	│ Library.NumWorkers       │ 8                         │
//	│ Library.FreshnessWindow  │ 10m                       │
//	│ Library.Locale           │ "en"                      │
//	│ Upstream.URL             │ "http://localhost:8080"   │
//	│ Upstream.Timeout         │ 15s                       │
//	│ Upstream.MaxRetries      │ 3                         │
//	│ Storage.Backend          │ "duckdb"                  │
//	│ Storage.DataFolder       │ <user config dir>/...     │
//	│ Storage.RedisURL         │ "redis://localhost:6379/0"│
//	│ Tracing.Enabled          │ false                     │
//	│ Tracing.Endpoint         │ "http://localhost:4318"   │
//	│ Tracing.SamplingRatio    │ 1                         │
//	└──────────────────────────┴───────────────────────────┘
//
// An empty DataFolder is resolved by Storage.ResolveDataFolder before the store
// opens; ":memory:" keeps DuckDB in memory. Validate rejects an upstream URL on
// this host and the server's own port.
//
// Upstream.Token and Storage.RedisURL are tagged sensitive and masked by
// DebugMap, so the whole configuration can be logged:
//
//	zap.S().Infow("configuration", "config", cfg.DebugMap())
package config
