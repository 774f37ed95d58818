package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Library Upstream Storage Tracing

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	StorageBackendDuckDB = "duckdb"
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"

	// InMemoryDataFolder keeps the DuckDB database in memory.
	InMemoryDataFolder = ":memory:"

	appName = "achievement-tracker"
)

type Configuration struct {
	Server    Server   `debugmap:"visible"`
	Library   Library  `debugmap:"visible"`
	Upstream  Upstream `debugmap:"visible"`
	Storage   Storage  `debugmap:"visible"`
	Tracing   Tracing  `debugmap:"visible"`
	LogFormat string   `debugmap:"visible" default:"console"`
	LogLevel  string   `debugmap:"visible" default:"debug"`
}

type Server struct {
	ServerMode    string `debugmap:"visible" default:"dev"`
	HTTPPort      int    `debugmap:"visible" default:"8000"`
	StaticsFolder string `debugmap:"visible"`
}

// Library holds the aggregation settings.
type Library struct {
	NumWorkers      int           `debugmap:"visible" default:"8"`
	FreshnessWindow time.Duration `debugmap:"visible" default:"10m"`
	Locale          string        `debugmap:"visible" default:"en"`
}

// Upstream is the backend proxy in front of the game platform API.
type Upstream struct {
	URL        string        `debugmap:"visible" default:"http://localhost:8080"`
	Timeout    time.Duration `debugmap:"visible" default:"15s"`
	MaxRetries uint          `debugmap:"visible" default:"3"`
	TokenFile  string        `debugmap:"visible"`
	Token      string        `debugmap:"sensitive"`
}

// Storage selects the Persistent Store. An empty DataFolder is resolved to the
// per-user default by ResolveDataFolder.
type Storage struct {
	Backend    string `debugmap:"visible" default:"duckdb"`
	DataFolder string `debugmap:"visible"`
	RedisURL   string `debugmap:"sensitive" default:"redis://localhost:6379/0"`
}

// Tracing exports spans over OTLP/HTTP when enabled.
type Tracing struct {
	Enabled       bool    `debugmap:"visible"`
	Endpoint      string  `debugmap:"visible" default:"http://localhost:4318"`
	SamplingRatio float64 `debugmap:"visible" default:"1"`
}

// Validate checks values flags cannot constrain.
func (c *Configuration) Validate() error {
	if !slices.Contains([]string{ServerModeDev, ServerModeProd}, c.Server.ServerMode) {
		return fmt.Errorf("invalid server mode %q: must be %q or %q", c.Server.ServerMode, ServerModeDev, ServerModeProd)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	if !slices.Contains([]string{StorageBackendDuckDB, StorageBackendRedis, StorageBackendMemory}, c.Storage.Backend) {
		return fmt.Errorf("invalid storage backend %q", c.Storage.Backend)
	}
	if c.Library.NumWorkers < 1 {
		return fmt.Errorf("number of workers must be at least 1, got %d", c.Library.NumWorkers)
	}
	if c.Library.FreshnessWindow <= 0 {
		return fmt.Errorf("freshness window must be positive, got %s", c.Library.FreshnessWindow)
	}
	if _, err := c.Library.Tag(); err != nil {
		return err
	}
	if err := c.validateUpstream(); err != nil {
		return err
	}
	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			return fmt.Errorf("tracing endpoint is required when tracing is enabled")
		}
		if c.Tracing.SamplingRatio < 0 || c.Tracing.SamplingRatio > 1 {
			return fmt.Errorf("tracing sampling ratio must be between 0 and 1, got %v", c.Tracing.SamplingRatio)
		}
	}
	return nil
}

// validateUpstream rejects malformed proxy URLs and a proxy that is this server's own listener.
func (c *Configuration) validateUpstream() error {
	u, err := url.Parse(c.Upstream.URL)
	if err != nil {
		return fmt.Errorf("invalid upstream url %q: %w", c.Upstream.URL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid upstream url %q: must be an absolute http(s) url", c.Upstream.URL)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	local := slices.Contains([]string{"localhost", "127.0.0.1", "::1", "0.0.0.0", "::"}, u.Hostname())
	if local && port == strconv.Itoa(c.Server.HTTPPort) {
		return fmt.Errorf("upstream url %q points at this server's own port %d", c.Upstream.URL, c.Server.HTTPPort)
	}
	return nil
}

// ResolveDataFolder fills an empty DuckDB data folder with DefaultDataFolder.
// Other backends and explicit folders are left unchanged.
func (s *Storage) ResolveDataFolder() error {
	if s.Backend != StorageBackendDuckDB || s.DataFolder != "" {
		return nil
	}
	folder, err := DefaultDataFolder()
	if err != nil {
		return err
	}
	s.DataFolder = folder
	return nil
}

// DefaultDataFolder is the per-user folder holding the DuckDB file.
func DefaultDataFolder() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate the user config folder: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

// Tag parses the sort locale.
func (l Library) Tag() (language.Tag, error) {
	tag, err := language.Parse(l.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", l.Locale, err)
	}
	return tag, nil
}
