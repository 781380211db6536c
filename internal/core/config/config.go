package config

import (
	"time"

	"github.com/vietddude/rpcdispatch/internal/core/domain"
	redisclient "github.com/vietddude/rpcdispatch/internal/infra/redis"
	"github.com/vietddude/rpcdispatch/internal/infra/storage/postgres"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server      ServerConfig                   `yaml:"server"`
	Logging     LoggingConfig                  `yaml:"logging"`
	Dispatch    DispatchConfig                 `yaml:"dispatch"`
	Datacenters map[domain.DatacenterID]string `yaml:"datacenters"` // dc id -> JSON-RPC endpoint
	Schema      string                         `yaml:"schema"`      // optional path to a JSON schema
	Redis       redisclient.Config             `yaml:"redis"`
	Database    postgres.Config                `yaml:"database"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DispatchConfig holds dispatcher bounds.
type DispatchConfig struct {
	ToleratedWait   time.Duration `yaml:"tolerated_wait"`
	IdleFlush       time.Duration `yaml:"idle_flush"` // 0 disables the idle flush
	MaxMigrations   int           `yaml:"max_migrations"`
	MaxFloodRetries int           `yaml:"max_flood_retries"`
	CallTimeout     time.Duration `yaml:"call_timeout"` // per-transport-request timeout
	Lookup          LookupConfig  `yaml:"lookup"`
}

// LookupConfig holds settings for the remote error description service.
type LookupConfig struct {
	URL         string        `yaml:"url"`
	Timeout     time.Duration `yaml:"timeout"`
	NegativeTTL time.Duration `yaml:"negative_ttl"`
	Disabled    bool          `yaml:"disabled"`
}
