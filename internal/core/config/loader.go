package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/rpcdispatch/internal/infra/rpc/lookup"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content, expanding environment variables first.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *AppConfig {
	var cfg AppConfig
	cfg.setDefaults()
	return &cfg
}

func (c *AppConfig) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	d := &c.Dispatch
	if d.ToleratedWait == 0 {
		d.ToleratedWait = 5 * time.Second
	}
	if d.IdleFlush == 0 {
		d.IdleFlush = 250 * time.Millisecond
	}
	if d.MaxMigrations == 0 {
		d.MaxMigrations = 5
	}
	if d.MaxFloodRetries == 0 {
		d.MaxFloodRetries = 5
	}
	if d.CallTimeout == 0 {
		d.CallTimeout = 30 * time.Second
	}
	if d.Lookup.URL == "" {
		d.Lookup.URL = lookup.DefaultEndpoint
	}
	if d.Lookup.Timeout == 0 {
		d.Lookup.Timeout = 3 * time.Second
	}
	if d.Lookup.NegativeTTL == 0 {
		d.Lookup.NegativeTTL = 10 * time.Minute
	}
}

// Validate rejects values the dispatcher cannot run with.
func (c *AppConfig) Validate() error {
	if c.Dispatch.IdleFlush < 0 {
		return fmt.Errorf("dispatch.idle_flush must not be negative")
	}
	if c.Dispatch.MaxMigrations < 0 || c.Dispatch.MaxFloodRetries < 0 {
		return fmt.Errorf("dispatch bounds must not be negative")
	}
	for dc, url := range c.Datacenters {
		if !dc.Valid() {
			return fmt.Errorf("invalid datacenter id %d", dc)
		}
		if url == "" {
			return fmt.Errorf("datacenter %s has no endpoint", dc)
		}
	}
	return nil
}
