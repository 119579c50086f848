package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Cache     CacheConfig     `yaml:"cache"`
	Relay     RelayConfig     `yaml:"relay"`
	Renderer  RendererConfig  `yaml:"renderer"`
	Archive   ArchiveConfig   `yaml:"archive"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

type AnthropicConfig struct {
	APIKey         string  `yaml:"api_key"`
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

type CacheConfig struct {
	LetterTTLMinutes     int `yaml:"letter_ttl_minutes"`
	DocumentTTLMinutes   int `yaml:"document_ttl_minutes"`
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes"`
}

type RelayConfig struct {
	StageDelayMS int `yaml:"stage_delay_ms"`
}

type RendererConfig struct {
	ChromePath     string `yaml:"chrome_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type ArchiveConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

// Load reads the YAML config at path and applies defaults. A missing file is
// not an error: the service is expected to run from defaults plus the
// ANTHROPIC_API_KEY environment variable in demo deployments.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3001
	}
	if cfg.Anthropic.APIKey == "" {
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.Anthropic.BaseURL == "" {
		cfg.Anthropic.BaseURL = "https://api.anthropic.com"
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = "claude-3-5-sonnet-20241022"
	}
	if cfg.Anthropic.MaxTokens == 0 {
		cfg.Anthropic.MaxTokens = 4000
	}
	if cfg.Anthropic.Temperature == 0 {
		cfg.Anthropic.Temperature = 0.3
	}
	if cfg.Anthropic.TimeoutSeconds == 0 {
		cfg.Anthropic.TimeoutSeconds = 60
	}
	if cfg.Cache.LetterTTLMinutes == 0 {
		cfg.Cache.LetterTTLMinutes = 5
	}
	if cfg.Cache.DocumentTTLMinutes == 0 {
		cfg.Cache.DocumentTTLMinutes = 15
	}
	// Rendered documents are keyed partly on letter text, so their entries
	// must never expire before the letters they were rendered from.
	if cfg.Cache.DocumentTTLMinutes < cfg.Cache.LetterTTLMinutes {
		cfg.Cache.DocumentTTLMinutes = cfg.Cache.LetterTTLMinutes
	}
	if cfg.Cache.SweepIntervalMinutes == 0 {
		cfg.Cache.SweepIntervalMinutes = 5
	}
	if cfg.Relay.StageDelayMS == 0 {
		cfg.Relay.StageDelayMS = 300
	}
	if cfg.Renderer.TimeoutSeconds == 0 {
		cfg.Renderer.TimeoutSeconds = 30
	}
	if cfg.Archive.ExpireDays == 0 {
		cfg.Archive.ExpireDays = 7
	}

	return &cfg, nil
}

// LetterTTL returns the generated-letter cache TTL.
func (c *CacheConfig) LetterTTL() time.Duration {
	return time.Duration(c.LetterTTLMinutes) * time.Minute
}

// DocumentTTL returns the rendered-document cache TTL.
func (c *CacheConfig) DocumentTTL() time.Duration {
	return time.Duration(c.DocumentTTLMinutes) * time.Minute
}

// SweepInterval returns how often expired entries are physically evicted.
func (c *CacheConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMinutes) * time.Minute
}

// StageDelay returns the nominal pause between relay stage emissions.
func (c *RelayConfig) StageDelay() time.Duration {
	return time.Duration(c.StageDelayMS) * time.Millisecond
}
