package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimeout = "20s"
	defaultBaseURL = "https://api.realworld.io/api"

	configPathEnv = "CONDUIT_CLIENT_CONFIG"
	apiURLEnv     = "CONDUIT_API_URL"
	tokenFileEnv  = "CONDUIT_TOKEN_FILE"
	logLevelEnv   = "CONDUIT_LOG_LEVEL"
	logFormatEnv  = "CONDUIT_LOG_FORMAT"
	timeoutEnv    = "CONDUIT_HTTP_TIMEOUT"
)

// Config holds high-level settings required across the application.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig describes how to reach the blogging backend.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl"`
	Timeout string `yaml:"timeout"`
}

// HTTPTimeout resolves the configured timeout string to a duration.
func (a APIConfig) HTTPTimeout() time.Duration {
	if d, err := time.ParseDuration(a.Timeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(defaultTimeout)
	return d
}

// SessionConfig locates the persisted session credential.
type SessionConfig struct {
	TokenFile string `yaml:"tokenFile"`
}

// LoggingConfig selects logger verbosity and output encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(apiURLEnv); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(timeoutEnv); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv(tokenFileEnv); v != "" {
		c.Session.TokenFile = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.API.BaseURL != "" {
		base.API.BaseURL = override.API.BaseURL
	}
	if override.API.Timeout != "" {
		base.API.Timeout = override.API.Timeout
	}
	if override.Session.TokenFile != "" {
		base.Session.TokenFile = override.Session.TokenFile
	}
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}
	return base
}

func defaultConfig() Config {
	return Config{
		API:     APIConfig{BaseURL: defaultBaseURL, Timeout: defaultTimeout},
		Session: SessionConfig{TokenFile: defaultTokenFile()},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// defaultTokenFile is the well-known local key for the session credential,
// placed under the user config dir when resolvable.
func defaultTokenFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "conduit", "token")
	}
	return ".conduit-token"
}
