package config

import "time"

// Config holds runtime settings for the melodia CLI.
type Config struct {
	ServerURL      string
	Token          string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000"
	c.Token = ""
	c.RequestTimeout = 10 * time.Second
}

// FlagsWithValue lists the flags that consume the next argument, for
// separating them from command words.
var FlagsWithValue = []string{"-a", "-t", "-c", "-config", "--config"}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
