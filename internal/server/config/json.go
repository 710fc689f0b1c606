package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/melodia/internal/flagx"
	"github.com/dmitrijs2005/melodia/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations
// accept "1m"-style strings or integer nanoseconds; absent fields leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP            string          `json:"endpoint_addr_http"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  int             `json:"bcrypt_cost"`
	EnforceOwnership            *bool           `json:"enforce_ownership"`
	RunMigrations               *bool           `json:"run_migrations"`
	LogLevel                    string          `json:"log_level"`
	LogFile                     string          `json:"log_file"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	ReadHeaderTimeout           *timex.Duration `json:"read_header_timeout"`
}

// parseJson loads the file named by -c / -config, if any, into config.
// An unreadable or malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.EnforceOwnership != nil {
		config.EnforceOwnership = *c.EnforceOwnership
	}
	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		config.LogFile = c.LogFile
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.ReadHeaderTimeout != nil {
		config.ReadHeaderTimeout = c.ReadHeaderTimeout.Duration
	}
}
