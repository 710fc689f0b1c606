package config

import "os"

func parseEnv(cfg *Config) {
	if v := os.Getenv("MELODIA_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("MELODIA_TOKEN"); v != "" {
		cfg.Token = v
	}
}
