// Package config loads runtime configuration for the melodia CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: MELODIA_SERVER and MELODIA_TOKEN.
//  3. Optional JSON file selected via -c, -config or --config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the melodia server
//	-t string   bearer token for protected commands
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:3000",
//	  "token": "eyJ...",
//	  "request_timeout": "10s"
//	}
package config
