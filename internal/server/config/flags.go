package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/melodia/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., "0.0.0.0:3000")
//	-d string   PostgreSQL DSN, or memory://
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes (0 = no expiry)
//	-b int      bcrypt cost
//	-o bool     enforce favorites ownership (use -o=false to disable)
//	-m bool     run migrations at startup
//	-l string   log file path
//
// Duration flags are accepted as integer minutes and only override earlier
// layers when given explicitly.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-b", "-o", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes, 0 disables expiry)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.EnforceOwnership, "o", config.EnforceOwnership, "only let users touch their own favorites")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run database migrations on startup")
	fs.StringVar(&config.LogFile, "l", config.LogFile, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
		}
	})
}
