package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/melodia/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the server
//	-t string   bearer token
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the melodia server")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "bearer token for protected commands")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
