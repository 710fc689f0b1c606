package config

import (
	"errors"
	"io/fs"
	"net"
	"os"

	"github.com/dmitrijs2005/melodia/internal/flagx"
	"github.com/joho/godotenv"
)

// defaultEnvFile is read when no -env flag is given. A missing file is not an error.
const defaultEnvFile = ".env"

// parseEnv overlays settings from process environment variables, after
// loading them from a dotenv file (-env flag or ./.env). Variables already
// present in the environment win over the file.
//
// Recognized variables:
//
//	PORT          port to listen on, bound on all interfaces
//	DATABASE_URL  PostgreSQL DSN
//	JWT_SECRET    token signing secret
//	LOG_LEVEL     debug, info, warn or error
func parseEnv(config *Config) {
	if err := godotenv.Load(flagx.EnvFileFlag(defaultEnvFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		config.EndpointAddrHTTP = net.JoinHostPort("0.0.0.0", port)
	}
	if dsn, ok := os.LookupEnv("DATABASE_URL"); ok && dsn != "" {
		config.DatabaseDSN = dsn
	}
	if secret, ok := os.LookupEnv("JWT_SECRET"); ok && secret != "" {
		config.SecretKey = secret
	}
	if level, ok := os.LookupEnv("LOG_LEVEL"); ok && level != "" {
		config.LogLevel = level
	}
}
