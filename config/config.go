package config

import (
	"os"
	"strconv"
	"time"
)

const defaultTokenTTL = 30 * time.Minute

// Config carries everything the server needs from the environment. The JWT
// secret and token lifetime are passed into the token issuer at construction
// so nothing security-relevant lives in a package-level constant.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
}

func Load() Config {
	return Config{
		Addr:      getEnv("FORKFUL_ADDR", ":10000"),
		DBPath:    getEnv("FORKFUL_DB_PATH", "data/forkful.db"),
		JWTSecret: os.Getenv("FORKFUL_JWT_SECRET"),
		TokenTTL:  getTokenTTL(),
		LogLevel:  getEnv("FORKFUL_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getTokenTTL() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("FORKFUL_TOKEN_TTL_MIN"))
	if err != nil || minutes <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(minutes) * time.Minute
}

func IsDebug() bool {
	return os.Getenv("FORKFUL_DEBUG") == "true"
}
