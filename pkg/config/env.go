package config

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvSettings holds the connection settings the library reads from the
// environment. Secrets stay out of the yaml config file.
type EnvSettings struct {
	SurrealHost      string
	SurrealUser      string
	SurrealPass      string
	SurrealNamespace string
	SurrealDatabase  string
	RedisURL         string
	RedisPrefix      string
}

// LoadEnv loads a .env file when present and reads the storage connection
// settings. A missing .env is fine; the process environment wins either way.
func LoadEnv() *EnvSettings {
	_ = godotenv.Load()

	settings := &EnvSettings{
		SurrealHost:      os.Getenv("SURREAL_DB_HOST"),
		SurrealUser:      os.Getenv("SURREAL_DB_USER"),
		SurrealPass:      os.Getenv("SURREAL_DB_PASS"),
		SurrealNamespace: os.Getenv("SURREAL_DB_NAMESPACE"),
		SurrealDatabase:  os.Getenv("SURREAL_DB_DATABASE"),
		RedisURL:         os.Getenv("REDIS_URL"),
		RedisPrefix:      os.Getenv("REDIS_PREFIX"),
	}

	if settings.SurrealNamespace == "" {
		settings.SurrealNamespace = "kindred"
	}
	if settings.SurrealDatabase == "" {
		settings.SurrealDatabase = "kindred"
	}
	if settings.RedisPrefix == "" {
		settings.RedisPrefix = "kindred"
	}

	return settings
}
