package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig
	Spanner SpannerConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	Env  string
}

// SpannerConfig holds the backing database settings.
type SpannerConfig struct {
	Database string
}

// CatalogConfig holds catalog query settings.
type CatalogConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

// Load reads configuration from the environment, with a .env file as an
// optional local-development convenience.
func Load() *Config {
	_ = godotenv.Load()

	defaultPerPage, _ := strconv.Atoi(getEnv("CATALOG_DEFAULT_PER_PAGE", "24"))
	maxPerPage, _ := strconv.Atoi(getEnv("CATALOG_MAX_PER_PAGE", "100"))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Spanner: SpannerConfig{
			Database: getEnv("SPANNER_DATABASE",
				"projects/test-project/instances/dev-instance/databases/marketplace-catalog-db"),
		},
		Catalog: CatalogConfig{
			DefaultPerPage: defaultPerPage,
			MaxPerPage:     maxPerPage,
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
