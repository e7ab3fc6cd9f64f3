// Package config loads the application configuration from the
// environment. A .env file is honored when present, real environment
// variables take precedence.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/livro-caixa/backend/internal/nextcloud"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// DatabaseDSN is the sqlite file the records are stored in.
	DatabaseDSN string

	// Port the HTTP server listens on.
	Port string

	// APIURL is the publicly reachable base URL of the API, used for the
	// self links in responses.
	APIURL string

	Nextcloud nextcloud.Config
}

// Load reads the configuration from the environment.
//
// The Nextcloud settings are not validated here. Their absence is a hard
// failure, but it is raised by nextcloud.New before any network call so
// that the error carries the pipeline context.
func Load() *Config {
	// A missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	viper.SetDefault("DB_DSN", "data/gorm.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("API_URL", "http://localhost:8080")

	viper.AutomaticEnv()

	return &Config{
		DatabaseDSN: viper.GetString("DB_DSN"),
		Port:        viper.GetString("PORT"),
		APIURL:      viper.GetString("API_URL"),
		Nextcloud: nextcloud.Config{
			URL:         strings.TrimSuffix(viper.GetString("NEXTCLOUD_URL"), "/"),
			User:        viper.GetString("NEXTCLOUD_USER"),
			AppPassword: viper.GetString("NEXTCLOUD_APP_PASSWORD"),
		},
	}
}
