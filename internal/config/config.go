package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type DatabaseConfig struct {
	URL     string
	Name    string
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables and an optional
// .env file. DATABASE_URL may be empty: the service then runs without
// persistence (reads return empty results, writes are rejected).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("DATABASE_NAME", "huts")
	viper.SetDefault("DATABASE_TIMEOUT", 10)

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("PORT"),
			Host:        viper.GetString("HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			URL:     viper.GetString("DATABASE_URL"),
			Name:    viper.GetString("DATABASE_NAME"),
			Timeout: time.Duration(viper.GetInt("DATABASE_TIMEOUT")) * time.Second,
		},
	}

	return cfg, nil
}
