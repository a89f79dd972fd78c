// Package config loads process settings from the environment and payroll
// rules from YAML.
package config

import (
	"os"
	"strconv"

	"go-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	DB          connection.DBConfig
	RedisAddr   string
	KafkaBroker string
	JWTSecret   string
	RulesPath   string
	Timezone    string
	MaxRetries  int
}

// Load reads .env when present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		DB: connection.DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "payroll"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: os.Getenv("DB_TIMEZONE"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RulesPath:   os.Getenv("PAYROLL_RULES_PATH"),
		Timezone:    os.Getenv("APP_TIMEZONE"),
		MaxRetries:  getEnvInt("CONNECT_MAX_RETRIES", 5),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
