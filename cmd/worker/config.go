package main

import (
	"os"
	"strconv"
)

// Config is the worker's own slice of configuration; it only needs Redis
// and SMTP. Redis settings must match the API's, the queue lives in the
// same instance and DB the enqueuer writes to.
type Config struct {
	Environment string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	SMTPHost    string
	SMTPPort    string
	SMTPFrom    string
}

func loadConfig() *Config {
	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		RedisAddr:   getEnv("REDIS_HOST", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		SMTPHost:    getEnv("SMTP_HOST", "localhost"),
		SMTPPort:    getEnv("SMTP_PORT", "1025"),
		SMTPFrom:    getEnv("SMTP_FROM", "noreply@idealink.dev"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
