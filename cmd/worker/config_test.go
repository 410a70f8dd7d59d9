package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "")

	cfg := loadConfig()
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

// The worker must consume from the same Redis DB the API enqueues into;
// both sides read REDIS_DB.
func TestLoadConfig_RedisDBFromEnv(t *testing.T) {
	t.Setenv("REDIS_DB", "3")

	cfg := loadConfig()
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadConfig_MalformedRedisDBFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := loadConfig()
	assert.Equal(t, 0, cfg.RedisDB)
}
