package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"DB_ENABLED", "MATCH_ZERO_RESULT_RETURNS_ALL", "COMPARE_CAPACITY",
		"COMPARE_EVICT_OLDEST", "OPENAI_API_KEY", "SESSION_TTL_HOURS",
	} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	assert.NoError(t, err)

	assert.False(t, cfg.Database.Enabled)
	assert.True(t, cfg.Matching.ZeroMatchReturnsAll)
	assert.Equal(t, 4, cfg.Matching.CompareCapacity)
	assert.False(t, cfg.Matching.CompareEvictOldest)
	assert.Equal(t, 0.7, cfg.Matching.DefaultQuality)
	assert.Equal(t, 0.3, cfg.Matching.DefaultProximity)
	assert.Equal(t, 168, cfg.Session.TTLHours)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_MatchingVariants(t *testing.T) {
	os.Setenv("MATCH_ZERO_RESULT_RETURNS_ALL", "false")
	os.Setenv("COMPARE_EVICT_OLDEST", "true")
	os.Setenv("COMPARE_CAPACITY", "3")
	defer func() {
		os.Unsetenv("MATCH_ZERO_RESULT_RETURNS_ALL")
		os.Unsetenv("COMPARE_EVICT_OLDEST")
		os.Unsetenv("COMPARE_CAPACITY")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.False(t, cfg.Matching.ZeroMatchReturnsAll)
	assert.True(t, cfg.Matching.CompareEvictOldest)
	assert.Equal(t, 3, cfg.Matching.CompareCapacity)
}

func TestLoad_DatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5433, User: "app", Password: "pw",
		Database: "medbridge", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=app password=pw dbname=medbridge sslmode=disable", cfg.DatabaseDSN())
}
