package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "POSTGRESQL_URI", "PG_DSN", "SERVER_PORT", "SEARCH_DEFAULT_CITY", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "Mumbai", cfg.Search.DefaultCity)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.GetPostgreSQLDSN(), "dbname=property_finder")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/props")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("PG_MAX_IDLE_CONNECTIONS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/props", cfg.GetPostgreSQLDSN())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5, cfg.PostgreSQL.MaxIdleConnections)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}
