package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/classcompanion_test?sslmode=disable")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("HTTP_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "./media", cfg.MediaDir)
}

func TestLoadAcceptsPgxDriver(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/classcompanion_test?sslmode=disable")
	t.Setenv("DB_DRIVER", "pgx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pgx", cfg.DBDriver)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/classcompanion_test?sslmode=disable")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.Error(t, err)
}
