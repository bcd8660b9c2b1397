package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/shoplist-api/configs"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "shoplist")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "shoplist_db")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.TokenLifetime)
	assert.Equal(t, 10, cfg.ListsPerPage)
	assert.Equal(t, 10, cfg.ItemsPerPage)
	assert.False(t, cfg.RevokeTokenOnPasswordReset)
	assert.Equal(t, "shoplist:secret@tcp(localhost:3306)/shoplist_db?parseTime=true", cfg.DatabaseURL)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	cfg, err := configs.Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_MissingDatabaseVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_NAME", "")

	cfg, err := configs.Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_LIFETIME", "1h")
	t.Setenv("LISTS_PER_PAGE", "25")
	t.Setenv("REVOKE_TOKEN_ON_PASSWORD_RESET", "true")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.TokenLifetime)
	assert.Equal(t, 25, cfg.ListsPerPage)
	assert.True(t, cfg.RevokeTokenOnPasswordReset)
	assert.Equal(t, "shoplist:secret@tcp(db.internal:3307)/shoplist_db?parseTime=true", cfg.DatabaseURL)
}

func TestLoad_InvalidTokenLifetime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_LIFETIME", "sometime")

	cfg, err := configs.Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "TOKEN_LIFETIME")
}
