package app_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/fuzumoe/shoplist-api/configs"
	"github.com/fuzumoe/shoplist-api/internal/app"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

func testConfig() *configs.Config {
	return &configs.Config{
		ServerHost:    "127.0.0.1",
		ServerPort:    "9099",
		ServerMode:    "test",
		DatabaseURL:   "user:pass@tcp(localhost:3306)/shoplist?parseTime=true",
		LogLevel:      "error",
		JWTSecret:     "test-secret",
		TokenLifetime: 15 * time.Minute,
		ListsPerPage:  10,
		ItemsPerPage:  10,
	}
}

func mockGormDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB
}

// restoreHooks resets the injectable package hooks after a test.
func restoreHooks(t *testing.T) {
	t.Helper()
	origLoad := app.LoadConfig
	origNewDB := app.NewDB
	origMigrate := app.MigrateDB
	origServe := app.ServeHTTP
	t.Cleanup(func() {
		app.LoadConfig = origLoad
		app.NewDB = origNewDB
		app.MigrateDB = origMigrate
		app.ServeHTTP = origServe
	})
}

func TestRun_ConfigError(t *testing.T) {
	restoreHooks(t)
	app.LoadConfig = func() (*configs.Config, error) {
		return nil, errors.New("bad env")
	}

	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config load error")
}

func TestRun_DBError(t *testing.T) {
	restoreHooks(t)
	app.LoadConfig = func() (*configs.Config, error) { return testConfig(), nil }
	app.NewDB = func(dsn string) (*gorm.DB, error) {
		return nil, errors.New("connection refused")
	}

	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestRun_MigrationError(t *testing.T) {
	restoreHooks(t)
	app.LoadConfig = func() (*configs.Config, error) { return testConfig(), nil }
	app.NewDB = func(dsn string) (*gorm.DB, error) { return mockGormDB(t), nil }
	app.MigrateDB = func(m repository.Migrator) error { return errors.New("table locked") }

	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestRun_WiresAndServes(t *testing.T) {
	restoreHooks(t)

	var servedAddr string
	var servedHandler http.Handler

	app.LoadConfig = func() (*configs.Config, error) { return testConfig(), nil }
	app.NewDB = func(dsn string) (*gorm.DB, error) {
		assert.Equal(t, testConfig().DatabaseURL, dsn)
		return mockGormDB(t), nil
	}
	app.MigrateDB = func(m repository.Migrator) error { return nil }
	app.ServeHTTP = func(addr string, h http.Handler) error {
		servedAddr = addr
		servedHandler = h
		return nil
	}

	require.NoError(t, app.Run())
	assert.Equal(t, "127.0.0.1:9099", servedAddr)
	require.NotNil(t, servedHandler)

	// the wired engine must reject a protected route without a token
	req := httptest.NewRequest(http.MethodGet, "/shoppinglists/", nil)
	w := httptest.NewRecorder()
	servedHandler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You do not have the appropriate permissions"}`, w.Body.String())
}
