package service_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/fuzumoe/shoplist-api/internal/service"
)

func TestHealthService_Check(t *testing.T) {
	t.Run("Nil DB Is Disconnected", func(t *testing.T) {
		svc := service.NewHealthService(nil, "shoplist-api")

		stat := svc.Check()
		assert.Equal(t, "shoplist-api", stat.Service)
		assert.Equal(t, "disconnected", stat.Database)
		assert.False(t, stat.Healthy)
		assert.False(t, stat.Checked.IsZero())
	})

	t.Run("Reachable DB Is Healthy", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		gormDB, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      db,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{})
		require.NoError(t, err)

		svc := service.NewHealthService(gormDB, "shoplist-api")

		stat := svc.Check()
		assert.Equal(t, "healthy", stat.Database)
		assert.True(t, stat.Healthy)
	})
}
