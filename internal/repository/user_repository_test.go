package repository_test

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzumoe/shoplist-api/internal/model"
	"github.com/fuzumoe/shoplist-api/internal/repository"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "name", "email", "password"})
}

func TestUserRepo_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewUserRepo(db)
	u := &model.User{Username: "alice", Name: "Alice", Email: "alice@example.com", Password: "digest"}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(u))
	assert.Equal(t, uint(1), u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users`")).
			WillReturnRows(userRows().AddRow(1, "alice", "Alice", "alice@example.com", "digest"))

		u, err := repo.FindByID(1)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users`")).
			WillReturnRows(userRows())

		u, err := repo.FindByID(99)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, u)
	})
}

func TestUserRepo_FindByUsername(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE username = ?")).
			WillReturnRows(userRows().AddRow(1, "alice", "Alice", "alice@example.com", "digest"))

		u, err := repo.FindByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE username = ?")).
			WillReturnRows(userRows())

		u, err := repo.FindByUsername("nobody")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.Nil(t, u)
	})
}

func TestUserRepo_Delete(t *testing.T) {
	t.Run("Existing User", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewUserRepo(db)

		// soft delete
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET `deleted_at`")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing User", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewUserRepo(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `users` SET `deleted_at`")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, repo.Delete(99), repository.ErrUserNotFound)
	})
}
